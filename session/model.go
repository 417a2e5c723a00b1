package session

// Account defines a public type used by ebank APIs.
//
// Account instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Account struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Login     string `json:"login"`
	BBAN      string `json:"bban"`
}

// Credential defines a public type used by ebank APIs.
//
// Credential instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Credential struct {
	Token string  `json:"token"`
	Owner Account `json:"owner"`
}
