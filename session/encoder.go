package session

import (
	"encoding/json"
	"errors"
)

// ErrCredentialCorrupt is returned by [Decode] when the persisted blob is
// not a usable credential.
var ErrCredentialCorrupt = errors.New("credential blob corrupt")

// Encode serializes a credential for the persisted mirror. The format is
// JSON by contract: the persisted entry is shared with any other client of
// the same store, so it stays human-readable and append-tolerant.
func Encode(c *Credential) (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Decode parses a persisted credential blob. A blob that parses but carries
// no token is corrupt: it could only have been written by something other
// than [Encode].
func Decode(data string) (*Credential, error) {
	var c Credential
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, ErrCredentialCorrupt
	}
	if c.Token == "" {
		return nil, ErrCredentialCorrupt
	}
	return &c, nil
}
