package ebank

import "errors"

var (
	// ErrEngineNotReady is an exported constant or variable used by the banking client.
	ErrEngineNotReady = errors.New("engine not initialized")
	// ErrNotAuthenticated is an exported constant or variable used by the banking client.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrInvalidCredentials is an exported constant or variable used by the banking client.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrLoginFailed is an exported constant or variable used by the banking client.
	ErrLoginFailed = errors.New("login failed")
	// ErrLoginTooShort is an exported constant or variable used by the banking client.
	ErrLoginTooShort = errors.New("username must be longer than 3 characters")
	// ErrPasswordTooShort is an exported constant or variable used by the banking client.
	ErrPasswordTooShort = errors.New("password must be longer than 3 characters")
	// ErrFirstnameTooShort is an exported constant or variable used by the banking client.
	ErrFirstnameTooShort = errors.New("first name must be longer than 3 characters")
	// ErrLastnameTooShort is an exported constant or variable used by the banking client.
	ErrLastnameTooShort = errors.New("last name must be longer than 3 characters")
	// ErrPasswordMismatch is an exported constant or variable used by the banking client.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrRegistrationFailed is an exported constant or variable used by the banking client.
	ErrRegistrationFailed = errors.New("registration failed, username might be taken")
	// ErrAutoLoginFailed is an exported constant or variable used by the banking client.
	ErrAutoLoginFailed = errors.New("registration successful but auto-login failed, please login manually")
	// ErrAmountBelowMinimum is an exported constant or variable used by the banking client.
	ErrAmountBelowMinimum = errors.New("minimum transfer amount is 0.05 CHF")
	// ErrTransferFailed is an exported constant or variable used by the banking client.
	ErrTransferFailed = errors.New("transfer failed, please check the account number and amount")
	// ErrBalanceUnavailable is an exported constant or variable used by the banking client.
	ErrBalanceUnavailable = errors.New("balance unavailable")
	// ErrLedgerUnavailable is an exported constant or variable used by the banking client.
	ErrLedgerUnavailable = errors.New("ledger unavailable")
)
