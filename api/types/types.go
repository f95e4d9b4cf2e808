// Package types defines the wire types exchanged with the Moneta finance API.
package types

// Message is the generic informational response body returned by
// endpoints that have no richer result.
type Message struct {
	Message string `json:"message"`
}

// LoginRequest contains the credentials sent to POST /user/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

// CreateUserRequest contains the fields sent to POST /user when
// registering a new user.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AccountType enumerates the kinds of sub-accounts a container may hold.
type AccountType string

const (
	AccountTypeChecking AccountType = "CHECKING"
	AccountTypeSavings  AccountType = "SAVINGS"
	AccountTypeCash     AccountType = "CASH"
)

// AccountTypes lists every valid account type, in display order.
var AccountTypes = []AccountType{AccountTypeChecking, AccountTypeSavings, AccountTypeCash}

// Valid reports whether t is one of the known account types.
func (t AccountType) Valid() bool {
	for _, known := range AccountTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Account is a single balance-bearing account inside a container.
type Account struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	AccountType AccountType `json:"accountType"`
	Currency    string      `json:"currency"`
	Balance     float64     `json:"balance"`
}

// NewAccount describes a sub-account to be created along with its
// container.
type NewAccount struct {
	Name           string      `json:"name"`
	AccountType    AccountType `json:"accountType"`
	Currency       string      `json:"currency"`
	InitialBalance float64     `json:"initialBalance"`
}

// AccountContainer is a named grouping of one or more sub-accounts
// owned by a user.
type AccountContainer struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Accounts []Account `json:"accounts,omitempty"`
}

// CreateAccountContainerRequest is the body of POST /account-container.
type CreateAccountContainerRequest struct {
	Name     string       `json:"name"`
	Accounts []NewAccount `json:"accounts"`
}

// Category classifies transactions.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateTransactionRequest is the body of POST /transaction.
type CreateTransactionRequest struct {
	AccountID   string  `json:"accountId"`
	CategoryID  string  `json:"categoryId"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
	BookingDate string  `json:"bookingDate,omitempty"`
}

// Transaction is the server's echo of a recorded transaction.
type Transaction struct {
	ID          string  `json:"id"`
	AccountID   string  `json:"accountId"`
	CategoryID  string  `json:"categoryId"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
	BookingDate string  `json:"bookingDate,omitempty"`
}
