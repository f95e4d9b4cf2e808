package types

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ValidationError indicates that a request failed local validation and
// was never sent to the server.
type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

var validCurrencyPattern = regexp.MustCompile("^[A-Z]{3}$")

// ValidCurrency reports whether code looks like an ISO 4217 currency code.
// Only the syntax is checked, the server owns the authoritative list.
func ValidCurrency(code string) bool {
	return validCurrencyPattern.MatchString(code)
}

// Validate checks a container creation request before it is sent.
func (r CreateAccountContainerRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ValidationError("container name must not be empty")
	}
	if len(r.Accounts) == 0 {
		return ValidationError("a container needs at least one account")
	}
	seen := make(map[string]bool, len(r.Accounts))
	for _, a := range r.Accounts {
		if strings.TrimSpace(a.Name) == "" {
			return ValidationError("account name must not be empty")
		}
		if !a.AccountType.Valid() {
			return ValidationError(fmt.Sprintf("unknown account type: %s", a.AccountType))
		}
		if !ValidCurrency(a.Currency) {
			return ValidationError(fmt.Sprintf("invalid currency code: %s", a.Currency))
		}
		if seen[a.Name] {
			return ValidationError(fmt.Sprintf("duplicate account name: %s", a.Name))
		}
		seen[a.Name] = true
	}
	return nil
}

// Validate checks a transaction creation request before it is sent.
// A missing category blocks submission entirely.
func (r CreateTransactionRequest) Validate() error {
	if r.CategoryID == "" {
		return ValidationError("a category is required")
	}
	if r.AccountID == "" {
		return ValidationError("an account is required")
	}
	if r.Amount == 0 {
		return ValidationError("amount must not be zero")
	}
	return nil
}

// ParseAccountSpec parses the NAME:TYPE:CURRENCY[:BALANCE] syntax used
// by the command line to describe a sub-account. The balance part is
// optional and defaults to zero.
func ParseAccountSpec(spec string) (NewAccount, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 3 || len(parts) > 4 {
		return NewAccount{}, ValidationError(fmt.Sprintf(
			"invalid account spec %q, expected NAME:TYPE:CURRENCY[:BALANCE]", spec))
	}

	account := NewAccount{
		Name:        strings.TrimSpace(parts[0]),
		AccountType: AccountType(strings.ToUpper(strings.TrimSpace(parts[1]))),
		Currency:    strings.ToUpper(strings.TrimSpace(parts[2])),
	}
	if len(parts) == 4 {
		balance, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return NewAccount{}, ValidationError(fmt.Sprintf(
				"invalid balance in account spec %q", spec))
		}
		account.InitialBalance = balance
	}

	if account.Name == "" {
		return NewAccount{}, ValidationError("account name must not be empty")
	}
	if !account.AccountType.Valid() {
		return NewAccount{}, ValidationError(fmt.Sprintf(
			"unknown account type: %s", account.AccountType))
	}
	if !ValidCurrency(account.Currency) {
		return NewAccount{}, ValidationError(fmt.Sprintf(
			"invalid currency code: %s", account.Currency))
	}
	return account, nil
}
