package matchers

import (
	"github.com/onsi/gomega/format"

	"github.com/monetaio/moneta/api/client"
)

type BeUnauthorized struct{}

func (matcher BeUnauthorized) Match(actual interface{}) (success bool, err error) {
	_, ok := actual.(client.UnauthorizedError)
	return ok, nil
}

func (matcher BeUnauthorized) FailureMessage(actual interface{}) (message string) {
	return format.Message(actual, "to be an", client.UnauthorizedError{})
}

func (matcher BeUnauthorized) NegatedFailureMessage(actual interface{}) (message string) {
	return format.Message(actual, "not to be an", client.UnauthorizedError{})
}

// BeAPIError matches an APIError with the given status code. Zero
// matches any status.
type BeAPIError int

func (matcher BeAPIError) Match(actual interface{}) (success bool, err error) {
	actualErr, ok := actual.(client.APIError)
	return ok && (int(matcher) == 0 || actualErr.Status == int(matcher)), nil
}

func (matcher BeAPIError) FailureMessage(actual interface{}) (message string) {
	return format.Message(actual, "to be an APIError with status", int(matcher))
}

func (matcher BeAPIError) NegatedFailureMessage(actual interface{}) (message string) {
	return format.Message(actual, "not to be an APIError with status", int(matcher))
}
