package jira

import (
	"errors"
	"fmt"
)

// Errors returned by Client. All of them are terminal for the current
// invocation: nothing is retried or recovered locally.
var (
	// ErrUnauthorized covers both 401 and 403 responses.
	ErrUnauthorized = errors.New("this user is not authorized for this action")
	// ErrSerialization means a 2xx response body did not match the
	// expected shape.
	ErrSerialization = errors.New("failed to decode the response body")
	// ErrUnknown covers every transport failure and status code the
	// client does not classify more precisely.
	ErrUnknown = errors.New("an unknown api error occurred")
)

// InvalidBaseURLError reports a configured domain that could not be
// used to build a request.
type InvalidBaseURLError struct {
	BaseURL string
}

func (e *InvalidBaseURLError) Error() string {
	return fmt.Sprintf("an invalid base url was used `%s`", e.BaseURL)
}

// NotFoundError reports a missing resource. Jira answers 404 both for
// absent issues and for issues the user may not see, so the two cases
// are indistinguishable here.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("the %s `%s` was not found, or the user was unauthorized", e.Kind, e.Name)
}
