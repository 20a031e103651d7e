package e

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("payment not found")

	// ErrInvalidArgument marks malformed construction input: negative
	// amounts, fractions outside [0,1], currency mismatches, missing
	// mandatory builder fields.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState marks protocol violations: a second response from
	// one stage invocation, building without an outcome, nested
	// activity launching. Fatal to the current invocation.
	ErrInvalidState = errors.New("invalid state")
)

func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

func WrapIfErr(msg string, err error) error {
	if err == nil {
		return nil
	}
	return Wrap(msg, err)
}

// FlowError is the single error kind exposed at the boundary with the
// messaging transport. Channel failures, service-not-installed and the
// like are translated into it before they reach this module.
type FlowError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewFlowError(code, message string) *FlowError {
	return &FlowError{Code: code, Message: message}
}

func (f *FlowError) Error() string {
	return fmt.Sprintf("flow error %s: %s", f.Code, f.Message)
}
