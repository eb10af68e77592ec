package konto

import (
	"errors"
	"fmt"
)

// Ledger errors. They are always returned wrapped with context, use
// errors.Is to test them.
var (
	ErrAccountExists      = errors.New("account already exists")
	ErrAccountMissing     = errors.New("account does not exist")
	ErrTransactionExists  = errors.New("transaction already exists")
	ErrTransactionMissing = errors.New("transaction does not exist")
)

// AttributeError reports a transaction attribute outside of its valid range,
// like a negative transfer amount or an interest rate above 1.
type AttributeError struct {
	Field  string // Field is the name of the rejected attribute.
	Reason string // Reason is a human-readable explanation.
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ParseError reports a persisted record that cannot be turned back into a
// transaction: malformed JSON, missing or unknown discriminator.
type ParseError struct {
	Reason string
	Err    error // Err is the underlying decoding error, if any.
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Reason, e.Err)
	}
	return "parse error: " + e.Reason
}

func (e *ParseError) Unwrap() error { return e.Err }
