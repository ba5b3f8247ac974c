// Package validation implements the client-side input rules the Iris API
// expects callers to enforce before any request is made.
package validation

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// MaxCommentLength is the longest transfer comment the API accepts.
const MaxCommentLength = 128

// Trade price bounds (inclusive).
var (
	MinTradePrice = decimal.RequireFromString("0.01")
	MaxTradePrice = decimal.NewFromInt(1_000_000)
)

// Deep-link comments travel inside a t.me start parameter and are limited to
// ASCII letters, digits, and underscore.
var deepLinkCommentPattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// Error is an input-validation failure. It is raised synchronously before any
// I/O and is never suppressed, unlike remote failures which API methods
// swallow into an absent result. Callers rely on this split to tell "I passed
// bad arguments" apart from "the remote call did not succeed".
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Count validates a count/amount parameter. Zero and negative values are
// rejected.
func Count(n int) error {
	if n <= 0 {
		return &Error{Field: "count", Reason: "must be a positive integer"}
	}
	return nil
}

// Comment validates a free-text transfer comment. Empty comments are allowed;
// the parameter is simply omitted from the request.
func Comment(comment string) error {
	if comment == "" {
		return nil
	}
	if utf8.RuneCountInString(comment) > MaxCommentLength {
		return &Error{Field: "comment", Reason: fmt.Sprintf("must not exceed %d characters", MaxCommentLength)}
	}
	return nil
}

// DeepLinkComment validates a comment embedded in a deep link. On top of the
// length limit, only ASCII letters, digits, and underscore are accepted.
func DeepLinkComment(comment string) error {
	if comment == "" {
		return nil
	}
	if err := Comment(comment); err != nil {
		return err
	}
	if !deepLinkCommentPattern.MatchString(comment) {
		return &Error{Field: "comment", Reason: "may only contain letters, digits, and underscore"}
	}
	return nil
}

// Price validates a trade price against the inclusive [0.01, 1000000] range.
func Price(price decimal.Decimal) error {
	if price.LessThan(MinTradePrice) || price.GreaterThan(MaxTradePrice) {
		return &Error{Field: "price", Reason: fmt.Sprintf("must be between %s and %s", MinTradePrice, MaxTradePrice)}
	}
	return nil
}
