package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors detected eagerly at the start of a solve.
var (
	ErrEmptyStoreSet     = errors.New("store set must not be empty")
	ErrEmptyShoppingList = errors.New("shopping list must not be empty")
)

// ConfigurationError reports invalid solver configuration: bad coordinates,
// a negative hourly rate, or a non-positive max route length.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// InputShapeError reports malformed caller-supplied data, such as a
// negative price in the price matrix.
type InputShapeError struct {
	Detail string
}

func (e *InputShapeError) Error() string {
	return fmt.Sprintf("malformed input: %s", e.Detail)
}
