package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgPriceNotFound   = "price not found"
	ErrMsgAbilityNotFound = "ability not found"

	// Classification errors
	ErrMsgItemNotClassifiable = "item not found in any price catalog"

	// Drop table errors
	ErrMsgDropTableNotFound = "drop table not found"
	ErrMsgUnknownArea       = "could not find area"

	// Quest errors
	ErrMsgQuestNotFound = "quest not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrPriceNotFound is only surfaced when the missing-price-is-zero policy is disabled
	ErrPriceNotFound   = errors.New(ErrMsgPriceNotFound)
	ErrAbilityNotFound = errors.New(ErrMsgAbilityNotFound)

	ErrItemNotClassifiable = errors.New(ErrMsgItemNotClassifiable)

	ErrDropTableNotFound = errors.New(ErrMsgDropTableNotFound)
	ErrUnknownArea       = errors.New(ErrMsgUnknownArea)

	ErrQuestNotFound = errors.New(ErrMsgQuestNotFound)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
