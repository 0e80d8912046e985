package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidSyncID          = errors.New("invalid sync id")
	ErrMissingServerID        = errors.New("server id is required")
	ErrInvalidShoppingListID  = errors.New("invalid shopping list id")
	ErrInvalidQuantity        = errors.New("invalid quantity")
	ErrInvalidCoordinates     = errors.New("coordinates out of range")
	ErrInvalidEntityType      = errors.New("invalid entity type")
	ErrMissingServerTimestamp = errors.New("server timestamp is required")
)
