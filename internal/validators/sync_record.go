package validators

import (
	"context"
	"fmt"
	"math"

	"github.com/MKhiriev/go-grocery-sync/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldSyncID targets the stable identifier of a record.
	FieldSyncID = "sync_id"

	// FieldServerID targets the server-assigned identifier. Records coming
	// back from the server must carry one.
	FieldServerID = "server_id"

	// FieldShoppingListID targets the server id of an item's owning list.
	FieldShoppingListID = "shopping_list_id"

	// FieldQuantity targets an item's quantity.
	FieldQuantity = "quantity"

	// FieldCoordinates targets a store's latitude and longitude.
	FieldCoordinates = "coordinates"

	// FieldEntityType targets the kind tag of a deleted-item record.
	FieldEntityType = "entity_type"

	// FieldServerTimestamp targets the watermark of a sync response.
	FieldServerTimestamp = "server_timestamp"
)

// SyncRecordValidator implements the Validator interface for the sync wire
// records: ShoppingListSync, ShoppingItemSync, StoreLocationSync,
// DeletedItemSync and the SyncResponse envelope. Both value and pointer
// forms are accepted.
type SyncRecordValidator struct {
}

// NewSyncRecordValidator constructs a new SyncRecordValidator
// and returns it as the Validator interface.
func NewSyncRecordValidator() Validator {
	return &SyncRecordValidator{}
}

// Validate dispatches validation to the appropriate type-specific method.
// With no fields the full rule set of the type applies.
func (v *SyncRecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ShoppingListSync:
		return v.validateList(value, fields...)
	case *models.ShoppingListSync:
		return v.validateList(*value, fields...)

	case models.ShoppingItemSync:
		return v.validateItem(value, fields...)
	case *models.ShoppingItemSync:
		return v.validateItem(*value, fields...)

	case models.StoreLocationSync:
		return v.validateStore(value, fields...)
	case *models.StoreLocationSync:
		return v.validateStore(*value, fields...)

	case models.DeletedItemSync:
		return v.validateDeletedItem(value, fields...)
	case *models.DeletedItemSync:
		return v.validateDeletedItem(*value, fields...)

	case models.SyncResponse:
		return v.validateResponse(value, fields...)
	case *models.SyncResponse:
		return v.validateResponse(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SyncRecordValidator) validateList(list models.ShoppingListSync, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSyncID, FieldServerID}
	}

	for _, f := range fields {
		switch f {
		case FieldSyncID:
			if list.SyncID == "" {
				return ErrInvalidSyncID
			}
		case FieldServerID:
			if list.ID == nil {
				return ErrMissingServerID
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *SyncRecordValidator) validateItem(item models.ShoppingItemSync, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSyncID, FieldServerID, FieldShoppingListID, FieldQuantity}
	}

	for _, f := range fields {
		switch f {
		case FieldSyncID:
			if item.SyncID == "" {
				return ErrInvalidSyncID
			}
		case FieldServerID:
			if item.ID == nil {
				return ErrMissingServerID
			}
		case FieldShoppingListID:
			if item.ShoppingListID <= 0 {
				return ErrInvalidShoppingListID
			}
		case FieldQuantity:
			if math.IsNaN(item.Quantity) || math.IsInf(item.Quantity, 0) || item.Quantity < 0 {
				return ErrInvalidQuantity
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *SyncRecordValidator) validateStore(store models.StoreLocationSync, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSyncID, FieldServerID, FieldCoordinates}
	}

	for _, f := range fields {
		switch f {
		case FieldSyncID:
			if store.SyncID == "" {
				return ErrInvalidSyncID
			}
		case FieldServerID:
			if store.ID == nil {
				return ErrMissingServerID
			}
		case FieldCoordinates:
			if !validCoordinate(store.Latitude, 90) || !validCoordinate(store.Longitude, 180) {
				return ErrInvalidCoordinates
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *SyncRecordValidator) validateDeletedItem(item models.DeletedItemSync, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSyncID, FieldEntityType}
	}

	for _, f := range fields {
		switch f {
		case FieldSyncID:
			if item.SyncID == "" {
				return ErrInvalidSyncID
			}
		case FieldEntityType:
			if !item.EntityType.Valid() {
				return ErrInvalidEntityType
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *SyncRecordValidator) validateResponse(resp models.SyncResponse, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldServerTimestamp}
	}

	for _, f := range fields {
		switch f {
		case FieldServerTimestamp:
			if resp.ServerTimestamp.IsZero() {
				return ErrMissingServerTimestamp
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func validCoordinate(c, limit float64) bool {
	return !math.IsNaN(c) && c >= -limit && c <= limit
}
