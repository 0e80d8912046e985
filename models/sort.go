package models

import "strings"

// SortMode orders the items of a list.
type SortMode string

const (
	SortCustom   SortMode = "CUSTOM"
	SortDate     SortMode = "DATE"
	SortQuantity SortMode = "QUANTITY"
	SortChecked  SortMode = "CHECKED"
)

// ParseSortMode maps a case-insensitive name to a SortMode, falling back to
// SortCustom for unknown input.
func ParseSortMode(s string) SortMode {
	switch SortMode(strings.ToUpper(strings.TrimSpace(s))) {
	case SortDate:
		return SortDate
	case SortQuantity:
		return SortQuantity
	case SortChecked:
		return SortChecked
	default:
		return SortCustom
	}
}
