package models

// PendingCounts summarises what the next sync would upload.
type PendingCounts struct {
	Lists      int
	Items      int
	Stores     int
	Tombstones int
}

// Total is the sum of all pending entities and tombstones.
func (p PendingCounts) Total() int {
	return p.Lists + p.Items + p.Stores + p.Tombstones
}
