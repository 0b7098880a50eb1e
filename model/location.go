package model

// Location is a node in the storage hierarchy. TotalItems is maintained by
// explicit deltas flushed once per confirm/validate call, never by live
// counting in the hot path.
type Location struct {
	ID         uint64  `db:"id" json:"id"`
	Name       string  `db:"name" json:"name"`
	ParentID   *uint64 `db:"parent_id" json:"parent_id,omitempty"`
	AreaID     uint64  `db:"area_id" json:"area_id"`
	TotalItems int64   `db:"total_items" json:"total_items"`
}

type StoragePoint struct {
	ID        uint64 `db:"id" json:"id"`
	Reference string `db:"reference" json:"reference"`
	Name      string `db:"name" json:"name"`
}
