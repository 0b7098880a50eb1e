package model

// VariantQuantity is the denormalized per-state counter row of a variant.
// Every item-state transition applies exactly one (decrement, increment)
// pair here and on the parent ProductQuantity, in the same transaction.
type VariantQuantity struct {
	VariantID        uint64 `db:"variant_id" json:"variant_id"`
	ProductID        uint64 `db:"product_id" json:"product_id"`
	Available        int64  `db:"available" json:"available"`
	Reserved         int64  `db:"reserved" json:"reserved"`
	InTransit        int64  `db:"in_transit" json:"in_transit"`
	GotOut           int64  `db:"got_out" json:"got_out"`
	PendingReception int64  `db:"pending_reception" json:"pending_reception"`
	IsDead           int64  `db:"is_dead" json:"is_dead"`
	Discovered       int64  `db:"discovered" json:"discovered"`
}
