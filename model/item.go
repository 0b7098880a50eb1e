package model

import (
	"time"

	"github.com/EngNelson/erp-solution-sub003/constant"
)

// ProductItem is one physical trackable stock unit. It is owned by exactly
// one location at a time, or none once withdrawn (GOT_OUT).
type ProductItem struct {
	ID           uint64             `db:"id" json:"id"`
	Barcode      string             `db:"barcode" json:"barcode"`
	VariantID    uint64             `db:"variant_id" json:"variant_id"`
	ProductID    uint64             `db:"product_id" json:"product_id"`
	LocationID   *uint64            `db:"location_id" json:"location_id,omitempty"`
	State        constant.ItemState `db:"state" json:"state"`
	PurchaseCost float64            `db:"purchase_cost" json:"purchase_cost"`
	OutputID     *uint64            `db:"output_id" json:"-"`
	CreatedAt    time.Time          `db:"created_at" json:"created_at"`
}
