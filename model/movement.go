package model

import (
	"time"

	"github.com/EngNelson/erp-solution-sub003/constant"
)

// StockMovement is one append-only ledger entry for a physical relocation.
// Rows are never updated or deleted.
type StockMovement struct {
	ID               uint64                   `db:"id" json:"id"`
	MovementType     constant.MovementType    `db:"movement_type" json:"movement_type"`
	TriggerType      constant.MovementTrigger `db:"trigger_type" json:"trigger_type"`
	TriggeredBy      uint64                   `db:"triggered_by" json:"triggered_by"`
	SourceLocationID *uint64                  `db:"source_location_id" json:"source_location_id,omitempty"`
	TargetLocationID *uint64                  `db:"target_location_id" json:"target_location_id,omitempty"`
	ProductItemID    uint64                   `db:"product_item_id" json:"product_item_id"`
	CreatedBy        uint64                   `db:"created_by" json:"created_by"`
	CreatedAt        time.Time                `db:"created_at" json:"created_at"`
}
