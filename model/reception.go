package model

import (
	"time"

	"github.com/EngNelson/erp-solution-sub003/constant"
)

// Reception is an inbound record. The output workflow only ever creates
// compensating receptions (type INTERNAL_PROBLEM) when a progressed output
// is canceled; the receiving workflow processes them from there.
type Reception struct {
	ID        uint64                   `db:"id" json:"id"`
	Reference string                   `db:"reference" json:"reference"`
	Type      constant.ReceptionType   `db:"type" json:"type"`
	Status    constant.ReceptionStatus `db:"status" json:"status"`
	OutputID  *uint64                  `db:"output_id" json:"output_id,omitempty"`
	CreatedBy uint64                   `db:"created_by" json:"created_by"`
	CreatedAt time.Time                `db:"created_at" json:"created_at"`
}
