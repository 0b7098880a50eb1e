package model

import (
	"time"

	"github.com/EngNelson/erp-solution-sub003/constant"
)

// Output is a request to remove physical stock from a storage point.
type Output struct {
	ID             uint64                `db:"id"`
	Reference      string                `db:"reference"`
	Barcode        string                `db:"barcode"`
	Type           constant.OutputType   `db:"type"`
	Status         constant.OutputStatus `db:"status"`
	StoragePointID *uint64               `db:"storage_point_id"`
	OrderRef       *string               `db:"order_ref"`
	ParentID       *uint64               `db:"parent_id"`
	ChildID        *uint64               `db:"child_id"`
	CreatedBy      uint64                `db:"created_by"`
	CreatedAt      time.Time             `db:"created_at"`
	ConfirmedBy    *uint64               `db:"confirmed_by"`
	ConfirmedAt    *time.Time            `db:"confirmed_at"`
	ValidatedBy    *uint64               `db:"validated_by"`
	ValidatedAt    *time.Time            `db:"validated_at"`
	WithdrawBy     *string               `db:"withdraw_by"`
	CanceledBy     *uint64               `db:"canceled_by"`
	CanceledAt     *time.Time            `db:"canceled_at"`
	CancelReason   *string               `db:"cancel_reason"`
}

// OutputLine is one requested (variant, quantity) pair of an output.
type OutputLine struct {
	ID        uint64 `db:"id" json:"id"`
	OutputID  uint64 `db:"output_id" json:"-"`
	VariantID uint64 `db:"variant_id" json:"variant_id"`
	Quantity  int    `db:"quantity" json:"quantity"`
	Position  int    `db:"position" json:"position"`
}

type OutputLineRequest struct {
	VariantID uint64 `json:"variant_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type CreateOutputRequest struct {
	Type            constant.OutputType `json:"type" validate:"required"`
	StoragePointRef string              `json:"storage_point_ref,omitempty"`
	OrderRef        string              `json:"order_ref,omitempty"`
	Lines           []OutputLineRequest `json:"lines" validate:"required,dive,required"`
}

type ConfirmOutputRequest struct {
	Barcodes       []string `json:"barcodes" validate:"required,min=1,dive,required"`
	PartialAllowed bool     `json:"partial_allowed"`
}

type ValidateOutputRequest struct {
	WithdrawnBy string `json:"withdrawn_by" validate:"required"`
}

type CancelOutputRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type OutputResponse struct {
	ID             uint64  `json:"id"`
	Reference      string  `json:"reference"`
	Barcode        string  `json:"barcode"`
	Type           string  `json:"type"`
	Status         string  `json:"status"`
	StoragePointID *uint64 `json:"storage_point_id,omitempty"`
	ChildReference string  `json:"child_reference,omitempty"`
}

// OutputDetail is the read projection returned by GetOutput.
type OutputDetail struct {
	ID              uint64          `json:"id"`
	Reference       string          `json:"reference"`
	Barcode         string          `json:"barcode"`
	Type            string          `json:"type"`
	Status          string          `json:"status"`
	StoragePointID  *uint64         `json:"storage_point_id,omitempty"`
	OrderRef        *string         `json:"order_ref,omitempty"`
	ParentReference string          `json:"parent_reference,omitempty"`
	ChildReference  string          `json:"child_reference,omitempty"`
	Lines           []OutputLine    `json:"lines"`
	Items           []ProductItem   `json:"items"`
	Movements       []StockMovement `json:"movements"`
	CreatedBy       uint64          `json:"created_by"`
	CreatedAt       time.Time       `json:"created_at"`
	ConfirmedBy     *uint64         `json:"confirmed_by,omitempty"`
	ConfirmedAt     *time.Time      `json:"confirmed_at,omitempty"`
	ValidatedBy     *uint64         `json:"validated_by,omitempty"`
	ValidatedAt     *time.Time      `json:"validated_at,omitempty"`
	WithdrawBy      *string         `json:"withdraw_by,omitempty"`
	CanceledBy      *uint64         `json:"canceled_by,omitempty"`
	CanceledAt      *time.Time      `json:"canceled_at,omitempty"`
	CancelReason    *string         `json:"cancel_reason,omitempty"`
}
