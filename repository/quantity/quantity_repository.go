package quantity

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/EngNelson/erp-solution-sub003/constant"
	"github.com/EngNelson/erp-solution-sub003/model"
)

type QuantityRepository interface {
	ApplyTransitionTx(ctx context.Context, tx *sqlx.Tx, variantID, productID uint64, from, to constant.ItemState, qty int) error
	GetVariantSnapshotsTx(ctx context.Context, tx *sqlx.Tx, variantIDs []uint64) ([]model.VariantQuantity, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewQuantityRepository(conn *sqlx.DB) QuantityRepository {
	return &SQL{conn: conn}
}

// ApplyTransitionTx applies one (decrement, increment) counter pair at both
// variant and product level. Column names come from the ItemStateColumn
// whitelist, never from input.
func (r *SQL) ApplyTransitionTx(ctx context.Context, tx *sqlx.Tx, variantID, productID uint64, from, to constant.ItemState, qty int) error {
	fromCol, ok := constant.ItemStateColumn[from]
	if !ok {
		return fmt.Errorf("no quantity column for state %s", from)
	}
	toCol, ok := constant.ItemStateColumn[to]
	if !ok {
		return fmt.Errorf("no quantity column for state %s", to)
	}

	variantQ := fmt.Sprintf("UPDATE variant_quantity SET %s = %s - ?, %s = %s + ? WHERE variant_id = ?", fromCol, fromCol, toCol, toCol)
	if _, err := tx.ExecContext(ctx, variantQ, qty, qty, variantID); err != nil {
		return err
	}

	productQ := fmt.Sprintf("UPDATE product_quantity SET %s = %s - ?, %s = %s + ? WHERE product_id = ?", fromCol, fromCol, toCol, toCol)
	if _, err := tx.ExecContext(ctx, productQ, qty, qty, productID); err != nil {
		return err
	}
	return nil
}

func (r *SQL) GetVariantSnapshotsTx(ctx context.Context, tx *sqlx.Tx, variantIDs []uint64) ([]model.VariantQuantity, error) {
	if len(variantIDs) == 0 {
		return []model.VariantQuantity{}, nil
	}
	q, args, err := sqlx.In(`SELECT variant_id, product_id, available, reserved, in_transit, got_out, pending_reception, is_dead, discovered
FROM variant_quantity WHERE variant_id IN (?)`, variantIDs)
	if err != nil {
		return nil, err
	}
	rows, err := tx.QueryxContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snapshots := make([]model.VariantQuantity, 0, len(variantIDs))
	for rows.Next() {
		var s model.VariantQuantity
		if err := rows.StructScan(&s); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}
