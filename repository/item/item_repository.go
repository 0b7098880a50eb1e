package item

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/EngNelson/erp-solution-sub003/constant"
	"github.com/EngNelson/erp-solution-sub003/model"
)

type ItemRepository interface {
	GetByBarcodeForUpdateTx(ctx context.Context, tx *sqlx.Tx, barcode string) (*model.ProductItem, error)
	GetByOutputForUpdateTx(ctx context.Context, tx *sqlx.Tx, outputID uint64) ([]model.ProductItem, error)
	UpdateStateLocationTx(ctx context.Context, tx *sqlx.Tx, itemID uint64, state constant.ItemState, locationID *uint64) error
	AttachToOutputTx(ctx context.Context, tx *sqlx.Tx, itemID, outputID uint64) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewItemRepository(conn *sqlx.DB) ItemRepository {
	return &SQL{conn: conn}
}

const itemColumns = "id, barcode, variant_id, product_id, location_id, state, purchase_cost, output_id, created_at"

// GetByBarcodeForUpdateTx locks the item row so that two confirm calls
// scanning the same barcode serialize on it.
func (r *SQL) GetByBarcodeForUpdateTx(ctx context.Context, tx *sqlx.Tx, barcode string) (*model.ProductItem, error) {
	var it model.ProductItem
	q := "SELECT " + itemColumns + " FROM product_item WHERE barcode = ? FOR UPDATE"
	if err := tx.QueryRowxContext(ctx, q, barcode).StructScan(&it); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &it, nil
}

func (r *SQL) GetByOutputForUpdateTx(ctx context.Context, tx *sqlx.Tx, outputID uint64) ([]model.ProductItem, error) {
	q := "SELECT " + itemColumns + " FROM product_item WHERE output_id = ? ORDER BY id FOR UPDATE"
	rows, err := tx.QueryxContext(ctx, q, outputID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ProductItem, 0)
	for rows.Next() {
		var it model.ProductItem
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *SQL) UpdateStateLocationTx(ctx context.Context, tx *sqlx.Tx, itemID uint64, state constant.ItemState, locationID *uint64) error {
	_, err := tx.ExecContext(ctx, "UPDATE product_item SET state = ?, location_id = ? WHERE id = ?", state, locationID, itemID)
	return err
}

func (r *SQL) AttachToOutputTx(ctx context.Context, tx *sqlx.Tx, itemID, outputID uint64) error {
	_, err := tx.ExecContext(ctx, "UPDATE product_item SET output_id = ? WHERE id = ?", outputID, itemID)
	return err
}
