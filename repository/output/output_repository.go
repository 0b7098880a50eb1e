package output

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/EngNelson/erp-solution-sub003/constant"
	"github.com/EngNelson/erp-solution-sub003/model"
)

type OutputRepository interface {
	InsertOutputTx(ctx context.Context, tx *sqlx.Tx, out *model.Output) (uint64, error)
	InsertLinesTx(ctx context.Context, tx *sqlx.Tx, outputID uint64, lines []model.OutputLine) error
	GetByReferenceForUpdateTx(ctx context.Context, tx *sqlx.Tx, reference string) (*model.Output, error)
	GetLinesTx(ctx context.Context, tx *sqlx.Tx, outputID uint64) ([]model.OutputLine, error)
	UpdateLineQuantityTx(ctx context.Context, tx *sqlx.Tx, lineID uint64, quantity int) error
	DeleteLineTx(ctx context.Context, tx *sqlx.Tx, lineID uint64) error
	SetStoragePointTx(ctx context.Context, tx *sqlx.Tx, outputID, storagePointID uint64) error
	SetChildTx(ctx context.Context, tx *sqlx.Tx, parentID, childID uint64) error
	ConfirmTx(ctx context.Context, tx *sqlx.Tx, outputID, actorID uint64, at time.Time) error
	ValidateTx(ctx context.Context, tx *sqlx.Tx, outputID, actorID uint64, withdrawnBy string, at time.Time) error
	CancelTx(ctx context.Context, tx *sqlx.Tx, outputID, actorID uint64, reason string, at time.Time) error
	GetDetail(ctx context.Context, id uint64) (*model.OutputDetail, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewOutputRepository(conn *sqlx.DB) OutputRepository {
	return &SQL{conn: conn}
}

const outputColumns = `id, reference, barcode, type, status, storage_point_id, order_ref, parent_id, child_id,
created_by, created_at, confirmed_by, confirmed_at, validated_by, validated_at, withdraw_by,
canceled_by, canceled_at, cancel_reason`

func (r *SQL) InsertOutputTx(ctx context.Context, tx *sqlx.Tx, out *model.Output) (uint64, error) {
	q := `INSERT INTO output (reference, barcode, type, status, storage_point_id, order_ref, parent_id, created_by, created_at, canceled_by, canceled_at, cancel_reason)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q,
		out.Reference, out.Barcode, out.Type, out.Status, out.StoragePointID, out.OrderRef,
		out.ParentID, out.CreatedBy, out.CreatedAt, out.CanceledBy, out.CanceledAt, out.CancelReason)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertLinesTx(ctx context.Context, tx *sqlx.Tx, outputID uint64, lines []model.OutputLine) error {
	for _, line := range lines {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO output_line (output_id, variant_id, quantity, position) VALUES (?, ?, ?, ?)",
			outputID, line.VariantID, line.Quantity, line.Position); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) GetByReferenceForUpdateTx(ctx context.Context, tx *sqlx.Tx, reference string) (*model.Output, error) {
	var out model.Output
	q := "SELECT " + outputColumns + " FROM output WHERE reference = ? FOR UPDATE"
	if err := tx.QueryRowxContext(ctx, q, reference).StructScan(&out); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func (r *SQL) GetLinesTx(ctx context.Context, tx *sqlx.Tx, outputID uint64) ([]model.OutputLine, error) {
	rows, err := tx.QueryxContext(ctx,
		"SELECT id, output_id, variant_id, quantity, position FROM output_line WHERE output_id = ? ORDER BY position", outputID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]model.OutputLine, 0)
	for rows.Next() {
		var l model.OutputLine
		if err := rows.StructScan(&l); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (r *SQL) UpdateLineQuantityTx(ctx context.Context, tx *sqlx.Tx, lineID uint64, quantity int) error {
	_, err := tx.ExecContext(ctx, "UPDATE output_line SET quantity = ? WHERE id = ?", quantity, lineID)
	return err
}

func (r *SQL) DeleteLineTx(ctx context.Context, tx *sqlx.Tx, lineID uint64) error {
	_, err := tx.ExecContext(ctx, "DELETE FROM output_line WHERE id = ?", lineID)
	return err
}

func (r *SQL) SetStoragePointTx(ctx context.Context, tx *sqlx.Tx, outputID, storagePointID uint64) error {
	_, err := tx.ExecContext(ctx, "UPDATE output SET storage_point_id = ? WHERE id = ?", storagePointID, outputID)
	return err
}

func (r *SQL) SetChildTx(ctx context.Context, tx *sqlx.Tx, parentID, childID uint64) error {
	_, err := tx.ExecContext(ctx, "UPDATE output SET child_id = ? WHERE id = ?", childID, parentID)
	return err
}

// ConfirmTx moves PENDING -> CONFIRMED. The status guard in the WHERE clause
// makes the transition a compare-and-set: zero affected rows means the output
// was not PENDING anymore and sql.ErrNoRows is returned.
func (r *SQL) ConfirmTx(ctx context.Context, tx *sqlx.Tx, outputID, actorID uint64, at time.Time) error {
	res, err := tx.ExecContext(ctx,
		"UPDATE output SET status = ?, confirmed_by = ?, confirmed_at = ? WHERE id = ? AND status = ?",
		constant.OutputStatusConfirmed, actorID, at, outputID, constant.OutputStatusPending)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *SQL) ValidateTx(ctx context.Context, tx *sqlx.Tx, outputID, actorID uint64, withdrawnBy string, at time.Time) error {
	res, err := tx.ExecContext(ctx,
		"UPDATE output SET status = ?, validated_by = ?, validated_at = ?, withdraw_by = ? WHERE id = ? AND status = ?",
		constant.OutputStatusValidated, actorID, at, withdrawnBy, outputID, constant.OutputStatusConfirmed)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *SQL) CancelTx(ctx context.Context, tx *sqlx.Tx, outputID, actorID uint64, reason string, at time.Time) error {
	res, err := tx.ExecContext(ctx,
		"UPDATE output SET status = ?, canceled_by = ?, canceled_at = ?, cancel_reason = ? WHERE id = ? AND status != ?",
		constant.OutputStatusCanceled, actorID, at, reason, outputID, constant.OutputStatusCanceled)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *SQL) GetDetail(ctx context.Context, id uint64) (*model.OutputDetail, error) {
	var out model.Output
	q := "SELECT " + outputColumns + " FROM output WHERE id = ?"
	if err := r.conn.QueryRowxContext(ctx, q, id).StructScan(&out); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	detail := &model.OutputDetail{
		ID:             out.ID,
		Reference:      out.Reference,
		Barcode:        out.Barcode,
		Type:           string(out.Type),
		Status:         constant.OutputStatusName[out.Status],
		StoragePointID: out.StoragePointID,
		OrderRef:       out.OrderRef,
		CreatedBy:      out.CreatedBy,
		CreatedAt:      out.CreatedAt,
		ConfirmedBy:    out.ConfirmedBy,
		ConfirmedAt:    out.ConfirmedAt,
		ValidatedBy:    out.ValidatedBy,
		ValidatedAt:    out.ValidatedAt,
		WithdrawBy:     out.WithdrawBy,
		CanceledBy:     out.CanceledBy,
		CanceledAt:     out.CanceledAt,
		CancelReason:   out.CancelReason,
	}

	if out.ParentID != nil {
		ref, err := r.referenceOf(ctx, *out.ParentID)
		if err != nil {
			return nil, err
		}
		detail.ParentReference = ref
	}
	if out.ChildID != nil {
		ref, err := r.referenceOf(ctx, *out.ChildID)
		if err != nil {
			return nil, err
		}
		detail.ChildReference = ref
	}

	if err := r.conn.SelectContext(ctx, &detail.Lines,
		"SELECT id, output_id, variant_id, quantity, position FROM output_line WHERE output_id = ? ORDER BY position", id); err != nil {
		return nil, err
	}
	if err := r.conn.SelectContext(ctx, &detail.Items,
		"SELECT id, barcode, variant_id, product_id, location_id, state, purchase_cost, output_id, created_at FROM product_item WHERE output_id = ? ORDER BY id", id); err != nil {
		return nil, err
	}
	if err := r.conn.SelectContext(ctx, &detail.Movements,
		`SELECT id, movement_type, trigger_type, triggered_by, source_location_id, target_location_id, product_item_id, created_by, created_at
FROM stock_movement WHERE trigger_type IN (?, ?) AND triggered_by = ? ORDER BY id`,
		constant.MovementTriggerOutputConfirm, constant.MovementTriggerOutputValidate, id); err != nil {
		return nil, err
	}
	if detail.Lines == nil {
		detail.Lines = make([]model.OutputLine, 0)
	}
	if detail.Items == nil {
		detail.Items = make([]model.ProductItem, 0)
	}
	if detail.Movements == nil {
		detail.Movements = make([]model.StockMovement, 0)
	}

	return detail, nil
}

func (r *SQL) referenceOf(ctx context.Context, id uint64) (string, error) {
	var ref string
	if err := r.conn.GetContext(ctx, &ref, "SELECT reference FROM output WHERE id = ?", id); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return ref, nil
}
