package reception

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/EngNelson/erp-solution-sub003/model"
)

type ReceptionRepository interface {
	InsertReceptionTx(ctx context.Context, tx *sqlx.Tx, rec *model.Reception) (uint64, error)
	InsertReceptionItemsTx(ctx context.Context, tx *sqlx.Tx, receptionID uint64, itemIDs []uint64) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewReceptionRepository(conn *sqlx.DB) ReceptionRepository {
	return &SQL{conn: conn}
}

func (r *SQL) InsertReceptionTx(ctx context.Context, tx *sqlx.Tx, rec *model.Reception) (uint64, error) {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO reception (reference, type, status, output_id, created_by, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		rec.Reference, rec.Type, rec.Status, rec.OutputID, rec.CreatedBy, rec.CreatedAt)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertReceptionItemsTx(ctx context.Context, tx *sqlx.Tx, receptionID uint64, itemIDs []uint64) error {
	for _, itemID := range itemIDs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO reception_item (reception_id, product_item_id) VALUES (?, ?)", receptionID, itemID); err != nil {
			return err
		}
	}
	return nil
}
