package movement

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/EngNelson/erp-solution-sub003/model"
)

// MovementRepository writes the append-only stock movement ledger. There is
// deliberately no update or delete method.
type MovementRepository interface {
	InsertMovementsTx(ctx context.Context, tx *sqlx.Tx, movements []model.StockMovement) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewMovementRepository(conn *sqlx.DB) MovementRepository {
	return &SQL{conn: conn}
}

func (r *SQL) InsertMovementsTx(ctx context.Context, tx *sqlx.Tx, movements []model.StockMovement) error {
	for _, m := range movements {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO stock_movement (movement_type, trigger_type, triggered_by, source_location_id, target_location_id, product_item_id, created_by, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			m.MovementType, m.TriggerType, m.TriggeredBy, m.SourceLocationID, m.TargetLocationID,
			m.ProductItemID, m.CreatedBy, m.CreatedAt); err != nil {
			return err
		}
	}
	return nil
}
