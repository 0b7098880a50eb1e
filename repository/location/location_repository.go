package location

import (
	"context"
	"database/sql"
	"sort"

	"github.com/jmoiron/sqlx"

	"github.com/EngNelson/erp-solution-sub003/constant"
	"github.com/EngNelson/erp-solution-sub003/model"
)

type LocationRepository interface {
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Location, error)
	FindAncestors(ctx context.Context, id uint64) ([]model.Location, error)
	FindDescendants(ctx context.Context, id uint64) ([]model.Location, error)
	StoragePointOfLocationTx(ctx context.Context, tx *sqlx.Tx, locationID uint64) (uint64, error)
	GetStoragePointByReference(ctx context.Context, reference string) (*model.StoragePoint, error)
	GetDefaultLocationTx(ctx context.Context, tx *sqlx.Tx, storagePointID uint64, purpose constant.LocationPurpose) (*model.Location, error)
	ApplyTotalItemsDeltasTx(ctx context.Context, tx *sqlx.Tx, deltas map[uint64]int) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewLocationRepository(conn *sqlx.DB) LocationRepository {
	return &SQL{conn: conn}
}

const locationColumns = "id, name, parent_id, area_id, total_items"

func (r *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Location, error) {
	var loc model.Location
	q := "SELECT " + locationColumns + " FROM location WHERE id = ?"
	if err := tx.QueryRowxContext(ctx, q, id).StructScan(&loc); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &loc, nil
}

const ancestorsQuery = `WITH RECURSIVE ancestors AS (
	SELECT ` + locationColumns + ` FROM location WHERE id = ?
	UNION ALL
	SELECT l.id, l.name, l.parent_id, l.area_id, l.total_items
	FROM location l JOIN ancestors a ON l.id = a.parent_id
)
SELECT ` + locationColumns + ` FROM ancestors WHERE id != ?`

// FindAncestors walks parent links from the given location up to the root,
// nearest ancestor first. The location itself is excluded.
func (r *SQL) FindAncestors(ctx context.Context, id uint64) ([]model.Location, error) {
	return r.selectLocations(ctx, ancestorsQuery, id, id)
}

const descendantsQuery = `WITH RECURSIVE descendants AS (
	SELECT ` + locationColumns + ` FROM location WHERE id = ?
	UNION ALL
	SELECT l.id, l.name, l.parent_id, l.area_id, l.total_items
	FROM location l JOIN descendants d ON l.parent_id = d.id
)
SELECT ` + locationColumns + ` FROM descendants WHERE id != ?`

func (r *SQL) FindDescendants(ctx context.Context, id uint64) ([]model.Location, error) {
	return r.selectLocations(ctx, descendantsQuery, id, id)
}

func (r *SQL) selectLocations(ctx context.Context, query string, args ...interface{}) ([]model.Location, error) {
	rows, err := r.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := make([]model.Location, 0)
	for rows.Next() {
		var loc model.Location
		if err := rows.StructScan(&loc); err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}
	return locations, rows.Err()
}

// StoragePointOfLocationTx resolves the storage point owning a location by
// walking the tree to the root and joining through the root's area.
func (r *SQL) StoragePointOfLocationTx(ctx context.Context, tx *sqlx.Tx, locationID uint64) (uint64, error) {
	q := `WITH RECURSIVE chain AS (
	SELECT id, parent_id, area_id FROM location WHERE id = ?
	UNION ALL
	SELECT l.id, l.parent_id, l.area_id FROM location l JOIN chain c ON l.id = c.parent_id
)
SELECT a.storage_point_id FROM chain ch
JOIN area a ON ch.area_id = a.id
WHERE ch.parent_id IS NULL`
	var spID uint64
	if err := tx.GetContext(ctx, &spID, q, locationID); err != nil {
		return 0, err
	}
	return spID, nil
}

func (r *SQL) GetStoragePointByReference(ctx context.Context, reference string) (*model.StoragePoint, error) {
	var sp model.StoragePoint
	if err := r.conn.QueryRowxContext(ctx,
		"SELECT id, reference, name FROM storage_point WHERE reference = ?", reference).StructScan(&sp); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &sp, nil
}

// GetDefaultLocationTx resolves the pre-configured staging location of a
// storage point for a purpose. sql.ErrNoRows signals a configuration error.
func (r *SQL) GetDefaultLocationTx(ctx context.Context, tx *sqlx.Tx, storagePointID uint64, purpose constant.LocationPurpose) (*model.Location, error) {
	var loc model.Location
	q := `SELECT l.id, l.name, l.parent_id, l.area_id, l.total_items
FROM storage_point_location spl
JOIN location l ON spl.location_id = l.id
WHERE spl.storage_point_id = ? AND spl.purpose = ?`
	if err := tx.QueryRowxContext(ctx, q, storagePointID, purpose).StructScan(&loc); err != nil {
		return nil, err
	}
	return &loc, nil
}

// ApplyTotalItemsDeltasTx flushes the accumulated per-location counter deltas
// of one confirm/validate call. Deltas are keyed by location id; ids are
// applied in ascending order so concurrent calls touching the same locations
// cannot deadlock on each other.
func (r *SQL) ApplyTotalItemsDeltasTx(ctx context.Context, tx *sqlx.Tx, deltas map[uint64]int) error {
	ids := make([]uint64, 0, len(deltas))
	for id, delta := range deltas {
		if delta != 0 {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		if _, err := tx.ExecContext(ctx,
			"UPDATE location SET total_items = total_items + ? WHERE id = ?", deltas[id], id); err != nil {
			return err
		}
	}
	return nil
}
