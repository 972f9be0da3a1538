package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/itemforge/internal/model"
)

// ItemRepository управляет экземплярами предметов и инвентарём в БД.
type ItemRepository struct {
	db *pgxpool.Pool
}

// NewItemRepository создаёт новый ItemRepository.
func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{db: db}
}

// CreateInstance сохраняет новый экземпляр и выставляет ему guid.
func (r *ItemRepository) CreateInstance(ctx context.Context, item *model.Item) error {
	guid, err := insertInstance(ctx, r.db, item)
	if err != nil {
		return err
	}
	item.SetGUID(guid)
	return nil
}

// GiveItem создаёт экземпляр и кладёт его в первый свободный слот инвентаря владельца.
// Выполняется в одной транзакции.
func (r *ItemRepository) GiveItem(ctx context.Context, item *model.Item) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	guid, err := insertInstance(ctx, tx, item)
	if err != nil {
		return err
	}

	var slot int32
	err = tx.QueryRow(ctx,
		`SELECT COALESCE(MAX(slot) + 1, 0) FROM character_inventory WHERE guid = $1`,
		item.OwnerGUID(),
	).Scan(&slot)
	if err != nil {
		return fmt.Errorf("finding free slot for owner %d: %w", item.OwnerGUID(), err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO character_inventory (guid, slot, item) VALUES ($1, $2, $3)`,
		item.OwnerGUID(), slot, guid,
	)
	if err != nil {
		return fmt.Errorf("adding item %d to inventory: %w", guid, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing give item: %w", err)
	}

	item.SetGUID(guid)
	item.SetSlot(slot)
	return nil
}

// LoadInventory загружает все предметы из инвентаря персонажа, по слотам.
func (r *ItemRepository) LoadInventory(ctx context.Context, ownerGUID int64) ([]*model.Item, error) {
	query := `
		SELECT ii.guid, ii.item_entry, ii.count, ii.created_at, ci.slot
		FROM character_inventory ci
		JOIN item_instance ii ON ii.guid = ci.item
		WHERE ci.guid = $1
		ORDER BY ci.slot
	`

	rows, err := r.db.Query(ctx, query, ownerGUID)
	if err != nil {
		return nil, fmt.Errorf("querying inventory for owner %d: %w", ownerGUID, err)
	}
	defer rows.Close()

	items := make([]*model.Item, 0, 16)
	for rows.Next() {
		var (
			guid      int64
			entry     int32
			count     int32
			createdAt time.Time
			slot      int32
		)
		if err := rows.Scan(&guid, &entry, &count, &createdAt, &slot); err != nil {
			return nil, fmt.Errorf("scanning item row: %w", err)
		}

		item, err := model.NewItem(entry, ownerGUID, count, nil)
		if err != nil {
			return nil, fmt.Errorf("creating item model: %w", err)
		}
		item.SetGUID(guid)
		item.SetSlot(slot)
		item.SetCreatedAt(createdAt)

		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating item rows: %w", err)
	}

	return items, nil
}

// DeleteInstance удаляет экземпляр (строка инвентаря удаляется каскадом).
func (r *ItemRepository) DeleteInstance(ctx context.Context, guid int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM item_instance WHERE guid = $1`, guid); err != nil {
		return fmt.Errorf("deleting item instance %d: %w", guid, err)
	}
	return nil
}

// CountByEntry возвращает число экземпляров шаблона.
func (r *ItemRepository) CountByEntry(ctx context.Context, entry int32) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM item_instance WHERE item_entry = $1`, entry).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting instances of %d: %w", entry, err)
	}
	return n, nil
}

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func insertInstance(ctx context.Context, q querier, item *model.Item) (int64, error) {
	var guid int64
	err := q.QueryRow(ctx,
		`INSERT INTO item_instance (item_entry, owner_guid, count) VALUES ($1, $2, $3) RETURNING guid`,
		item.Entry(), item.OwnerGUID(), item.Count(),
	).Scan(&guid)
	if err != nil {
		return 0, fmt.Errorf("inserting item instance of %d: %w", item.Entry(), err)
	}
	return guid, nil
}
