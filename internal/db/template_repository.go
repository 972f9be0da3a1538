package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/itemforge/internal/model"
)

// PurgeResult: сколько строк удалила очистка сирот.
type PurgeResult struct {
	Instances int64
	Templates int64
}

// TemplateRepository управляет базовыми (item_template) и сгенерированными
// (custom_item_template) шаблонами предметов.
type TemplateRepository struct {
	db *pgxpool.Pool
}

// NewTemplateRepository создаёт новый TemplateRepository.
func NewTemplateRepository(db *pgxpool.Pool) *TemplateRepository {
	return &TemplateRepository{db: db}
}

const templateColumns = `entry, name, class, subclass, quality, item_level, material, stats_count, stat_types, stat_values`

// GetBase загружает базовый шаблон по entry.
func (r *TemplateRepository) GetBase(ctx context.Context, entry int32) (*model.ItemTemplate, error) {
	row := r.db.QueryRow(ctx, `SELECT `+templateColumns+` FROM item_template WHERE entry = $1`, entry)
	tmpl, err := scanTemplate(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("base template %d: %w", entry, ErrTemplateNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying base template %d: %w", entry, err)
	}
	return tmpl, nil
}

// GetCustom загружает сгенерированный шаблон по entry.
func (r *TemplateRepository) GetCustom(ctx context.Context, entry int32) (*model.ItemTemplate, bool, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+templateColumns+`, base_entry, perfect FROM custom_item_template WHERE entry = $1`, entry)

	var (
		types, values []int32
		perfect       bool
		tmpl          model.ItemTemplate
	)
	dest := append(templateDest(&tmpl, &types, &values), &tmpl.BaseEntry, &perfect)
	err := row.Scan(dest...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("custom template %d: %w", entry, ErrTemplateNotFound)
	}
	if err != nil {
		return nil, false, fmt.Errorf("querying custom template %d: %w", entry, err)
	}
	if err := fillStats(&tmpl, types, values); err != nil {
		return nil, false, err
	}
	return &tmpl, perfect, nil
}

// Get ищет шаблон сначала среди сгенерированных, затем среди базовых.
func (r *TemplateRepository) Get(ctx context.Context, entry int32) (*model.ItemTemplate, error) {
	tmpl, _, err := r.GetCustom(ctx, entry)
	if err == nil {
		return tmpl, nil
	}
	if !errors.Is(err, ErrTemplateNotFound) {
		return nil, err
	}
	return r.GetBase(ctx, entry)
}

// SaveBase вставляет или обновляет базовый шаблон.
func (r *TemplateRepository) SaveBase(ctx context.Context, tmpl *model.ItemTemplate) error {
	types, values := splitStats(tmpl)
	_, err := r.db.Exec(ctx, `
		INSERT INTO item_template (`+templateColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (entry) DO UPDATE SET
			name = EXCLUDED.name, class = EXCLUDED.class, subclass = EXCLUDED.subclass,
			quality = EXCLUDED.quality, item_level = EXCLUDED.item_level, material = EXCLUDED.material,
			stats_count = EXCLUDED.stats_count, stat_types = EXCLUDED.stat_types, stat_values = EXCLUDED.stat_values
	`, templateArgs(tmpl, types, values)...)
	if err != nil {
		return fmt.Errorf("saving base template %d: %w", tmpl.Entry, err)
	}
	return nil
}

// SaveCustom вставляет или обновляет сгенерированный шаблон.
func (r *TemplateRepository) SaveCustom(ctx context.Context, tmpl *model.ItemTemplate, perfect bool) error {
	types, values := splitStats(tmpl)
	_, err := r.db.Exec(ctx, `
		INSERT INTO custom_item_template (`+templateColumns+`, base_entry, perfect)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (entry) DO UPDATE SET
			name = EXCLUDED.name, class = EXCLUDED.class, subclass = EXCLUDED.subclass,
			quality = EXCLUDED.quality, item_level = EXCLUDED.item_level, material = EXCLUDED.material,
			stats_count = EXCLUDED.stats_count, stat_types = EXCLUDED.stat_types, stat_values = EXCLUDED.stat_values,
			base_entry = EXCLUDED.base_entry, perfect = EXCLUDED.perfect, created_at = NOW()
	`, append(templateArgs(tmpl, types, values), tmpl.BaseEntry, perfect)...)
	if err != nil {
		return fmt.Errorf("saving custom template %d: %w", tmpl.Entry, err)
	}
	return nil
}

// DeleteCustom удаляет сгенерированный шаблон и все его экземпляры.
func (r *TemplateRepository) DeleteCustom(ctx context.Context, entry int32) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM item_instance WHERE item_entry = $1`, entry); err != nil {
		return fmt.Errorf("deleting instances of %d: %w", entry, err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM custom_item_template WHERE entry = $1`, entry)
	if err != nil {
		return fmt.Errorf("deleting custom template %d: %w", entry, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("custom template %d: %w", entry, ErrTemplateNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing delete of %d: %w", entry, err)
	}
	return nil
}

// MaxCustomEntry возвращает максимальный entry среди сгенерированных шаблонов (0 если их нет).
func (r *TemplateRepository) MaxCustomEntry(ctx context.Context) (int32, error) {
	var maxEntry int32
	err := r.db.QueryRow(ctx, `SELECT COALESCE(MAX(entry), 0) FROM custom_item_template`).Scan(&maxEntry)
	if err != nil {
		return 0, fmt.Errorf("querying max custom entry: %w", err)
	}
	return maxEntry, nil
}

// CustomEntriesFrom возвращает все entry >= start по возрастанию.
func (r *TemplateRepository) CustomEntriesFrom(ctx context.Context, start int32) ([]int32, error) {
	rows, err := r.db.Query(ctx,
		`SELECT entry FROM custom_item_template WHERE entry >= $1 ORDER BY entry`, start)
	if err != nil {
		return nil, fmt.Errorf("querying custom entries: %w", err)
	}
	entries, err := pgx.CollectRows(rows, pgx.RowTo[int32])
	if err != nil {
		return nil, fmt.Errorf("collecting custom entries: %w", err)
	}
	return entries, nil
}

// PurgeOrphans удаляет экземпляры вне инвентарей, затем шаблоны без экземпляров.
func (r *TemplateRepository) PurgeOrphans(ctx context.Context) (PurgeResult, error) {
	var res PurgeResult

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return res, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx,
		`DELETE FROM item_instance WHERE guid NOT IN (SELECT item FROM character_inventory)`)
	if err != nil {
		return res, fmt.Errorf("purging orphan instances: %w", err)
	}
	res.Instances = tag.RowsAffected()

	tag, err = tx.Exec(ctx,
		`DELETE FROM custom_item_template WHERE entry NOT IN (SELECT item_entry FROM item_instance)`)
	if err != nil {
		return res, fmt.Errorf("purging orphan templates: %w", err)
	}
	res.Templates = tag.RowsAffected()

	if err := tx.Commit(ctx); err != nil {
		return PurgeResult{}, fmt.Errorf("committing purge: %w", err)
	}
	return res, nil
}

// scanTemplate читает колонки templateColumns.
func scanTemplate(row pgx.Row) (*model.ItemTemplate, error) {
	var (
		tmpl          model.ItemTemplate
		types, values []int32
	)
	if err := row.Scan(templateDest(&tmpl, &types, &values)...); err != nil {
		return nil, err
	}
	if err := fillStats(&tmpl, types, values); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// templateArgs: параметры в порядке templateColumns.
func templateArgs(tmpl *model.ItemTemplate, types, values []int32) []any {
	return []any{
		tmpl.Entry, tmpl.Name, int32(tmpl.Class), int32(tmpl.Subclass), int32(tmpl.Quality),
		tmpl.ItemLevel, tmpl.Material, tmpl.StatsCount, types, values,
	}
}

// templateDest: цели Scan в порядке templateColumns.
func templateDest(tmpl *model.ItemTemplate, types, values *[]int32) []any {
	return []any{
		&tmpl.Entry, &tmpl.Name, (*int32)(&tmpl.Class), (*int32)(&tmpl.Subclass), (*int32)(&tmpl.Quality),
		&tmpl.ItemLevel, &tmpl.Material, &tmpl.StatsCount, types, values,
	}
}

func fillStats(tmpl *model.ItemTemplate, types, values []int32) error {
	if len(types) != len(values) {
		return fmt.Errorf("template %d: %d stat types vs %d values", tmpl.Entry, len(types), len(values))
	}
	if len(types) > model.MaxItemStats {
		return fmt.Errorf("template %d: %d stats exceed %d slots", tmpl.Entry, len(types), model.MaxItemStats)
	}
	for i := range types {
		tmpl.Stats[i] = model.StatSlot{Type: model.Stat(types[i]), Value: values[i]}
	}
	return nil
}

// splitStats сохраняет только занятые слоты, в порядке слотов.
func splitStats(tmpl *model.ItemTemplate) ([]int32, []int32) {
	types := make([]int32, 0, model.MaxItemStats)
	values := make([]int32, 0, model.MaxItemStats)
	for _, s := range tmpl.Stats {
		if s.Value == 0 {
			continue
		}
		types = append(types, int32(s.Type))
		values = append(values, s.Value)
	}
	return types, values
}
