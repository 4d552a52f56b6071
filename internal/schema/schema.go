package schema

import (
	"fmt"

	"go-apparel-stock/internal/model"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Manager owns table existence, additive column migrations and option seeding.
// Ensure is idempotent and safe to call from every process start.
type Manager struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewManager(db *gorm.DB, log zerolog.Logger) *Manager {
	return &Manager{db: db, log: log}
}

// columnMigration is one additive migration. Each is individually idempotent
// and order-independent: a column that already exists is skipped, a failed add
// is logged and does not abort the rest.
type columnMigration struct {
	table any
	field string
}

var additiveColumns = []columnMigration{
	{&model.Item{}, "SubCategory"},
	{&model.Item{}, "Price"},
	{&model.Item{}, "CostPrice"},
	{&model.Item{}, "ImageURI"},
	{&model.Sale{}, "Category"},
	{&model.Sale{}, "SubCategory"},
	{&model.Sale{}, "Color"},
}

// Ensure creates the item, sale and option tables if absent, applies additive
// column migrations, and seeds default options when the table is empty for a
// type. Table creation failure is fatal; a single column add failure is not.
func (m *Manager) Ensure() error {
	migrator := m.db.Migrator()

	for _, table := range []any{&model.Item{}, &model.Sale{}, &model.Option{}} {
		if migrator.HasTable(table) {
			continue
		}
		if err := migrator.CreateTable(table); err != nil {
			return fmt.Errorf("creating table for %T: %w", table, err)
		}
	}

	for _, mig := range additiveColumns {
		if migrator.HasColumn(mig.table, mig.field) {
			continue
		}
		if err := migrator.AddColumn(mig.table, mig.field); err != nil {
			m.log.Warn().Err(err).
				Str("column", mig.field).
				Msgf("skipping column migration on %T", mig.table)
		}
	}

	return m.seedOptions()
}

// seedOptions inserts the default CATEGORY and AGE values, but only when the
// options table holds zero rows of that type. Repeated calls never duplicate.
func (m *Manager) seedOptions() error {
	seeds := []struct {
		typ    model.OptionType
		values []string
	}{
		{model.OptionCategory, model.DefaultCategories},
		{model.OptionAge, model.DefaultAgeGroups},
	}

	for _, seed := range seeds {
		var count int64
		if err := m.db.Model(&model.Option{}).Where("type = ?", seed.typ).Count(&count).Error; err != nil {
			return fmt.Errorf("counting %s options: %w", seed.typ, err)
		}
		if count > 0 {
			continue
		}
		for _, value := range seed.values {
			option := model.Option{Type: seed.typ, Value: value}
			if err := m.db.Create(&option).Error; err != nil {
				return fmt.Errorf("seeding %s option %q: %w", seed.typ, value, err)
			}
		}
		m.log.Info().Str("type", string(seed.typ)).Int("count", len(seed.values)).Msg("seeded default options")
	}

	return nil
}
