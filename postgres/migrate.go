package postgres

import (
	"fmt"
	"time"

	"github.com/xy-planning-network/waypoint"
	"gorm.io/gorm"
)

// Migration is used to hold the database key and function for creating the migration.
type Migration struct {
	Executor func(*gorm.DB) error
	Key      string
}

// Migrations are the schema changes Connect applies, in order.
var Migrations = []Migration{
	{
		Key:      "20211019-create-route-names",
		Executor: func(tx *gorm.DB) error { return tx.AutoMigrate(new(RouteName)) },
	},
}

func (m Migration) execute(db *gorm.DB) error {
	// Start transaction
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	// Run migration logic
	if err := m.Executor(tx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Exec(`INSERT INTO migrations (key, ran_at) VALUES (?, ?)`, m.Key, time.Now().Unix()).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// MigrateUp ensures schema and the migrations table exist
// and runs each of migrations not yet recorded there.
func MigrateUp(db *gorm.DB, schema string, migrations []Migration) error {
	if err := db.Exec(fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", schema)).Error; err != nil {
		return fmt.Errorf("%w: creating %s schema: %s", waypoint.ErrUnexpected, schema, err)
	}

	err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			id SERIAL PRIMARY KEY,
			ran_at bigint,
			key text,
			CONSTRAINT migrations_key UNIQUE (key)
		)
	`).Error
	if err != nil {
		return fmt.Errorf("%w: creating migrations table: %s", waypoint.ErrUnexpected, err)
	}

	var ran []string
	if err := db.Table("migrations").Pluck("key", &ran).Error; err != nil {
		return fmt.Errorf("%w: fetching ran migrations: %s", waypoint.ErrUnexpected, err)
	}

	for _, m := range pending(migrations, ran) {
		if err := m.execute(db); err != nil {
			return fmt.Errorf("%w: migration %s: %s", waypoint.ErrUnexpected, m.Key, err)
		}
	}

	return nil
}

// pending filters out of all the migrations whose keys are in ran.
func pending(all []Migration, ran []string) []Migration {
	done := make(map[string]bool, len(ran))
	for _, key := range ran {
		done[key] = true
	}

	var toRun []Migration
	for _, m := range all {
		if !done[m.Key] {
			toRun = append(toRun, m)
		}
	}

	return toRun
}
