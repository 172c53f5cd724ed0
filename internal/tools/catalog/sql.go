package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

func schemaStatements(d Dialect) []string {
	key := "VARCHAR(191)"
	text := "TEXT"
	if d == SQLite {
		key = "TEXT"
	}
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS guide_registries (
	name %s NOT NULL PRIMARY KEY,
	schema_labels %s NOT NULL
)`, key, text),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS guide_topics (
	registry %s NOT NULL,
	name %s NOT NULL,
	position INTEGER NOT NULL,
	fields %s NOT NULL,
	PRIMARY KEY (registry, name)
)`, key, key, text),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS guide_pages (
	slug %s NOT NULL PRIMARY KEY,
	title %s NOT NULL,
	heading %s NOT NULL,
	position INTEGER NOT NULL,
	blocks INTEGER NOT NULL
)`, key, text, text),
	}
}

// ExportSQL replaces the catalog tables' contents with cat inside a single
// transaction. Tables are created when missing.
func ExportSQL(ctx context.Context, db *sql.DB, dialect Dialect, cat Catalog) error {
	for _, stmt := range schemaStatements(dialect) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"guide_topics", "guide_registries", "guide_pages"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, reg := range cat.Registries {
		labels, err := json.Marshal(reg.Schema)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO guide_registries (name, schema_labels) VALUES (?, ?)`,
			reg.Name, string(labels)); err != nil {
			return fmt.Errorf("insert registry %s: %w", reg.Name, err)
		}
		for _, t := range reg.Topics {
			fields, err := json.Marshal(t.Fields)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO guide_topics (registry, name, position, fields) VALUES (?, ?, ?, ?)`,
				reg.Name, t.Name, t.Position, string(fields)); err != nil {
				return fmt.Errorf("insert topic %s/%s: %w", reg.Name, t.Name, err)
			}
		}
	}

	for i, p := range cat.Pages {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO guide_pages (slug, title, heading, position, blocks) VALUES (?, ?, ?, ?, ?)`,
			p.Slug, p.Title, p.Heading, i, p.Blocks); err != nil {
			return fmt.Errorf("insert page %s: %w", p.Slug, err)
		}
	}

	return tx.Commit()
}
