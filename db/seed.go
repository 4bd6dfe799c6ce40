package db

import (
	"context"
	"database/sql"
	"fmt"

	"edulearn_backend/catalog"
)

// SeedData writes every catalog record, keeping catalog order in the
// position column. Rows that already exist are left untouched.
func SeedData(db *sql.DB, cat *catalog.Catalog) error {
	// Start a transaction
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	for i, c := range cat.Courses() {
		_, err = tx.Exec(`
            INSERT INTO courses (id, position, title, description, category, level, lessons, duration, popular, is_new, trending)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
            ON CONFLICT (id) DO NOTHING
        `, c.ID, i, c.Title, c.Description, c.Category, string(c.Level), c.Lessons, c.Duration, c.Popular, c.IsNew, c.Trending)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("error seeding course %d: %w", c.ID, err)
		}
	}

	for i, t := range cat.Tutorials() {
		_, err = tx.Exec(`
            INSERT INTO tutorials (id, position, title, description, category, level, duration, author, published_on, image, featured)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
            ON CONFLICT (id) DO NOTHING
        `, t.ID, i, t.Title, t.Description, t.Category, string(t.Level), t.Duration, t.Author, t.Date.String(), t.Image, t.Featured)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("error seeding tutorial %d: %w", t.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// SeedIfEmpty seeds cat when the courses or the tutorials table has no
// rows. Existing rows are kept. It reports whether seeding happened.
func SeedIfEmpty(ctx context.Context, db *sql.DB, cat *catalog.Catalog) (bool, error) {
	var courses, tutorials int
	if err := db.QueryRowContext(ctx, `
        SELECT (SELECT COUNT(*) FROM courses), (SELECT COUNT(*) FROM tutorials)
    `).Scan(&courses, &tutorials); err != nil {
		return false, fmt.Errorf("error counting catalog rows: %w", err)
	}
	if courses > 0 && tutorials > 0 {
		return false, nil
	}
	if err := SeedData(db, cat); err != nil {
		return false, err
	}
	return true, nil
}
