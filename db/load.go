package db

import (
	"context"
	"database/sql"
	"fmt"

	"edulearn_backend/catalog"
	"edulearn_backend/models"
)

// LoadCatalog reads both tables once and builds an immutable Catalog.
func LoadCatalog(ctx context.Context, db *sql.DB) (*catalog.Catalog, error) {
	courses, err := loadCourses(ctx, db)
	if err != nil {
		return nil, err
	}
	tutorials, err := loadTutorials(ctx, db)
	if err != nil {
		return nil, err
	}
	return catalog.New(courses, tutorials)
}

func loadCourses(ctx context.Context, db *sql.DB) ([]models.Course, error) {
	rows, err := db.QueryContext(ctx, `
        SELECT id, title, description, category, level, lessons, duration, popular, is_new, trending
        FROM courses
        ORDER BY position ASC, id ASC
    `)
	if err != nil {
		return nil, fmt.Errorf("error fetching courses: %w", err)
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		var c models.Course
		var level string
		if err := rows.Scan(
			&c.ID,
			&c.Title,
			&c.Description,
			&c.Category,
			&level,
			&c.Lessons,
			&c.Duration,
			&c.Popular,
			&c.IsNew,
			&c.Trending,
		); err != nil {
			return nil, fmt.Errorf("error scanning course: %w", err)
		}
		c.Level = models.Level(level)
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating courses: %w", err)
	}
	return courses, nil
}

func loadTutorials(ctx context.Context, db *sql.DB) ([]models.Tutorial, error) {
	rows, err := db.QueryContext(ctx, `
        SELECT id, title, description, category, level, duration, author, published_on, image, featured
        FROM tutorials
        ORDER BY position ASC, id ASC
    `)
	if err != nil {
		return nil, fmt.Errorf("error fetching tutorials: %w", err)
	}
	defer rows.Close()

	var tutorials []models.Tutorial
	for rows.Next() {
		var t models.Tutorial
		var level, published string
		if err := rows.Scan(
			&t.ID,
			&t.Title,
			&t.Description,
			&t.Category,
			&level,
			&t.Duration,
			&t.Author,
			&published,
			&t.Image,
			&t.Featured,
		); err != nil {
			return nil, fmt.Errorf("error scanning tutorial: %w", err)
		}
		date, err := models.ParseDate(published)
		if err != nil {
			return nil, fmt.Errorf("tutorial %d: %w", t.ID, err)
		}
		t.Level = models.Level(level)
		t.Date = date
		tutorials = append(tutorials, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tutorials: %w", err)
	}
	return tutorials, nil
}
