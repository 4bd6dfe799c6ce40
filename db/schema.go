package db

import (
	"database/sql"
	"fmt"
)

// Schema is plain SQL that PostgreSQL and SQLite both accept.
const Schema = `
-- Create courses table
CREATE TABLE IF NOT EXISTS courses (
    id INTEGER PRIMARY KEY CHECK (id > 0),
    position INTEGER NOT NULL,
    title VARCHAR(255) NOT NULL,
    description TEXT NOT NULL,
    category VARCHAR(100) NOT NULL,
    level VARCHAR(20) NOT NULL,
    lessons INTEGER NOT NULL CHECK (lessons >= 1),
    duration VARCHAR(50) NOT NULL,
    popular BOOLEAN NOT NULL DEFAULT FALSE,
    is_new BOOLEAN NOT NULL DEFAULT FALSE,
    trending BOOLEAN NOT NULL DEFAULT FALSE
);

-- Create tutorials table
CREATE TABLE IF NOT EXISTS tutorials (
    id INTEGER PRIMARY KEY CHECK (id > 0),
    position INTEGER NOT NULL,
    title VARCHAR(255) NOT NULL,
    description TEXT NOT NULL,
    category VARCHAR(100) NOT NULL,
    level VARCHAR(20) NOT NULL,
    duration VARCHAR(50) NOT NULL,
    author VARCHAR(100) NOT NULL,
    published_on VARCHAR(10) NOT NULL,
    image VARCHAR(100) NOT NULL DEFAULT '',
    featured BOOLEAN NOT NULL DEFAULT FALSE
);
`

// InitSchema initializes the database schema
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(Schema)
	if err != nil {
		return fmt.Errorf("error initializing database schema: %w", err)
	}
	return nil
}
