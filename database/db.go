package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

func New(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

func (db *DB) Migrate() error {
	queries := []string{
		// Contacts table. search_text is maintained by the repository on
		// every insert/update and backs the full-text search endpoint.
		`CREATE TABLE IF NOT EXISTS contacts (
			id TEXT PRIMARY KEY,
			first_name TEXT NOT NULL DEFAULT '',
			middle_name TEXT NOT NULL DEFAULT '',
			last_name TEXT NOT NULL DEFAULT '',
			company TEXT NOT NULL DEFAULT '',
			job TEXT NOT NULL DEFAULT '',
			contact_type TEXT NOT NULL,
			phone_type TEXT NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			website TEXT NOT NULL DEFAULT '',
			address_line_1 TEXT NOT NULL DEFAULT '',
			address_line_2 TEXT NOT NULL DEFAULT '',
			city TEXT NOT NULL DEFAULT '',
			state TEXT NOT NULL DEFAULT '',
			zip_code TEXT NOT NULL DEFAULT '',
			country TEXT NOT NULL DEFAULT '',
			notes TEXT NOT NULL DEFAULT '',
			is_active INTEGER NOT NULL DEFAULT 1,
			search_text TEXT NOT NULL DEFAULT '',
			created_by_id TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			deleted_at DATETIME
		)`,

		// Contact lists table
		`CREATE TABLE IF NOT EXISTS contact_lists (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			is_public INTEGER NOT NULL DEFAULT 0,
			created_by_id TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			deleted_at DATETIME
		)`,

		// Contact list members table
		`CREATE TABLE IF NOT EXISTS contact_list_members (
			id TEXT PRIMARY KEY,
			contact_list_id TEXT NOT NULL,
			contact_id TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			deleted_at DATETIME,
			FOREIGN KEY (contact_list_id) REFERENCES contact_lists(id),
			FOREIGN KEY (contact_id) REFERENCES contacts(id)
		)`,

		// Waiting lists table
		`CREATE TABLE IF NOT EXISTS waiting_lists (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			created_by_id TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			deleted_at DATETIME
		)`,

		// Waiting list members table
		`CREATE TABLE IF NOT EXISTS waiting_list_members (
			id TEXT PRIMARY KEY,
			waiting_list_id TEXT NOT NULL,
			contact_id TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			deleted_at DATETIME,
			FOREIGN KEY (waiting_list_id) REFERENCES waiting_lists(id),
			FOREIGN KEY (contact_id) REFERENCES contacts(id)
		)`,

		// Contact interactions table
		`CREATE TABLE IF NOT EXISTS contact_interactions (
			id TEXT PRIMARY KEY,
			contact_id TEXT NOT NULL,
			note TEXT NOT NULL,
			interaction_timestamp DATETIME NOT NULL,
			action TEXT NOT NULL DEFAULT '',
			custom_action_description TEXT NOT NULL DEFAULT '',
			action_timestamp DATETIME,
			created_by_id TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			deleted_at DATETIME,
			FOREIGN KEY (contact_id) REFERENCES contacts(id)
		)`,

		// Imports table
		`CREATE TABLE IF NOT EXISTS imports (
			id TEXT PRIMARY KEY,
			settings TEXT NOT NULL,
			processed_contacts INTEGER NOT NULL DEFAULT 0,
			failed_contacts INTEGER NOT NULL DEFAULT 0,
			user_id TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Uniqueness among live rows only; soft-deleted rows release the value
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_contacts_email
			ON contacts(email) WHERE email != '' AND deleted_at IS NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_contacts_phone
			ON contacts(phone) WHERE phone != '' AND deleted_at IS NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_list_members_unique
			ON contact_list_members(contact_list_id, contact_id) WHERE deleted_at IS NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_waiting_members_unique
			ON waiting_list_members(waiting_list_id, contact_id) WHERE deleted_at IS NULL`,

		// Indexes for performance
		`CREATE INDEX IF NOT EXISTS idx_contacts_created_at ON contacts(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_list_members_list ON contact_list_members(contact_list_id)`,
		`CREATE INDEX IF NOT EXISTS idx_list_members_contact ON contact_list_members(contact_id)`,
		`CREATE INDEX IF NOT EXISTS idx_waiting_members_list ON waiting_list_members(waiting_list_id)`,
		`CREATE INDEX IF NOT EXISTS idx_waiting_members_contact ON waiting_list_members(contact_id)`,
		`CREATE INDEX IF NOT EXISTS idx_interactions_contact ON contact_interactions(contact_id)`,
		`CREATE INDEX IF NOT EXISTS idx_interactions_action_ts ON contact_interactions(action_timestamp)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
