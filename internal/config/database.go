package config

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
)

// SetupDatabase initializes the database connection
func SetupDatabase(cfg *Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	// Create tables if they don't exist
	if err := createTables(db); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return db, nil
}

// createTables creates the necessary tables in the database
func createTables(db *sqlx.DB) error {
	// Create projects table
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS projects (
			id VARCHAR(36) PRIMARY KEY,
			name VARCHAR(255) UNIQUE NOT NULL,
			location VARCHAR(255),
			start_date DATE,
			end_date DATE,
			manager_name VARCHAR(255),
			status VARCHAR(50),
			description VARCHAR(500),
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Create workers table
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS workers (
			id VARCHAR(36) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			phone VARCHAR(20) UNIQUE NOT NULL,
			rate_per_day DOUBLE PRECISION NOT NULL DEFAULT 0,
			aadhaar_number VARCHAR(20),
			police_verified BOOLEAN NOT NULL DEFAULT FALSE,
			address TEXT,
			role VARCHAR(50),
			password VARCHAR(255),
			must_reset_password BOOLEAN NOT NULL DEFAULT FALSE,
			joined_date DATE NOT NULL,
			project_id VARCHAR(36) REFERENCES projects(id) ON DELETE SET NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Create tasks table
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS tasks (
			id VARCHAR(36) PRIMARY KEY,
			task_name VARCHAR(255) NOT NULL,
			description VARCHAR(500),
			project_id VARCHAR(36) NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
			worker_id VARCHAR(36) NOT NULL REFERENCES workers(id) ON DELETE CASCADE,
			deadline DATE,
			status VARCHAR(50) NOT NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Create materials table
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS materials (
			id VARCHAR(36) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			quantity DOUBLE PRECISION NOT NULL DEFAULT 0,
			unit VARCHAR(50),
			cost_per_unit DOUBLE PRECISION NOT NULL DEFAULT 0,
			supplier_name VARCHAR(255),
			project_id VARCHAR(36) REFERENCES projects(id) ON DELETE SET NULL,
			created_at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Create attendance table; the UNIQUE (worker_id, date) constraint backs
	// the one-mark-per-worker-per-day invariant under concurrent requests
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS attendance (
			id VARCHAR(36) PRIMARY KEY,
			worker_id VARCHAR(36) NOT NULL REFERENCES workers(id) ON DELETE CASCADE,
			project_id VARCHAR(36) REFERENCES projects(id) ON DELETE SET NULL,
			date DATE NOT NULL,
			status VARCHAR(20) NOT NULL,
			overtime_hours DOUBLE PRECISION NOT NULL DEFAULT 0,
			total_pay DOUBLE PRECISION NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL,
			UNIQUE (worker_id, date)
		)
	`)
	if err != nil {
		return err
	}

	// Create payments table
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS payments (
			id VARCHAR(36) PRIMARY KEY,
			worker_id VARCHAR(36) NOT NULL REFERENCES workers(id) ON DELETE CASCADE,
			type VARCHAR(20) NOT NULL,
			amount DOUBLE PRECISION NOT NULL,
			date DATE NOT NULL,
			note TEXT,
			created_at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Create indexes for better performance
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_attendance_worker_date ON attendance(worker_id, date)",
		"CREATE INDEX IF NOT EXISTS idx_attendance_project ON attendance(project_id)",
		"CREATE INDEX IF NOT EXISTS idx_payments_worker ON payments(worker_id)",
		"CREATE INDEX IF NOT EXISTS idx_payments_type_date ON payments(type, date)",
		"CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id)",
		"CREATE INDEX IF NOT EXISTS idx_tasks_worker ON tasks(worker_id)",
	}

	for _, idx := range indexes {
		_, err = db.Exec(idx)
		if err != nil {
			log.Printf("Warning: Failed to create index: %v", err)
			// Don't return error here, indexes are not critical
		}
	}

	return nil
}
