// Package runlog records tool invocations in a local sqlite database so the
// tweak history of a model library can be inspected later.
package runlog

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/vhermecz/ldtweak/internal/ldraw"
)

// DB wraps the run-history database handle.
type DB struct {
	*sql.DB
}

// Open opens the run-history database at path, creating the schema on first
// use.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			run_id            TEXT PRIMARY KEY,
			input             TEXT,
			output            TEXT,
			ops               TEXT,
			lines             BIGINT,
			counts            TEXT,
			min_x             DOUBLE,
			max_x             DOUBLE,
			min_y             DOUBLE,
			max_y             DOUBLE,
			min_z             DOUBLE,
			max_z             DOUBLE,
			timestamp         TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &DB{db}, nil
}

// Run is one recorded invocation. Counts is stored as a JSON column keyed by
// linetype.
type Run struct {
	ID        string
	Input     string
	Output    string
	Ops       string
	Lines     int
	Counts    map[int]int
	Bounds    ldraw.Bounds
	Timestamp string
}

// RecordRun inserts one run row. A fresh run id is assigned and returned.
func (db *DB) RecordRun(run Run) (string, error) {
	id := uuid.NewString()
	counts, err := json.Marshal(run.Counts)
	if err != nil {
		return "", fmt.Errorf("failed to encode linetype counts: %v", err)
	}

	_, err = db.Exec(
		`INSERT INTO runs (run_id, input, output, ops, lines, counts,
			min_x, max_x, min_y, max_y, min_z, max_z)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, run.Input, run.Output, run.Ops, run.Lines, string(counts),
		run.Bounds[0].Min, run.Bounds[0].Max,
		run.Bounds[1].Min, run.Bounds[1].Max,
		run.Bounds[2].Min, run.Bounds[2].Max,
	)
	if err != nil {
		return "", fmt.Errorf("failed to record run: %v", err)
	}
	return id, nil
}

// Runs returns the recorded invocations, newest first.
func (db *DB) Runs() ([]Run, error) {
	rows, err := db.Query(
		`SELECT run_id, input, output, ops, lines, counts,
			min_x, max_x, min_y, max_y, min_z, max_z, timestamp
		FROM runs ORDER BY timestamp DESC, run_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var counts string
		if err := rows.Scan(&r.ID, &r.Input, &r.Output, &r.Ops, &r.Lines, &counts,
			&r.Bounds[0].Min, &r.Bounds[0].Max,
			&r.Bounds[1].Min, &r.Bounds[1].Max,
			&r.Bounds[2].Min, &r.Bounds[2].Max,
			&r.Timestamp); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(counts), &r.Counts); err != nil {
			return nil, fmt.Errorf("failed to decode linetype counts: %v", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
