package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// TransmissionKind says what was written to the rig.
type TransmissionKind string

const (
	KindSolution TransmissionKind = "solution"
	KindReversed TransmissionKind = "reversed"
	KindTest     TransmissionKind = "test"
	KindStop     TransmissionKind = "stop"
)

// Transmission records one payload sent over the serial link.
type Transmission struct {
	TransmissionID int64
	SolutionID     *string
	SentAt         time.Time
	Kind           TransmissionKind
	Payload        string
	Response       *string
	Error          *string
	DurationMs     int64
}

// TransmissionRepository provides operations for the transmission log.
type TransmissionRepository struct {
	db *DB
}

// NewTransmissionRepository creates a new transmission repository.
func NewTransmissionRepository(db *DB) *TransmissionRepository {
	return &TransmissionRepository{db: db}
}

// Create appends a transmission and returns its ID. Empty solutionID,
// response or errMsg are stored as NULL.
func (r *TransmissionRepository) Create(solutionID string, kind TransmissionKind, payload, response, errMsg string, duration time.Duration) (int64, error) {
	var solutionPtr, responsePtr, errPtr *string
	if solutionID != "" {
		solutionPtr = &solutionID
	}
	if response != "" {
		responsePtr = &response
	}
	if errMsg != "" {
		errPtr = &errMsg
	}

	result, err := r.db.Exec(`
		INSERT INTO transmissions (solution_id, sent_at, kind, payload, response, error, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, solutionPtr, time.Now().UTC().Format(time.RFC3339), string(kind), payload, responsePtr, errPtr, duration.Milliseconds())

	if err != nil {
		return 0, fmt.Errorf("failed to create transmission: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get transmission ID: %w", err)
	}

	return id, nil
}

// ListBySolution retrieves the transmissions of a solution in send order.
func (r *TransmissionRepository) ListBySolution(solutionID string) ([]Transmission, error) {
	rows, err := r.db.Query(`
		SELECT transmission_id, solution_id, sent_at, kind, payload, response, error, duration_ms
		FROM transmissions
		WHERE solution_id = ?
		ORDER BY transmission_id
	`, solutionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transmissions: %w", err)
	}
	defer rows.Close()

	return scanTransmissions(rows)
}

// ListRecent retrieves the latest transmissions, newest first.
func (r *TransmissionRepository) ListRecent(limit int) ([]Transmission, error) {
	rows, err := r.db.Query(`
		SELECT transmission_id, solution_id, sent_at, kind, payload, response, error, duration_ms
		FROM transmissions
		ORDER BY transmission_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transmissions: %w", err)
	}
	defer rows.Close()

	return scanTransmissions(rows)
}

func scanTransmissions(rows *sql.Rows) ([]Transmission, error) {
	var out []Transmission
	for rows.Next() {
		var t Transmission
		var sentAtStr, kind string
		err := rows.Scan(
			&t.TransmissionID, &t.SolutionID, &sentAtStr, &kind,
			&t.Payload, &t.Response, &t.Error, &t.DurationMs,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transmission: %w", err)
		}
		t.SentAt, _ = time.Parse(time.RFC3339, sentAtStr)
		t.Kind = TransmissionKind(kind)
		out = append(out, t)
	}
	return out, rows.Err()
}
