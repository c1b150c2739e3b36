package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solution is a solver answer stored in history.
type Solution struct {
	SolutionID string
	CreatedAt  time.Time
	CubeState  string
	Algorithm  string
	Moves      string
	Inverse    string
	MoveCount  int
}

// SolutionRepository provides CRUD operations for solutions.
type SolutionRepository struct {
	db *DB
}

// NewSolutionRepository creates a new solution repository.
func NewSolutionRepository(db *DB) *SolutionRepository {
	return &SolutionRepository{db: db}
}

// Create stores a solution and returns its ID.
func (r *SolutionRepository) Create(cubeState, algorithm, moves, inverse string, moveCount int) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO solutions (solution_id, created_at, cube_state, algorithm, moves, inverse, move_count)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), cubeState, algorithm, moves, inverse, moveCount)

	if err != nil {
		return "", fmt.Errorf("failed to create solution: %w", err)
	}

	return id, nil
}

const solutionColumns = `solution_id, created_at, cube_state, algorithm, moves, inverse, move_count`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSolution(row rowScanner) (*Solution, error) {
	var s Solution
	var createdAtStr string
	if err := row.Scan(
		&s.SolutionID, &createdAtStr, &s.CubeState, &s.Algorithm,
		&s.Moves, &s.Inverse, &s.MoveCount,
	); err != nil {
		return nil, err
	}
	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	return &s, nil
}

// Get retrieves a solution by ID. It returns nil, nil when none exists.
func (r *SolutionRepository) Get(solutionID string) (*Solution, error) {
	s, err := scanSolution(r.db.QueryRow(`
		SELECT `+solutionColumns+`
		FROM solutions
		WHERE solution_id = ?
	`, solutionID))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solution: %w", err)
	}
	return s, nil
}

// GetLast retrieves the most recent solution.
func (r *SolutionRepository) GetLast() (*Solution, error) {
	s, err := scanSolution(r.db.QueryRow(`
		SELECT ` + solutionColumns + `
		FROM solutions
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last solution: %w", err)
	}
	return s, nil
}

// List retrieves recent solutions, newest first.
func (r *SolutionRepository) List(limit int) ([]Solution, error) {
	rows, err := r.db.Query(`
		SELECT `+solutionColumns+`
		FROM solutions
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list solutions: %w", err)
	}
	defer rows.Close()

	var solutions []Solution
	for rows.Next() {
		s, err := scanSolution(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solution: %w", err)
		}
		solutions = append(solutions, *s)
	}

	return solutions, rows.Err()
}

// Delete deletes a solution and its transmissions (cascading).
func (r *SolutionRepository) Delete(solutionID string) error {
	_, err := r.db.Exec("DELETE FROM solutions WHERE solution_id = ?", solutionID)
	if err != nil {
		return fmt.Errorf("failed to delete solution: %w", err)
	}
	return nil
}

// Count returns the number of stored solutions.
func (r *SolutionRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM solutions").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count solutions: %w", err)
	}
	return n, nil
}
