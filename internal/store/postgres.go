package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/TEJ42000/ALLMS-sub002/internal/models"
)

// PostgresStore reads courses and materials from PostgreSQL. It mirrors the
// Firestore layout for local development: one row per material document,
// NULL columns behave like absent document fields.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Courses returns all courses ordered by identifier.
func (s *PostgresStore) Courses(ctx context.Context) ([]models.Course, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title, term, created_at FROM courses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	courses := []models.Course{}
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.ID, &course.Title, &course.Term, &course.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, course)
	}

	return courses, rows.Err()
}

// Materials returns material rows for one course in upload order. NULL
// columns are left out of the row map so they read as absent fields.
func (s *PostgresStore) Materials(ctx context.Context, courseID string, limit int) ([]map[string]interface{}, error) {
	query := `SELECT filename, week_number, tier FROM materials WHERE course_id = $1 ORDER BY uploaded_at, filename`
	args := []interface{}{courseID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query materials: %w", err)
	}
	defer rows.Close()

	docs := []map[string]interface{}{}
	for rows.Next() {
		var filename, tier sql.NullString
		var weekNumber sql.NullInt64
		if err := rows.Scan(&filename, &weekNumber, &tier); err != nil {
			return nil, fmt.Errorf("failed to scan material: %w", err)
		}

		doc := map[string]interface{}{}
		if filename.Valid {
			doc["filename"] = filename.String
		}
		if weekNumber.Valid {
			doc["weekNumber"] = weekNumber.Int64
		}
		if tier.Valid {
			doc["tier"] = tier.String
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}
