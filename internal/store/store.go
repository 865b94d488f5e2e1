package store

import (
	"context"

	"github.com/TEJ42000/ALLMS-sub002/internal/models"
)

// Store is the read surface over course and material documents. Material
// documents come back as raw key/value maps because the upload pipeline
// owns their schema and fields may be absent; callers read them
// optimistically.
type Store interface {
	// Courses returns every course document.
	Courses(ctx context.Context) ([]models.Course, error)

	// Materials returns material documents for one course, in query order.
	// A limit of zero or less means the full unbounded set.
	Materials(ctx context.Context, courseID string, limit int) ([]map[string]interface{}, error)
}
