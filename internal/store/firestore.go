package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/TEJ42000/ALLMS-sub002/internal/models"
	"google.golang.org/api/iterator"
)

// FirestoreStore reads courses and materials from Firestore.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// Courses returns all course documents from the courses collection.
func (s *FirestoreStore) Courses(ctx context.Context) ([]models.Course, error) {
	iter := s.client.Collection("courses").Documents(ctx)
	defer iter.Stop()

	var courses []models.Course
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var course models.Course
		if err := doc.DataTo(&course); err != nil {
			continue
		}
		course.ID = doc.Ref.ID
		courses = append(courses, course)
	}

	if courses == nil {
		courses = []models.Course{}
	}

	return courses, nil
}

// Materials returns raw material documents under courses/{courseID}/materials.
func (s *FirestoreStore) Materials(ctx context.Context, courseID string, limit int) ([]map[string]interface{}, error) {
	query := s.client.Collection("courses").Doc(courseID).Collection("materials").Query
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	docs := []map[string]interface{}{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc.Data())
	}

	return docs, nil
}
