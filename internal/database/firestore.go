package database

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

var FirestoreClient *firestore.Client

// InitFirestore initializes Firestore client
func InitFirestore(ctx context.Context) (*firestore.Client, error) {
	projectID := os.Getenv("GCP_PROJECT_ID")
	if projectID == "" {
		log.Fatal("GCP_PROJECT_ID environment variable is required")
	}

	// For Cloud Run, authentication is automatic
	// For local development, set GOOGLE_APPLICATION_CREDENTIALS
	var opts []option.ClientOption
	if credPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credPath != "" {
		opts = append(opts, option.WithCredentialsFile(credPath))
	}

	var client *firestore.Client
	var err error

	// Named databases are used in staging; the default database otherwise
	databaseID := os.Getenv("FIRESTORE_DATABASE_ID")
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID, opts...)
	} else {
		client, err = firestore.NewClient(ctx, projectID, opts...)
	}

	if err != nil {
		return nil, err
	}

	FirestoreClient = client
	log.Printf("Connected to Firestore in project: %s", projectID)
	return client, nil
}
