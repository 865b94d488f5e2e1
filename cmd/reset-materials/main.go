package main

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"github.com/TEJ42000/ALLMS-sub002/internal/database"
	"github.com/joho/godotenv"
	"google.golang.org/api/iterator"
)

// Deletes every materials subcollection so a fresh upload run can be
// verified from a clean slate. Course documents themselves are kept.
func main() {
	// Load environment variables
	godotenv.Load()

	ctx := context.Background()

	// Initialize Firestore
	client, err := database.InitFirestore(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firestore: %v", err)
	}
	defer client.Close()

	courses := client.Collection("courses").Documents(ctx)
	defer courses.Stop()

	totalDeleted := 0
	for {
		courseDoc, err := courses.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			log.Fatalf("Failed to list courses: %v", err)
		}

		deleted, err := deleteMaterials(ctx, client, courseDoc.Ref)
		if err != nil {
			log.Fatalf("Failed to delete materials for %s: %v", courseDoc.Ref.ID, err)
		}

		fmt.Printf("Deleted %d materials from %s\n", deleted, courseDoc.Ref.ID)
		totalDeleted += deleted
	}

	fmt.Printf("Done. %d materials deleted.\n", totalDeleted)
}

func deleteMaterials(ctx context.Context, client *firestore.Client, courseRef *firestore.DocumentRef) (int, error) {
	iter := courseRef.Collection("materials").Documents(ctx)
	defer iter.Stop()

	batch := client.Batch()
	count := 0

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return count, err
		}

		batch.Delete(doc.Ref)
		count++

		// Firestore batch limit is 500
		if count%500 == 0 {
			if _, err := batch.Commit(ctx); err != nil {
				return count, err
			}
			batch = client.Batch()
		}
	}

	// Commit remaining
	if count%500 != 0 {
		if _, err := batch.Commit(ctx); err != nil {
			return count, err
		}
	}

	return count, nil
}
