package main

import (
	"context"
	"log"
	"os"

	"github.com/TEJ42000/ALLMS-sub002/internal/database"
	"github.com/TEJ42000/ALLMS-sub002/internal/report"
	"github.com/TEJ42000/ALLMS-sub002/internal/store"
	"github.com/joho/godotenv"
)

// The courses the upload pipeline is expected to have populated.
var courseIDs = []string{
	"spanish-a1",
	"french-b1",
	"german-a2",
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ctx := context.Background()

	// Initialize Firestore
	client, err := database.InitFirestore(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to Firestore: %v", err)
	}
	defer client.Close()

	reporter := report.New(store.NewFirestoreStore(client), os.Stdout)
	if err := reporter.Run(ctx, courseIDs); err != nil {
		log.Fatalf("Verification failed: %v", err)
	}
}
