package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/TEJ42000/ALLMS-sub002/internal/database"
	"github.com/TEJ42000/ALLMS-sub002/internal/models"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type materialFixture struct {
	filename   string
	weekNumber int
	tier       string
	sizeBytes  int64
}

var courseFixtures = map[string]struct {
	title     string
	term      string
	materials []materialFixture
}{
	"spanish-a1": {
		title: "Spanish for Beginners (A1)",
		term:  "fall-2026",
		materials: []materialFixture{
			{"week1_greetings.pdf", 1, "free", 482113},
			{"week1_alphabet_audio.mp3", 1, "free", 3920441},
			{"week2_numbers.pdf", 2, "free", 355602},
			{"week3_present_tense.pdf", 3, "premium", 612877},
			{"week3_drills.mp3", 3, "premium", 5110234},
			{"week4_food_vocab.pdf", 4, "premium", 298465},
			{"week5_conversation_lab.mp4", 5, "pro", 88231900},
		},
	},
	"french-b1": {
		title: "Intermediate French (B1)",
		term:  "fall-2026",
		materials: []materialFixture{
			{"week1_passe_compose.pdf", 1, "free", 523998},
			{"week2_subjunctive_intro.pdf", 2, "premium", 441206},
			{"week2_listening_set.mp3", 2, "premium", 6245113},
			{"week3_essay_templates.pdf", 3, "pro", 377554},
		},
	},
	"german-a2": {
		title: "Elementary German (A2)",
		term:  "fall-2026",
		materials: []materialFixture{
			{"week1_cases_overview.pdf", 1, "free", 460125},
			{"week2_separable_verbs.pdf", 2, "premium", 390871},
			{"week4_dialogue_pack.mp3", 4, "pro", 7103552},
		},
	},
}

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

	now := time.Now()
	total := 0

	for courseID, fixture := range courseFixtures {
		course := models.Course{
			ID:        courseID,
			Title:     fixture.title,
			Term:      fixture.term,
			CreatedAt: now,
		}
		if _, err := client.Collection("courses").Doc(courseID).Set(ctx, course); err != nil {
			log.Fatalf("Failed to create course %s: %v", courseID, err)
		}

		batch := client.Batch()
		for _, m := range fixture.materials {
			id := uuid.New().String()
			ref := client.Collection("courses").Doc(courseID).Collection("materials").Doc(id)
			batch.Set(ref, models.Material{
				ID:         id,
				CourseID:   courseID,
				Filename:   m.filename,
				WeekNumber: m.weekNumber,
				Tier:       m.tier,
				SizeBytes:  m.sizeBytes,
				UploadedAt: now,
			})
		}
		if _, err := batch.Commit(ctx); err != nil {
			log.Fatalf("Failed to write materials for %s: %v", courseID, err)
		}

		total += len(fixture.materials)
		fmt.Printf("Seeded %s with %d materials\n", courseID, len(fixture.materials))
	}

	fmt.Printf("Done. %d materials across %d courses.\n", total, len(courseFixtures))
}
