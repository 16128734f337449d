package main

import (
	"context"
	"fmt"
	"log"

	"github.com/siherrmann/annotator"
	"github.com/siherrmann/annotator/helper"
)

var documents = []string{
	"Angela Merkel met Emmanuel Macron in Berlin to discuss European policy.",
	"Tesla delivered a record number of vehicles from its factory in Shanghai.",
	"The Amazon rainforest spans Brazil, Peru and several other countries.",
}

// Archives annotation sessions in Postgres and finds them again by
// semantic similarity. Uses a throwaway container, so no database setup
// is needed to run it.
func main() {
	teardown, dbPort, err := helper.MustStartPostgresContainer()
	if err != nil {
		log.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	defer teardown(context.Background())

	dbConfig := &helper.DatabaseConfiguration{
		Host:     "localhost",
		Port:     dbPort,
		Database: "database",
		Username: "user",
		Password: "password",
		Schema:   "public",
		SSLMode:  "disable",
	}

	a := annotator.New()
	defer a.Close()

	if err := a.AttachArchive(dbConfig); err != nil {
		log.Fatalf("Failed to attach archive: %v", err)
	}

	for _, text := range documents {
		snapshot, err := a.Annotate(context.Background(), text)
		if err != nil {
			log.Fatalf("Failed to annotate text: %v", err)
		}
		if err := a.ArchiveSnapshot(snapshot); err != nil {
			log.Fatalf("Failed to archive snapshot: %v", err)
		}
		fmt.Printf("Archived session %s with %d entities\n", snapshot.RID, len(snapshot.Entities))
	}

	count, err := a.Archive.CountSessions()
	if err != nil {
		log.Fatalf("Failed to count sessions: %v", err)
	}
	fmt.Printf("\nArchive holds %d sessions\n", count)

	query := "electric cars produced in China"
	results, err := a.SearchSessions(query, 2)
	if err != nil {
		log.Fatalf("Failed to search sessions: %v", err)
	}

	fmt.Printf("\nSessions most similar to %q:\n", query)
	for _, result := range results {
		fmt.Printf("  %.3f  %s\n", result.Similarity, result.Snapshot.SourceText)
	}
}
