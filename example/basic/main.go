package main

import (
	"context"
	"fmt"
	"log"

	"github.com/siherrmann/annotator"
	"github.com/siherrmann/annotator/core/stats"
)

const sampleText = `Tim Cook announced that Apple will open a new campus in Austin, Texas.
The expansion is expected to create 5,000 jobs by 2030 and cost around $1 billion.
Meanwhile, the European Union continues to review the company's tax arrangements in Ireland.`

func main() {
	// All labels are selected and the default model is active
	a := annotator.New()
	defer a.Close()

	snapshot, err := a.Annotate(context.Background(), sampleText)
	if err != nil {
		log.Fatalf("Failed to annotate text: %v", err)
	}

	fmt.Printf("Found %d entities:\n", len(snapshot.Entities))
	for _, span := range snapshot.Entities {
		fmt.Printf("  %-20s %-10s [%d:%d]\n", span.Text, span.Label, span.Start, span.End)
	}

	fmt.Println("\nLabel counts:")
	for _, count := range stats.SortedCounts(snapshot.Entities) {
		fmt.Printf("  %-10s %d\n", count.Label, count.Count)
	}

	// Narrow the selection and run again
	a.SelectLabels("PERSON", "ORG")
	narrowed, err := a.Annotate(context.Background(), sampleText)
	if err != nil {
		log.Fatalf("Failed to annotate text: %v", err)
	}
	fmt.Printf("\nWith only PERSON and ORG selected: %d entities\n", len(narrowed.Entities))

	fmt.Printf("\nRecorded sessions (newest first):\n")
	for _, s := range a.Sessions() {
		fmt.Printf("  %s  model=%s  entities=%d\n", s.CreatedAt.Format("15:04:05"), s.ModelID, len(s.Entities))
	}
}
