package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/siherrmann/annotator"
	"github.com/siherrmann/annotator/export"
	"github.com/siherrmann/annotator/model"
)

// Annotates an uploaded document (txt, pdf or docx) and writes the results
// as CSV, JSON and a highlighted HTML page next to the input file.
func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s <file.txt|file.pdf|file.docx>", os.Args[0])
	}
	filename := os.Args[1]

	data, err := os.ReadFile(filename)
	if err != nil {
		log.Fatalf("Failed to read file: %v", err)
	}

	a := annotator.New()
	defer a.Close()

	snapshot, err := a.AnnotateFile(context.Background(), filename, data)
	if err != nil {
		log.Fatalf("Failed to annotate file: %v", err)
	}

	fmt.Printf("Annotated %s: %d entities\n", filename, len(snapshot.Entities))

	base := strings.TrimSuffix(filename, filepath.Ext(filename))

	csvFile, err := os.Create(base + ".csv")
	if err != nil {
		log.Fatalf("Failed to create CSV file: %v", err)
	}
	defer csvFile.Close()
	if err := export.WriteCSV(csvFile, snapshot.Entities); err != nil {
		log.Fatalf("Failed to write CSV: %v", err)
	}

	jsonData, err := export.JSON(snapshot.Entities)
	if err != nil {
		log.Fatalf("Failed to marshal JSON: %v", err)
	}
	if err := os.WriteFile(base+".json", jsonData, 0o644); err != nil {
		log.Fatalf("Failed to write JSON file: %v", err)
	}

	page := export.HighlightPage(filepath.Base(filename), snapshot.SourceText, snapshot.Entities, model.DefaultColors)
	if err := os.WriteFile(base+".html", []byte(page), 0o644); err != nil {
		log.Fatalf("Failed to write HTML file: %v", err)
	}

	fmt.Printf("Wrote %s.csv, %s.json and %s.html\n", base, base, base)
}
