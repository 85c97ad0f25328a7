package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/poiesic/topical/ingest"
)

// noNewArticlesMarker is the sentinel written to the added file when a run
// succeeded but found nothing new. Downstream consumers distinguish it from
// a failed run, where the file is not rewritten at all.
const noNewArticlesMarker = "NO_NEW_ARTICLES"

func printSummary(summary *ingest.Summary) {
	fmt.Println("===== SUMMARY =====")
	fmt.Println("Fetched:   ", summary.Fetched)
	fmt.Println("Duplicates:", summary.Duplicates)
	fmt.Println("Too short: ", summary.TooShort)
	fmt.Println("Irrelevant:", summary.Irrelevant)
	fmt.Println("Failed:    ", summary.Failed)
	fmt.Println("Added:     ", summary.Added)

	if summary.Added > 0 {
		fmt.Println("\nNew articles:")
		for _, a := range summary.AddedArticles {
			fmt.Println("-", a.Title)
		}
	}
}

func writeAddedFile(path string, summary *ingest.Summary) error {
	var sb strings.Builder
	if summary.Added == 0 {
		sb.WriteString(noNewArticlesMarker)
	} else {
		for _, a := range summary.AddedArticles {
			fmt.Fprintf(&sb, "%s - %s\n", a.Title, a.URL)
		}
	}
	return os.WriteFile(path, []byte(sb.String()), 0644)
}
