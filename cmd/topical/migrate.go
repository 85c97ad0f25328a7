package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/topical/core"
	"github.com/poiesic/topical/storage/badger"
)

// legacyArticle is one record of the pre-registry JSON article file.
type legacyArticle struct {
	URL     string `json:"url,omitempty"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Content string `json:"content"`
}

// dateLayouts covers the formats feeds historically wrote into the legacy file.
var dateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
	"2006-01-02",
}

func migrateCommand(c *cli.Context) error {
	ctx := context.Background()

	articles, err := loadLegacyArticles(c.String("from"))
	if err != nil {
		return err
	}

	registry, err := badger.NewRegistry(c.String("registry"))
	if err != nil {
		return fmt.Errorf("opening registry: %w", err)
	}
	defer registry.Close()

	added, err := registry.Add(ctx, articles...)
	if err != nil {
		return fmt.Errorf("migrating articles: %w", err)
	}

	fmt.Printf("Migrated %d of %d articles (%d already registered)\n",
		len(added), len(articles), len(articles)-len(added))
	return nil
}

// loadLegacyArticles reads the legacy JSON file in either of its two
// historical shapes: a mapping of URL to article, or a list of articles
// carrying their own url field. List entries without a url are dropped.
func loadLegacyArticles(path string) ([]*core.Article, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	byURL := map[string]legacyArticle{}

	var asMap map[string]legacyArticle
	if err := json.Unmarshal(data, &asMap); err == nil {
		byURL = asMap
	} else {
		var asList []legacyArticle
		if listErr := json.Unmarshal(data, &asList); listErr != nil {
			return nil, fmt.Errorf("parsing %s: not a JSON mapping or list: %w", path, listErr)
		}
		for _, a := range asList {
			if a.URL == "" {
				continue
			}
			byURL[a.URL] = a
		}
	}

	articles := make([]*core.Article, 0, len(byURL))
	for url, a := range byURL {
		articles = append(articles, &core.Article{
			URL:         url,
			Title:       a.Title,
			PublishedAt: parseLegacyDate(a.Date),
			Content:     a.Content,
		})
	}
	return articles, nil
}

func parseLegacyDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
