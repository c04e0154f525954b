package output

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"newsdigest/internal/domain"
)

const indent = "    "

// Deduplicate collapses articles sharing a URL. The first occurrence wins
// and the relative order of survivors is preserved.
func Deduplicate(articles []domain.EnrichedArticle) []domain.EnrichedArticle {
	unique := make([]domain.EnrichedArticle, 0, len(articles))
	seen := make(map[string]struct{}, len(articles))

	for _, a := range articles {
		if _, ok := seen[a.URL]; ok {
			continue
		}

		seen[a.URL] = struct{}{}
		unique = append(unique, a)
	}

	return unique
}

// Writer persists a run's document to a fixed path as pretty-printed JSON.
type Writer struct {
	path string
	log  *slog.Logger
}

func NewWriter(path string, log *slog.Logger) *Writer {
	return &Writer{path: path, log: log}
}

// Write serializes the document and replaces any prior file at the path.
// The document goes through a temp file in the target directory plus a
// rename, so a prior run's output is never left half-overwritten.
func (w *Writer) Write(doc domain.Document) error {
	if doc.Articles == nil {
		doc.Articles = []domain.EnrichedArticle{}
	}

	data, err := json.MarshalIndent(doc, "", indent)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	dir := filepath.Dir(w.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(w.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)

		return fmt.Errorf("write temp file: %w", err)
	}

	if err = tmp.Close(); err != nil {
		os.Remove(tmpPath)

		return fmt.Errorf("close temp file: %w", err)
	}

	if err = os.Rename(tmpPath, w.path); err != nil {
		os.Remove(tmpPath)

		return fmt.Errorf("replace %s: %w", w.path, err)
	}

	w.log.Info("Document is written",
		"path", w.path,
		"articleCount", len(doc.Articles),
		"lastUpdated", doc.LastUpdated)

	return nil
}
