package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/phrazzld/emphasis-trainer/internal/wordbase"
)

// loadWordbase parses the database at path, or the bundled one when path is
// empty, and logs every rejected line.
func loadWordbase(path string, logger *slog.Logger) (wordbase.Result, error) {
	source := path
	var res wordbase.Result
	if path == "" {
		source = "embedded"
		res = wordbase.Default()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return wordbase.Result{}, fmt.Errorf("failed to open word database: %w", err)
		}
		defer func() { _ = f.Close() }()

		res, err = wordbase.ParseReader(f)
		if err != nil {
			return wordbase.Result{}, fmt.Errorf("failed to read word database: %w", err)
		}
	}

	log := logger.With(slog.String("component", "wordbase"), slog.String("source", source))
	log.Info("word database loaded",
		slog.Int("words", len(res.Words)),
		slog.Int("explanations", len(res.Explanations)),
		slog.Int("errors", len(res.Errors)))
	for _, pe := range res.Errors {
		log.Warn("rejected database line",
			slog.Int("line", pe.Line),
			slog.String("error", pe.Err.Error()))
	}
	return res, nil
}
