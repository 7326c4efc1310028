package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/phrazzld/emphasis-trainer/internal/catalog"
	"github.com/phrazzld/emphasis-trainer/internal/domain"
	"github.com/phrazzld/emphasis-trainer/internal/wordbase"
)

// ErrRejectedLines is returned by check when any database has errors.
var ErrRejectedLines = errors.New("word database has rejected lines")

// CheckCmd reports every rejected line.
type CheckCmd struct {
	Files []string `arg:"" optional:"" help:"Database files; the bundled database when omitted" type:"existingfile"`
	Quiet bool     `short:"q" help:"Print only the summary line per file"`
}

// Run implements the check command.
func (c *CheckCmd) Run(out io.Writer) error {
	if len(c.Files) == 0 {
		return c.report(out, "embedded", wordbase.Default())
	}

	var failed int
	for _, path := range c.Files {
		res, err := parseFile(path)
		if err != nil {
			return err
		}
		if err := c.report(out, path, res); err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files", ErrRejectedLines, failed, len(c.Files))
	}
	return nil
}

func (c *CheckCmd) report(out io.Writer, name string, res wordbase.Result) error {
	if !c.Quiet {
		for _, pe := range res.Errors {
			fmt.Fprintf(out, "%s:%d: %v\n", name, pe.Line, pe.Err)
		}
	}
	fmt.Fprintf(out, "%s: %d words, %d explanations, %d errors\n",
		name, len(res.Words), len(res.Explanations), len(res.Errors))
	if res.HasErrors() {
		return ErrRejectedLines
	}
	return nil
}

// ListCmd prints words with their rule relations.
type ListCmd struct {
	File    string `arg:"" optional:"" help:"Database file; the bundled database when omitted" type:"existingfile"`
	Related bool   `short:"r" help:"Also print the words sharing each word's rule"`
}

// Run implements the list command. Rejected lines are skipped silently;
// use check to see them.
func (c *ListCmd) Run(out io.Writer) error {
	res := wordbase.Default()
	if c.File != "" {
		var err error
		if res, err = parseFile(c.File); err != nil {
			return err
		}
	}

	cat := catalog.New(res.Words)
	for i, w := range cat.Words() {
		line := fmt.Sprintf("%4d  %s", i, w)
		if g, ok := w.Group(); ok {
			marker := ":"
			if g.Inverted {
				marker = "!"
			}
			line += fmt.Sprintf("  %s%016x", marker, g.Rule)
		}
		if w.Explanation() != "" {
			line += "  < " + w.Explanation()
		}
		fmt.Fprintln(out, line)

		if c.Related {
			printRelated(out, "see also", cat.SeeAlso(w))
			printRelated(out, "opposite", cat.Opposite(w))
		}
	}
	return nil
}

func printRelated(out io.Writer, label string, words []domain.Word) {
	if len(words) == 0 {
		return
	}
	fmt.Fprintf(out, "        %s:", label)
	for _, w := range words {
		fmt.Fprintf(out, " %s", w)
	}
	fmt.Fprintln(out)
}

func parseFile(path string) (wordbase.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return wordbase.Result{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	res, err := wordbase.ParseReader(f)
	if err != nil {
		return wordbase.Result{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return res, nil
}
