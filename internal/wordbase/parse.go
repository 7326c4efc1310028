package wordbase

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/phrazzld/emphasis-trainer/internal/domain"
)

const (
	commentPrefix     = "//"
	explanationPrefix = ">"
	explanationDelim  = ":"

	groupMarkers         = ":!"
	invertedGroupMarker  = "!"
	explanationMarkers   = "><"
	detailTerminators    = ":!><"
	explanationTagMarker = ">"
	inlineTextMarker     = "<"
)

// Result holds everything a database yields: the words in source order, the
// explanation definitions in source order, and one error per rejected line.
type Result struct {
	Words        []domain.Word
	Explanations []domain.Explanation
	Errors       []ParseError
}

// HasErrors reports whether any line was rejected.
func (r Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// Parse processes every line of text independently. It never fails as a
// whole; rejected lines are reported in Result.Errors with 1-based line
// numbers and do not affect other lines.
func Parse(text string) Result {
	var res Result
	explanations := make(map[string]string)

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case line == "", strings.HasPrefix(line, commentPrefix):
			continue

		case strings.HasPrefix(line, explanationPrefix):
			expl, err := parseExplanation(line)
			if err != nil {
				res.Errors = append(res.Errors, ParseError{Line: i + 1, Err: err})
				continue
			}
			explanations[expl.Tag] = expl.Text
			res.Explanations = append(res.Explanations, expl)

		default:
			word, err := parseWord(line, explanations)
			if err != nil {
				res.Errors = append(res.Errors, ParseError{Line: i + 1, Err: err})
				continue
			}
			res.Words = append(res.Words, word)
		}
	}

	return res
}

// ParseReader reads r to the end and parses its content.
func ParseReader(r io.Reader) (Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read word database: %w", err)
	}
	return Parse(string(data)), nil
}

func parseExplanation(line string) (domain.Explanation, error) {
	rest := strings.TrimSpace(strings.TrimPrefix(line, explanationPrefix))
	tag, text, ok := strings.Cut(rest, explanationDelim)
	if !ok {
		return domain.Explanation{}, ErrDelimiterNotFound
	}
	return domain.NewExplanation(tag, text), nil
}

func parseWord(line string, explanations map[string]string) (domain.Word, error) {
	token, rest := splitToken(line)

	token = domain.Compose(token)
	emphasis := domain.FirstUppercase(token)
	if emphasis < 0 {
		return domain.Word{}, &EmphasisNotFoundError{Token: token}
	}

	word := domain.NewWord(token, emphasis)
	if rest == "" {
		return word, nil
	}

	if strings.Count(rest, ":")+strings.Count(rest, "!") > 1 {
		return domain.Word{}, &MoreThanOneGroupError{Word: word.Text()}
	}

	if detail := strings.TrimSpace(subsliceTags(rest, "", detailTerminators)); detail != "" {
		word = word.WithDetail(detail)
	}

	if group := strings.TrimSpace(subsliceTags(rest, groupMarkers, explanationMarkers)); group != "" {
		word = word.WithGroup(group, strings.Contains(rest, invertedGroupMarker))
	}

	if strings.Contains(rest, explanationTagMarker) {
		tag := domain.Normalize(strings.TrimSpace(subsliceTags(rest, explanationTagMarker, "")))
		if tag != "" {
			text, ok := explanations[tag]
			if !ok {
				return domain.Word{}, &ExplanationNotDefinedError{Tag: tag, Word: word.Text()}
			}
			word = word.WithExplanation(text)
		}
		return word, nil
	}

	if inline := strings.TrimSpace(subsliceTags(rest, inlineTextMarker, "")); inline != "" {
		word = word.WithExplanation(inline)
	}

	return word, nil
}

// splitToken splits line at its first whitespace run.
func splitToken(line string) (token, rest string) {
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(line[i:])
}
