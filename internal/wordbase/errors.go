package wordbase

import (
	"errors"
	"fmt"
)

// Line-level parse failures. Typed errors below unwrap to one of these, so
// callers can classify with errors.Is.
var (
	// ErrEmphasisNotFound is returned when a word has no uppercase letter.
	ErrEmphasisNotFound = errors.New("word must mark its emphasis with an uppercase letter")

	// ErrMoreThanOneGroup is returned when a word names more than one group.
	ErrMoreThanOneGroup = errors.New("only one group is allowed per word")

	// ErrExplanationNotDefined is returned when a word references a tag that
	// no earlier line defines.
	ErrExplanationNotDefined = errors.New("explanation is not defined")

	// ErrDelimiterNotFound is returned when an explanation line has no ':'
	// between its tag and text.
	ErrDelimiterNotFound = errors.New("explanation must separate tag and text with ':'")
)

// EmphasisNotFoundError reports a word token without an emphasis marker.
type EmphasisNotFoundError struct {
	Token string
}

func (e *EmphasisNotFoundError) Error() string {
	return fmt.Sprintf("%v: %q", ErrEmphasisNotFound, e.Token)
}

func (e *EmphasisNotFoundError) Unwrap() error { return ErrEmphasisNotFound }

// MoreThanOneGroupError reports a word with several group markers.
type MoreThanOneGroupError struct {
	Word string
}

func (e *MoreThanOneGroupError) Error() string {
	return fmt.Sprintf("%v: %q", ErrMoreThanOneGroup, e.Word)
}

func (e *MoreThanOneGroupError) Unwrap() error { return ErrMoreThanOneGroup }

// ExplanationNotDefinedError reports a reference to an unknown explanation
// tag.
type ExplanationNotDefinedError struct {
	Tag  string
	Word string
}

func (e *ExplanationNotDefinedError) Error() string {
	return fmt.Sprintf("%v: tag %q referenced by %q", ErrExplanationNotDefined, e.Tag, e.Word)
}

func (e *ExplanationNotDefinedError) Unwrap() error { return ErrExplanationNotDefined }

// ParseError ties a failure to the 1-based line it occurred on.
type ParseError struct {
	Line int
	Err  error
}

func (e ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap returns the line-level cause.
func (e ParseError) Unwrap() error {
	return e.Err
}
