package api

import "github.com/phrazzld/emphasis-trainer/internal/domain"

// VariantResponse is one answer choice. Display never reveals ё.
type VariantResponse struct {
	Emphasis int    `json:"emphasis"`
	Display  string `json:"display"`
}

// QuestionResponse asks about a word without revealing its emphasis.
type QuestionResponse struct {
	ID       int               `json:"id"`
	Detail   string            `json:"detail,omitempty"`
	Variants []VariantResponse `json:"variants"`
}

// WordResponse describes a word with its answer.
type WordResponse struct {
	ID          int    `json:"id"`
	Text        string `json:"text"`
	Display     string `json:"display"`
	Emphasis    int    `json:"emphasis"`
	Detail      string `json:"detail,omitempty"`
	Explanation string `json:"explanation,omitempty"`
	Grouped     bool   `json:"grouped"`
	Inverted    bool   `json:"inverted,omitempty"`
}

// AnswerRequest is the body of an answer submission.
type AnswerRequest struct {
	Emphasis *int `json:"emphasis" validate:"required,min=0"`
}

// AnswerResponse reports the outcome and the correct form.
type AnswerResponse struct {
	Outcome domain.Outcome `json:"outcome"`
	Correct bool           `json:"correct"`
	Word    WordResponse   `json:"word"`
}

// RelatedResponse lists the words sharing a word's rule.
type RelatedResponse struct {
	Word     WordResponse   `json:"word"`
	SeeAlso  []WordResponse `json:"see_also"`
	Opposite []WordResponse `json:"opposite"`
}

// ParseErrorResponse is one database diagnostic.
type ParseErrorResponse struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// DiagnosticsResponse summarizes the loaded database and progress.
type DiagnosticsResponse struct {
	Words        int                  `json:"words"`
	Explanations int                  `json:"explanations"`
	Errors       []ParseErrorResponse `json:"errors"`
	Tracked      int                  `json:"tracked"`
	Due          int                  `json:"due"`
	Levels       []int                `json:"levels"`
}

func variantsToResponse(variants []domain.Variant) []VariantResponse {
	out := make([]VariantResponse, 0, len(variants))
	for _, v := range variants {
		out = append(out, VariantResponse{Emphasis: v.Emphasis, Display: v.String()})
	}
	return out
}

func wordToResponse(id int, w domain.Word) WordResponse {
	g, grouped := w.Group()
	return WordResponse{
		ID:          id,
		Text:        w.Text(),
		Display:     w.String(),
		Emphasis:    w.Emphasis(),
		Detail:      w.Detail(),
		Explanation: w.Explanation(),
		Grouped:     grouped,
		Inverted:    grouped && g.Inverted,
	}
}
