package api

import (
	"log/slog"
	"net/http"
	"slices"
	"sync"

	"github.com/phrazzld/emphasis-trainer/internal/api/shared"
	"github.com/phrazzld/emphasis-trainer/internal/domain"
	"github.com/phrazzld/emphasis-trainer/internal/domain/srs"
	"github.com/phrazzld/emphasis-trainer/internal/platform/logger"
	"github.com/phrazzld/emphasis-trainer/internal/service/trainer"
	"github.com/phrazzld/emphasis-trainer/internal/wordbase"
)

// Progress reports mastery counts. *stats.Statistics implements it.
type Progress interface {
	Len() int
	Due() int
	Levels() [srs.LevelCount]int
}

// WordHandler serves the practice endpoints. The trainer is not safe for
// concurrent use, so every call into it holds mu.
type WordHandler struct {
	mu       sync.Mutex
	trainer  *trainer.Trainer
	progress Progress
	parsed   wordbase.Result
	logger   *slog.Logger
}

// NewWordHandler creates a handler. parsed is the database parse result
// reported by the diagnostics endpoint.
func NewWordHandler(
	t *trainer.Trainer,
	progress Progress,
	parsed wordbase.Result,
	logger *slog.Logger,
) *WordHandler {
	if t == nil {
		panic("trainer cannot be nil")
	}
	if progress == nil {
		panic("progress cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &WordHandler{
		trainer:  t,
		progress: progress,
		parsed:   parsed,
		logger:   logger.With(slog.String("component", "word_handler")),
	}
}

// NextWord handles GET /api/words/next.
func (h *WordHandler) NextWord(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	word, err := h.trainer.Next()
	id := -1
	if err == nil {
		id = h.trainer.Catalog().IndexOf(word)
	}
	h.mu.Unlock()

	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, QuestionResponse{
		ID:       id,
		Detail:   word.Detail(),
		Variants: variantsToResponse(word.Variants()),
	})
}

// SubmitAnswer handles POST /api/words/{id}/answer.
func (h *WordHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathWordID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req AnswerRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, err, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	word, err := h.word(id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if !isVariant(word, *req.Emphasis) {
		HandleAPIError(w, r, ErrInvalidEmphasis, "")
		return
	}

	outcome, err := h.trainer.Answer(r.Context(), word, *req.Emphasis)
	if err != nil {
		log.Error("failed to record answer",
			slog.Int("word_id", id),
			slog.String("outcome", string(outcome)))
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AnswerResponse{
		Outcome: outcome,
		Correct: outcome == domain.OutcomeSolved,
		Word:    wordToResponse(id, word),
	})
}

// RelatedWords handles GET /api/words/{id}/related.
func (h *WordHandler) RelatedWords(w http.ResponseWriter, r *http.Request) {
	id, err := getPathWordID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	word, err := h.word(id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, RelatedResponse{
		Word:     wordToResponse(id, word),
		SeeAlso:  h.toResponses(h.trainer.SeeAlso(word)),
		Opposite: h.toResponses(h.trainer.Opposite(word)),
	})
}

// Diagnostics handles GET /api/diagnostics.
func (h *WordHandler) Diagnostics(w http.ResponseWriter, r *http.Request) {
	errs := make([]ParseErrorResponse, 0, len(h.parsed.Errors))
	for _, pe := range h.parsed.Errors {
		errs = append(errs, ParseErrorResponse{Line: pe.Line, Message: pe.Err.Error()})
	}

	h.mu.Lock()
	levels := h.progress.Levels()
	resp := DiagnosticsResponse{
		Words:        len(h.parsed.Words),
		Explanations: len(h.parsed.Explanations),
		Errors:       errs,
		Tracked:      h.progress.Len(),
		Due:          h.progress.Due(),
		Levels:       levels[:],
	}
	h.mu.Unlock()

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

func (h *WordHandler) word(id int) (domain.Word, error) {
	cat := h.trainer.Catalog()
	if id >= cat.Len() {
		return domain.Word{}, ErrWordNotFound
	}
	return cat.At(id), nil
}

func (h *WordHandler) toResponses(words []domain.Word) []WordResponse {
	cat := h.trainer.Catalog()
	out := make([]WordResponse, 0, len(words))
	for _, w := range words {
		out = append(out, wordToResponse(cat.IndexOf(w), w))
	}
	return out
}

func isVariant(w domain.Word, emphasis int) bool {
	return slices.ContainsFunc(w.Variants(), func(v domain.Variant) bool {
		return v.Emphasis == emphasis
	})
}
