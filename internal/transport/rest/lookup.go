package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/yos-x/weardict/internal/domain"
)

// maxRequestBytes bounds request bodies of the POST endpoints.
const maxRequestBytes = 64 << 10

// lookupService defines the minimal interface needed by LookupHandler.
type lookupService interface {
	Lookup(ctx context.Context, text string) (domain.Outcome[domain.DictionaryEntry], error)
	LookupRelated(ctx context.Context, term domain.RelatedTerm) (domain.Outcome[domain.DictionaryEntry], error)
	Translate(ctx context.Context, text string) (domain.Outcome[domain.TranslationResult], error)
}

// LookupHandler serves the dictionary and translation endpoints.
type LookupHandler struct {
	svc lookupService
	log *slog.Logger
}

// NewLookupHandler creates a LookupHandler.
func NewLookupHandler(svc lookupService, logger *slog.Logger) *LookupHandler {
	return &LookupHandler{svc: svc, log: logger.With("handler", "lookup")}
}

// Register mounts the lookup routes on r.
func (h *LookupHandler) Register(r chi.Router) {
	r.Get("/dictionary", h.Dictionary)
	r.Post("/dictionary/related", h.Related)
	r.Post("/translate", h.Translate)
}

type translateRequest struct {
	Query string `json:"query"`
}

type relatedRequest struct {
	Key         string `json:"key"`
	Translation string `json:"translation"`
}

type dictionaryResponse struct {
	Headword     string                 `json:"headword"`
	RelatedTerms []relatedTermResponse  `json:"relatedTerms"`
	Examples     []exampleResponse      `json:"examples"`
	Encyclopedia []encyclopediaResponse `json:"encyclopedia"`
}

type relatedTermResponse struct {
	Key         string `json:"key"`
	Translation string `json:"translation"`
}

type exampleResponse struct {
	Sentence    string `json:"sentence"`
	Translation string `json:"translation"`
}

type encyclopediaResponse struct {
	Summary    string `json:"summary"`
	SourceName string `json:"sourceName"`
}

type translationResponse struct {
	SourceText     string `json:"sourceText"`
	TranslatedText string `json:"translatedText"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Dictionary handles GET /dictionary?q=.
func (h *LookupHandler) Dictionary(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.Lookup(r.Context(), r.URL.Query().Get("q"))
	h.writeDictionary(w, r, out, err)
}

// Related handles POST /dictionary/related: a fresh lookup of a related
// term's translation.
func (h *LookupHandler) Related(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)

	var req relatedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBodyError(w, err)
		return
	}

	out, err := h.svc.LookupRelated(r.Context(), domain.RelatedTerm{
		Key:         req.Key,
		Translation: req.Translation,
	})
	h.writeDictionary(w, r, out, err)
}

// Translate handles POST /translate. The text comes from a JSON body
// {"query": ...} or, for other content types, from the q form value.
func (h *LookupHandler) Translate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)

	text, err := translateText(r)
	if err != nil {
		writeBodyError(w, err)
		return
	}

	out, err := h.svc.Translate(r.Context(), text)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	result, err := out.Unpack()
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, translationResponse{
		SourceText:     result.SourceText,
		TranslatedText: result.TranslatedText,
	})
}

func (h *LookupHandler) writeDictionary(w http.ResponseWriter, r *http.Request, out domain.Outcome[domain.DictionaryEntry], err error) {
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	entry, err := out.Unpack()
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDictionaryResponse(entry))
}

func (h *LookupHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "validation", err.Error())
	case errors.Is(err, domain.ErrMalformedResponse):
		h.log.WarnContext(r.Context(), "upstream malformed", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "upstream_malformed", "upstream returned an unreadable response")
	case errors.Is(err, domain.ErrNetworkFailure):
		h.log.WarnContext(r.Context(), "upstream unavailable", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "upstream_unavailable", "upstream request failed")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal", "internal server error")
	}
}

func translateText(r *http.Request) (string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var req translateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return "", err
		}
		return req.Query, nil
	}
	if err := r.ParseForm(); err != nil {
		return "", err
	}
	return r.Form.Get("q"), nil
}

func writeBodyError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "request_too_large", "request body too large")
		return
	}
	writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: code, Message: message})
}

func toDictionaryResponse(e domain.DictionaryEntry) dictionaryResponse {
	resp := dictionaryResponse{
		Headword:     e.Headword,
		RelatedTerms: make([]relatedTermResponse, 0, len(e.RelatedTerms)),
		Examples:     make([]exampleResponse, 0, len(e.Examples)),
		Encyclopedia: make([]encyclopediaResponse, 0, len(e.Encyclopedia)),
	}
	for _, t := range e.RelatedTerms {
		resp.RelatedTerms = append(resp.RelatedTerms, relatedTermResponse{Key: t.Key, Translation: t.Translation})
	}
	for _, ex := range e.Examples {
		resp.Examples = append(resp.Examples, exampleResponse{Sentence: ex.Sentence, Translation: ex.Translation})
	}
	for _, s := range e.Encyclopedia {
		resp.Encyclopedia = append(resp.Encyclopedia, encyclopediaResponse{Summary: s.Summary, SourceName: s.SourceName})
	}
	return resp
}
