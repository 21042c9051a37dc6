package lookup

import (
	"context"
	"log/slog"

	"github.com/yos-x/weardict/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type dictionaryClient interface {
	Lookup(ctx context.Context, q domain.LookupQuery) domain.Outcome[domain.DictionaryEntry]
}

type translationClient interface {
	Translate(ctx context.Context, q domain.LookupQuery) domain.Outcome[domain.TranslationResult]
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service is the entry point used by presentation layers. It validates raw
// user text and hands it to the dictionary or translation client. It keeps
// no state between calls and never retries.
type Service struct {
	log        *slog.Logger
	dictionary dictionaryClient
	translator translationClient
}

// NewService creates a lookup Service.
func NewService(logger *slog.Logger, dictionary dictionaryClient, translator translationClient) *Service {
	return &Service{
		log:        logger.With("service", "lookup"),
		dictionary: dictionary,
		translator: translator,
	}
}

// Lookup validates text and performs one dictionary lookup.
// The error is non-nil only when text is blank; upstream problems are
// reported through the outcome.
func (s *Service) Lookup(ctx context.Context, text string) (domain.Outcome[domain.DictionaryEntry], error) {
	q, err := domain.NewLookupQuery(text)
	if err != nil {
		return domain.Outcome[domain.DictionaryEntry]{}, err
	}

	out := s.dictionary.Lookup(ctx, q)
	s.logOutcome(ctx, "lookup", q, out.Failure())
	return out, nil
}

// LookupRelated starts a fresh lookup of a related term's translation.
func (s *Service) LookupRelated(ctx context.Context, term domain.RelatedTerm) (domain.Outcome[domain.DictionaryEntry], error) {
	return s.Lookup(ctx, term.Translation)
}

// Translate validates text and performs one translation.
func (s *Service) Translate(ctx context.Context, text string) (domain.Outcome[domain.TranslationResult], error) {
	q, err := domain.NewLookupQuery(text)
	if err != nil {
		return domain.Outcome[domain.TranslationResult]{}, err
	}

	out := s.translator.Translate(ctx, q)
	s.logOutcome(ctx, "translate", q, out.Failure())
	return out, nil
}

func (s *Service) logOutcome(ctx context.Context, op string, q domain.LookupQuery, f *domain.Failure) {
	if f == nil {
		s.log.DebugContext(ctx, op+" succeeded", slog.String("query", q.Text()))
		return
	}
	s.log.InfoContext(ctx, op+" failed",
		slog.String("query", q.Text()),
		slog.String("reason", f.Kind.String()),
		slog.String("error", f.Error()),
	)
}
