package lookup

import (
	"context"

	"github.com/yos-x/weardict/internal/domain"
)

// LookupAsync validates text synchronously, then runs the lookup on its own
// goroutine. The returned channel yields exactly one outcome and is then
// closed. It is buffered, so the goroutine finishes even if nobody reads.
// Cancelling ctx abandons the underlying HTTP call.
func (s *Service) LookupAsync(ctx context.Context, text string) (<-chan domain.Outcome[domain.DictionaryEntry], error) {
	q, err := domain.NewLookupQuery(text)
	if err != nil {
		return nil, err
	}

	ch := make(chan domain.Outcome[domain.DictionaryEntry], 1)
	go func() {
		defer close(ch)
		out := s.dictionary.Lookup(ctx, q)
		s.logOutcome(ctx, "lookup", q, out.Failure())
		ch <- out
	}()
	return ch, nil
}

// TranslateAsync is the asynchronous form of Translate, with the same
// delivery guarantees as LookupAsync.
func (s *Service) TranslateAsync(ctx context.Context, text string) (<-chan domain.Outcome[domain.TranslationResult], error) {
	q, err := domain.NewLookupQuery(text)
	if err != nil {
		return nil, err
	}

	ch := make(chan domain.Outcome[domain.TranslationResult], 1)
	go func() {
		defer close(ch)
		out := s.translator.Translate(ctx, q)
		s.logOutcome(ctx, "translate", q, out.Failure())
		ch <- out
	}()
	return ch, nil
}
