package lookup

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yos-x/weardict/internal/domain"
)

// ===========================================================================
// Manual mocks (moq-style with func fields)
// ===========================================================================

type mockDictionaryClient struct {
	LookupFunc func(ctx context.Context, q domain.LookupQuery) domain.Outcome[domain.DictionaryEntry]
	calls      atomic.Int32
}

func (m *mockDictionaryClient) Lookup(ctx context.Context, q domain.LookupQuery) domain.Outcome[domain.DictionaryEntry] {
	m.calls.Add(1)
	if m.LookupFunc != nil {
		return m.LookupFunc(ctx, q)
	}
	return domain.Success(domain.DictionaryEntry{Headword: q.Text()})
}

type mockTranslationClient struct {
	TranslateFunc func(ctx context.Context, q domain.LookupQuery) domain.Outcome[domain.TranslationResult]
	calls         atomic.Int32
}

func (m *mockTranslationClient) Translate(ctx context.Context, q domain.LookupQuery) domain.Outcome[domain.TranslationResult] {
	m.calls.Add(1)
	if m.TranslateFunc != nil {
		return m.TranslateFunc(ctx, q)
	}
	return domain.Success(domain.TranslationResult{SourceText: q.Text(), TranslatedText: "t:" + q.Text()})
}

func newTestService(dict *mockDictionaryClient, tr *mockTranslationClient) *Service {
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), dict, tr)
}

// ===========================================================================
// Lookup
// ===========================================================================

func TestService_Lookup_Success(t *testing.T) {
	t.Parallel()

	dict := &mockDictionaryClient{
		LookupFunc: func(ctx context.Context, q domain.LookupQuery) domain.Outcome[domain.DictionaryEntry] {
			return domain.Success(domain.DictionaryEntry{
				Headword:     q.Text(),
				RelatedTerms: []domain.RelatedTerm{{Key: "hello", Translation: "你好"}},
			})
		},
	}
	svc := newTestService(dict, &mockTranslationClient{})

	out, err := svc.Lookup(context.Background(), "hello")
	require.NoError(t, err)

	entry, ok := out.Value()
	require.True(t, ok)
	assert.Equal(t, "hello", entry.Headword)
	assert.Len(t, entry.RelatedTerms, 1)
}

func TestService_Lookup_BlankRejectedBeforeCall(t *testing.T) {
	t.Parallel()

	dict := &mockDictionaryClient{}
	svc := newTestService(dict, &mockTranslationClient{})

	for _, text := range []string{"", "   ", "\n"} {
		_, err := svc.Lookup(context.Background(), text)
		assert.ErrorIs(t, err, domain.ErrValidation)

		var ve *domain.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "query", ve.Errors[0].Field)
	}
	assert.Equal(t, int32(0), dict.calls.Load())
}

func TestService_Lookup_FailurePassedThrough(t *testing.T) {
	t.Parallel()

	dict := &mockDictionaryClient{
		LookupFunc: func(context.Context, domain.LookupQuery) domain.Outcome[domain.DictionaryEntry] {
			return domain.Fail[domain.DictionaryEntry](domain.NewNetworkFailure(errors.New("status 500")))
		},
	}
	svc := newTestService(dict, &mockTranslationClient{})

	out, err := svc.Lookup(context.Background(), "hello")
	require.NoError(t, err)
	require.False(t, out.OK())
	assert.Equal(t, domain.FailureNetwork, out.Failure().Kind)
	assert.Equal(t, int32(1), dict.calls.Load(), "service must not retry")
}

func TestService_LookupRelated_UsesTranslation(t *testing.T) {
	t.Parallel()

	var got string
	dict := &mockDictionaryClient{
		LookupFunc: func(_ context.Context, q domain.LookupQuery) domain.Outcome[domain.DictionaryEntry] {
			got = q.Text()
			return domain.Success(domain.DictionaryEntry{Headword: q.Text()})
		},
	}
	svc := newTestService(dict, &mockTranslationClient{})

	out, err := svc.LookupRelated(context.Background(), domain.RelatedTerm{Key: "Hello Kitty", Translation: "凯蒂猫"})
	require.NoError(t, err)
	assert.True(t, out.OK())
	assert.Equal(t, "凯蒂猫", got)
}

// ===========================================================================
// Translate
// ===========================================================================

func TestService_Translate_Success(t *testing.T) {
	t.Parallel()

	svc := newTestService(&mockDictionaryClient{}, &mockTranslationClient{})

	out, err := svc.Translate(context.Background(), "hello")
	require.NoError(t, err)

	got, err := out.Unpack()
	require.NoError(t, err)
	assert.Equal(t, domain.TranslationResult{SourceText: "hello", TranslatedText: "t:hello"}, got)
}

func TestService_Translate_Malformed(t *testing.T) {
	t.Parallel()

	tr := &mockTranslationClient{
		TranslateFunc: func(context.Context, domain.LookupQuery) domain.Outcome[domain.TranslationResult] {
			return domain.Fail[domain.TranslationResult](domain.NewMalformedResponse(errors.New("missing data.fanyi")))
		},
	}
	svc := newTestService(&mockDictionaryClient{}, tr)

	out, err := svc.Translate(context.Background(), "hello")
	require.NoError(t, err)
	_, err = out.Unpack()
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestService_Translate_BlankRejected(t *testing.T) {
	t.Parallel()

	tr := &mockTranslationClient{}
	svc := newTestService(&mockDictionaryClient{}, tr)

	_, err := svc.Translate(context.Background(), " ")
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, int32(0), tr.calls.Load())
}

// ===========================================================================
// Async
// ===========================================================================

func TestService_LookupAsync_DeliversOnceAndCloses(t *testing.T) {
	t.Parallel()

	svc := newTestService(&mockDictionaryClient{}, &mockTranslationClient{})

	ch, err := svc.LookupAsync(context.Background(), "hello")
	require.NoError(t, err)

	select {
	case out, ok := <-ch:
		require.True(t, ok)
		entry, _ := out.Value()
		assert.Equal(t, "hello", entry.Headword)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for outcome")
	}

	_, ok := <-ch
	assert.False(t, ok, "channel should be closed after the outcome")
}

func TestService_LookupAsync_BlankRejected(t *testing.T) {
	t.Parallel()

	dict := &mockDictionaryClient{}
	svc := newTestService(dict, &mockTranslationClient{})

	ch, err := svc.LookupAsync(context.Background(), "")
	assert.Nil(t, ch)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, int32(0), dict.calls.Load())
}

func TestService_LookupAsync_AbandonedCallerDoesNotLeak(t *testing.T) {
	t.Parallel()

	done := make(chan struct{})
	dict := &mockDictionaryClient{
		LookupFunc: func(ctx context.Context, q domain.LookupQuery) domain.Outcome[domain.DictionaryEntry] {
			defer close(done)
			<-ctx.Done()
			return domain.Fail[domain.DictionaryEntry](domain.NewNetworkFailure(ctx.Err()))
		},
	}
	svc := newTestService(dict, &mockTranslationClient{})

	ctx, cancel := context.WithCancel(context.Background())
	_, err := svc.LookupAsync(ctx, "hello")
	require.NoError(t, err)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lookup goroutine did not observe cancellation")
	}
}

func TestService_TranslateAsync(t *testing.T) {
	t.Parallel()

	svc := newTestService(&mockDictionaryClient{}, &mockTranslationClient{})

	ch, err := svc.TranslateAsync(context.Background(), "你好")
	require.NoError(t, err)

	out := <-ch
	got, err := out.Unpack()
	require.NoError(t, err)
	assert.Equal(t, "你好", got.SourceText)

	_, ok := <-ch
	assert.False(t, ok)
}
