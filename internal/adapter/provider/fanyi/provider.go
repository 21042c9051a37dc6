package fanyi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/yos-x/weardict/internal/domain"
)

const (
	// DefaultBaseURL is the 360 fanyi search endpoint.
	DefaultBaseURL = "https://fanyi.so.com/index/search"

	upstreamName = "fanyi"
)

// fetcher performs one upstream call and returns the 2xx body.
type fetcher interface {
	Fetch(ctx context.Context, req *http.Request, upstream string) ([]byte, error)
}

// Provider translates text through fanyi.so.com.
// It holds no per-call state and is safe for concurrent use.
type Provider struct {
	baseURL string
	fetcher fetcher
	log     *slog.Logger
}

// NewProvider creates a Provider with the default endpoint.
func NewProvider(f fetcher, logger *slog.Logger) *Provider {
	return NewProviderWithURL(DefaultBaseURL, f, logger)
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL string, f fetcher, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL: baseURL,
		fetcher: f,
		log:     logger.With("adapter", upstreamName),
	}
}

// Translate sends q for translation. data.fanyi is required: a reply
// without it is a malformed-response failure.
func (p *Provider) Translate(ctx context.Context, q domain.LookupQuery) domain.Outcome[domain.TranslationResult] {
	eng := LanguageFlag(q.Text())

	p.log.DebugContext(ctx, "fanyi request",
		slog.String("query", q.Text()),
		slog.String("eng", eng),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, strings.NewReader(encodeForm(eng, q.Text())))
	if err != nil {
		return domain.Fail[domain.TranslationResult](domain.NewNetworkFailure(fmt.Errorf("fanyi: create request: %w", err)))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("pro", "fanyi")

	body, err := p.fetcher.Fetch(ctx, req, upstreamName)
	if err != nil {
		return domain.Fail[domain.TranslationResult](domain.AsFailure(err))
	}

	translated, err := extractTranslation(body)
	if err != nil {
		p.log.WarnContext(ctx, "fanyi malformed response", slog.String("query", q.Text()), slog.String("error", err.Error()))
		return domain.Fail[domain.TranslationResult](domain.NewMalformedResponse(err))
	}

	return domain.Success(domain.TranslationResult{
		SourceText:     q.Text(),
		TranslatedText: translated,
	})
}

// LanguageFlag returns "1" when every rune of text is ASCII, otherwise "0".
func LanguageFlag(text string) string {
	for _, r := range text {
		if r > 0x7f {
			return "0"
		}
	}
	return "1"
}

// encodeForm builds the form body with fields in a fixed order.
// url.Values.Encode would sort the keys.
func encodeForm(eng, text string) string {
	return "eng=" + url.QueryEscape(eng) +
		"&validate=&ignore_trans=0&query=" + url.QueryEscape(text)
}

func extractTranslation(body []byte) (string, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("fanyi: decode json: %w", err)
	}
	if resp.Data == nil {
		return "", errors.New("fanyi: missing data")
	}
	if resp.Data.Fanyi == nil {
		return "", errors.New("fanyi: missing data.fanyi")
	}
	return *resp.Data.Fanyi, nil
}
