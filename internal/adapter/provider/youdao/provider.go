package youdao

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/yos-x/weardict/internal/domain"
)

const (
	// DefaultBaseURL is the Youdao dictionary JSON endpoint.
	DefaultBaseURL = "https://dict.youdao.com/jsonapi"

	upstreamName = "youdao"
)

// fetcher performs one upstream call and returns the 2xx body.
type fetcher interface {
	Fetch(ctx context.Context, req *http.Request, upstream string) ([]byte, error)
}

// Provider looks words up in the Youdao dictionary.
// It holds no per-call state and is safe for concurrent use.
type Provider struct {
	baseURL string
	fetcher fetcher
	log     *slog.Logger
}

// NewProvider creates a Provider with the default Youdao endpoint.
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

// Lookup fetches the dictionary entry for q. Sections missing from the
// response, or present but malformed, come back as empty slices; only a
// failed call or a body that is not a JSON object yields a Failure.
func (p *Provider) Lookup(ctx context.Context, q domain.LookupQuery) domain.Outcome[domain.DictionaryEntry] {
	p.log.DebugContext(ctx, "youdao request", slog.String("query", q.Text()))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, buildURL(p.baseURL, q.Text()), nil)
	if err != nil {
		return domain.Fail[domain.DictionaryEntry](domain.NewNetworkFailure(fmt.Errorf("youdao: create request: %w", err)))
	}

	body, err := p.fetcher.Fetch(ctx, req, upstreamName)
	if err != nil {
		return domain.Fail[domain.DictionaryEntry](domain.AsFailure(err))
	}

	entry, err := p.normalize(ctx, q.Text(), body)
	if err != nil {
		p.log.WarnContext(ctx, "youdao malformed response", slog.String("query", q.Text()), slog.String("error", err.Error()))
		return domain.Fail[domain.DictionaryEntry](domain.NewMalformedResponse(err))
	}

	p.log.DebugContext(ctx, "youdao response",
		slog.String("query", q.Text()),
		slog.Int("related_terms", len(entry.RelatedTerms)),
		slog.Int("examples", len(entry.Examples)),
		slog.Int("encyclopedia", len(entry.Encyclopedia)),
	)

	return domain.Success(entry)
}

// normalize splits the body into its sections and parses each on its own.
func (p *Provider) normalize(ctx context.Context, headword string, body []byte) (domain.DictionaryEntry, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return domain.DictionaryEntry{}, errors.New("youdao: body is not a JSON object")
	}

	var env apiEnvelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return domain.DictionaryEntry{}, fmt.Errorf("youdao: decode json: %w", err)
	}

	related, err := parseRelatedTerms(env.WebTrans)
	p.reportSection(ctx, sectionRelatedTerms, headword, err)

	examples, err := parseExamples(env.BilingualPart)
	p.reportSection(ctx, sectionExamples, headword, err)

	encyclopedia, err := parseEncyclopedia(env.Baike)
	p.reportSection(ctx, sectionEncyclopedia, headword, err)

	return domain.DictionaryEntry{
		Headword:     headword,
		RelatedTerms: related,
		Examples:     examples,
		Encyclopedia: encyclopedia,
	}, nil
}

// reportSection logs a section that was present but could not be parsed.
// The entry is returned unchanged either way.
func (p *Provider) reportSection(ctx context.Context, section, headword string, err error) {
	if err == nil {
		return
	}
	p.log.WarnContext(ctx, "youdao section skipped",
		slog.String("section", section),
		slog.String("query", headword),
		slog.String("error", err.Error()),
	)
}

// buildURL fills the fixed jsonapi query template. Parameter order matches
// what the service expects; only q varies.
func buildURL(baseURL, text string) string {
	return baseURL +
		"?xmlVersion=5.1&client=&q=" + url.QueryEscape(text) +
		"&dicts=&keyfrom=&model=&mid=&imei=&vendor=&screen=&ssid=&network=5g&abtest=&jsonversion=2"
}
