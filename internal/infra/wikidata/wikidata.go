package infra_wikidata

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/humanbelnik/kinoswap/prefform/internal/config"
	gobreaker "github.com/sony/gobreaker/v2"
)

var (
	ErrBadStatus        = errors.New("lookup service returned unexpected status")
	ErrMalformedPayload = errors.New("malformed lookup payload")
	ErrUnavailable      = errors.New("lookup service unavailable")
)

// Films with an English label equal to the text that have an English Wikipedia article.
const movieQuery = `SELECT DISTINCT ?item ?itemLabel ?itemDescription WHERE {
  ?item ?label "%s"@en.
  ?item (wdt:P31/wdt:P279*) wd:Q11424.
  ?article schema:about ?item.
  ?article schema:inLanguage "en".
  ?article schema:isPartOf <https://en.wikipedia.org/>.
  SERVICE wikibase:label { bd:serviceParam wikibase:language "en". }
}`

type Client struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]string]
	logger     *slog.Logger
}

type Option func(*Client)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func New(cfg config.Lookup, opts ...Option) *Client {
	c := &Client{
		endpoint:  cfg.Endpoint,
		userAgent: cfg.UserAgent,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.breaker = gobreaker.NewCircuitBreaker[[]string](gobreaker.Settings{
		Name:        "movie-lookup",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn("circuit breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
		// A search superseded by a newer one is not a service failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})

	return c
}

type sparqlResponse struct {
	Results struct {
		Bindings []binding `json:"bindings"`
	} `json:"results"`
}

type binding struct {
	ItemLabel *struct {
		Value string `json:"value"`
	} `json:"itemLabel"`
}

// SearchMovies returns the labels of films titled exactly text, in the order
// the service returns them.
func (c *Client) SearchMovies(ctx context.Context, text string) ([]string, error) {
	labels, err := c.breaker.Execute(func() ([]string, error) {
		return c.query(ctx, text)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return labels, err
}

func (c *Client) query(ctx context.Context, text string) ([]string, error) {
	params := url.Values{}
	params.Set("query", fmt.Sprintf(movieQuery, escapeLiteral(text)))
	params.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/sparql-results+json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query lookup service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	var payload sparqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	labels := make([]string, 0, len(payload.Results.Bindings))
	for i, b := range payload.Results.Bindings {
		if b.ItemLabel == nil {
			return nil, fmt.Errorf("%w: binding %d has no itemLabel", ErrMalformedPayload, i)
		}
		labels = append(labels, b.ItemLabel.Value)
	}

	c.logger.Debug("movie lookup done",
		slog.String("text", text),
		slog.Int("results", len(labels)),
	)

	return labels, nil
}

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func escapeLiteral(s string) string {
	return literalEscaper.Replace(s)
}
