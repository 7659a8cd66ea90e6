package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/gitrdm/wordle-entropy-solver/pkg/pattern"
	"github.com/gitrdm/wordle-entropy-solver/pkg/wordle"
)

// guessRequest is the wire body POSTed to an HTTPOracle's endpoint.
type guessRequest struct {
	Guess string `json:"guess"`
}

// guessResponse is the wire body an HTTPOracle expects back: one
// symbol per letter, spelled "absent"/"present"/"exact" (the lowercase
// names of pattern.Absent/Present/Exact, decoded by parseSymbol).
type guessResponse struct {
	Feedback [pattern.WordLength]string `json:"feedback"`
	Error    string                     `json:"error,omitempty"`
}

// HTTPOracle drives an external judge over HTTP, one guess per POST
// request, with bounded exponential-backoff retries on transport
// failure (§6.2). It is the only network-facing component in this
// module.
type HTTPOracle struct {
	BaseURL    string
	Client     *http.Client
	MaxRetries int
	BaseDelay  time.Duration
	Logger     zerolog.Logger
}

// NewHTTPOracle returns an HTTPOracle pointed at baseURL, with a
// timeout-bounded client and a sensible retry policy.
func NewHTTPOracle(baseURL string, logger zerolog.Logger) *HTTPOracle {
	return &HTTPOracle{
		BaseURL:    baseURL,
		Client:     &http.Client{Timeout: 10 * time.Second},
		MaxRetries: 3,
		BaseDelay:  200 * time.Millisecond,
		Logger:     logger,
	}
}

// Submit POSTs guess to BaseURL+"/guess" as JSON and parses the
// returned per-letter feedback. Transport errors and 5xx responses are
// retried up to MaxRetries times with jittered exponential backoff;
// all other failures (4xx, malformed JSON, an unparseable symbol) fail
// immediately since a retry cannot help them.
func (o *HTTPOracle) Submit(ctx context.Context, guess pattern.Word) (pattern.Pattern, error) {
	body, err := json.Marshal(guessRequest{Guess: guess.String()})
	if err != nil {
		return pattern.Pattern{}, &wordle.SolveError{Kind: wordle.OracleFailure, Message: "encoding guess request", Cause: err}
	}

	var lastErr error
	delay := o.BaseDelay
	for attempt := 0; attempt <= o.MaxRetries; attempt++ {
		if attempt > 0 {
			o.Logger.Warn().Int("attempt", attempt).Str("guess", guess.String()).Err(lastErr).Msg("retrying oracle submit")
			select {
			case <-ctx.Done():
				return pattern.Pattern{}, &wordle.SolveError{Kind: wordle.OracleFailure, Message: "context cancelled during retry backoff", Cause: ctx.Err()}
			case <-time.After(jitter(delay)):
			}
			delay *= 2
		}

		p, retryable, err := o.submitOnce(ctx, body)
		if err == nil {
			return p, nil
		}
		lastErr = err
		if !retryable {
			return pattern.Pattern{}, &wordle.SolveError{Kind: wordle.OracleFailure, Message: "oracle rejected guess", Cause: err}
		}
	}

	return pattern.Pattern{}, &wordle.SolveError{Kind: wordle.OracleFailure, Message: "oracle submit exhausted retries", Cause: lastErr}
}

// submitOnce performs a single HTTP round trip. The bool return
// indicates whether the caller should retry the error.
func (o *HTTPOracle) submitOnce(ctx context.Context, body []byte) (pattern.Pattern, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.BaseURL+"/guess", bytes.NewReader(body))
	if err != nil {
		return pattern.Pattern{}, false, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.Client.Do(req)
	if err != nil {
		return pattern.Pattern{}, true, fmt.Errorf("round trip: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return pattern.Pattern{}, true, fmt.Errorf("oracle returned status %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return pattern.Pattern{}, false, fmt.Errorf("oracle returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return pattern.Pattern{}, true, fmt.Errorf("reading response body: %w", err)
	}

	var gr guessResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		return pattern.Pattern{}, false, fmt.Errorf("decoding response body: %w", err)
	}
	if gr.Error != "" {
		return pattern.Pattern{}, false, fmt.Errorf("oracle error: %s", gr.Error)
	}

	var p pattern.Pattern
	for i, sym := range gr.Feedback {
		s, err := parseSymbol(sym)
		if err != nil {
			return pattern.Pattern{}, false, fmt.Errorf("feedback[%d]: %w", i, err)
		}
		p[i] = s
	}
	return p, false, nil
}

func parseSymbol(s string) (pattern.Symbol, error) {
	switch s {
	case "absent":
		return pattern.Absent, nil
	case "present":
		return pattern.Present, nil
	case "exact":
		return pattern.Exact, nil
	default:
		return 0, fmt.Errorf("unrecognized feedback symbol %q", s)
	}
}

// jitter returns d plus up to 50% random jitter, to avoid synchronized
// retry storms against the same oracle endpoint.
func jitter(d time.Duration) time.Duration {
	return d + time.Duration(rand.Int63n(int64(d)/2+1))
}

var _ wordle.Oracle = (*HTTPOracle)(nil)
