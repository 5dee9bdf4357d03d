package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/cornndawwg/icatalyst-production-sub001/internal/domain"
	"golang.org/x/time/rate"
)

// Client calls a remote text-classification endpoint. The remote side is
// treated as an untrusted, possibly slow peer: every call is bounded by the
// configured timeout, and timeout, transport error, or a malformed response
// all surface as ErrExternalUnavailable. No retries happen here; retries,
// if desired, belong to the caller.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a classifier client. ratePerSecond bounds outbound
// calls; timeout bounds each individual request.
func NewClient(apiKey, baseURL string, timeout time.Duration, ratePerSecond float64) *Client {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if ratePerSecond <= 0 {
		ratePerSecond = 5
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: rate.NewLimiter(rate.Limit(ratePerSecond), 5),
	}
}

// SetDebug toggles request/response logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// classifyRequest is the wire format sent to the remote classifier
type classifyRequest struct {
	Text string `json:"text"`
}

// classifyResponse is the wire format returned by the remote classifier
type classifyResponse struct {
	Persona    string  `json:"persona"`
	Confidence float64 `json:"confidence"`
}

// Classify sends the text to the remote classifier and maps the response
// onto a DetectionResult with method = external.
func (c *Client) Classify(ctx context.Context, text string) (*domain.DetectionResult, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limiter: %v", domain.ErrExternalUnavailable, err)
	}

	payload, err := json.Marshal(classifyRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("%w: encoding request: %v", domain.ErrExternalUnavailable, err)
	}

	endpoint := fmt.Sprintf("%s/v1/classify", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %v", domain.ErrExternalUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	if c.debug {
		log.Printf("[CLASSIFY] POST %s (%d bytes)", endpoint, len(payload))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExternalUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", domain.ErrExternalUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		if c.debug {
			log.Printf("[CLASSIFY] status %d, body: %s", resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("%w: status %d", domain.ErrExternalUnavailable, resp.StatusCode)
	}

	var parsed classifyResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", domain.ErrExternalUnavailable, err)
	}
	if parsed.Persona == "" || parsed.Confidence < 0 || parsed.Confidence > 1 {
		return nil, fmt.Errorf("%w: malformed response persona=%q confidence=%.3f",
			domain.ErrExternalUnavailable, parsed.Persona, parsed.Confidence)
	}

	if c.debug {
		log.Printf("[CLASSIFY] persona=%s confidence=%.2f", parsed.Persona, parsed.Confidence)
	}

	return &domain.DetectionResult{
		Persona:    parsed.Persona,
		Confidence: parsed.Confidence,
		Method:     domain.MethodExternal,
	}, nil
}
