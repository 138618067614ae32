// Package fetcher retrieves and decodes the topic list from the remote
// quiz data source.
package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gagannsingh/iQuiz/internal/domain/entities"
)

var (
	ErrInvalidURL         = errors.New("invalid data source url")
	ErrNetworkUnavailable = errors.New("network unavailable")
	ErrTransport          = errors.New("transport error")
	ErrDecode             = errors.New("decode error")
)

// Checker gates a fetch on network reachability.
type Checker interface {
	Online(ctx context.Context, address string) bool
}

// HTTPFetcher fetches the topic list with a single GET per call: no retry,
// no timeout beyond the client default. A failed fetch has no side effects;
// the caller's topic list is replaced only on success.
type HTTPFetcher struct {
	client  *http.Client
	checker Checker
	logger  *zap.Logger
}

// New creates an HTTPFetcher using the default HTTP client.
func New(checker Checker, logger *zap.Logger) *HTTPFetcher {
	return &HTTPFetcher{
		client:  http.DefaultClient,
		checker: checker,
		logger:  logger,
	}
}

// ValidateURL reports whether raw is a well-formed absolute http(s) URL.
func ValidateURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	return u, nil
}

// Fetch retrieves the topic list from urlString. It fails with ErrInvalidURL
// for a malformed URL, ErrNetworkUnavailable when the reachability probe
// rejects the host, ErrTransport for request or status failures and
// ErrDecode for a payload that does not match the wire format.
func (f *HTTPFetcher) Fetch(ctx context.Context, urlString string) ([]*entities.Topic, error) {
	u, err := ValidateURL(urlString)
	if err != nil {
		return nil, err
	}

	if !f.checker.Online(ctx, dialAddress(u)) {
		return nil, fmt.Errorf("%w: %s is not reachable", ErrNetworkUnavailable, u.Host)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrTransport, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	topics, err := decodeTopics(body)
	if err != nil {
		return nil, err
	}

	f.logger.Info("topic list fetched",
		zap.String("url", u.String()),
		zap.Int("topics", len(topics)),
	)

	return topics, nil
}

// decodeTopics parses the wire payload and bounds-checks every answer key.
// Any invalid record fails the whole payload; a fetch is all-or-nothing.
func decodeTopics(data []byte) ([]*entities.Topic, error) {
	var topics []*entities.Topic
	if err := json.Unmarshal(data, &topics); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	// A bare "null" body unmarshals into a nil slice without an error; it is
	// not a topic array and must not wipe the previous list.
	if topics == nil {
		return nil, fmt.Errorf("%w: payload is not a topic array", ErrDecode)
	}

	for _, t := range topics {
		if t == nil {
			return nil, fmt.Errorf("%w: null topic record", ErrDecode)
		}
		for i, q := range t.Questions {
			key, err := strconv.Atoi(q.AnswerKey)
			if err != nil {
				return nil, fmt.Errorf("%w: topic %q question %d: answer key %q is not a number",
					ErrDecode, t.Title, i+1, q.AnswerKey)
			}
			if key < 1 || key > len(q.Answers) {
				return nil, fmt.Errorf("%w: topic %q question %d: answer key %d out of range [1, %d]",
					ErrDecode, t.Title, i+1, key, len(q.Answers))
			}
		}
		t.ID = uuid.NewString()
	}

	return topics, nil
}

// dialAddress builds the host:port form the reachability probe dials.
func dialAddress(u *url.URL) string {
	if u.Port() != "" {
		return u.Host
	}
	if u.Scheme == "https" {
		return net.JoinHostPort(u.Hostname(), "443")
	}
	return net.JoinHostPort(u.Hostname(), "80")
}
