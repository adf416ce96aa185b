package vacefron

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"
)

// DefaultTimeout is applied to sessions the client creates itself.
const DefaultTimeout = 30 * time.Second

// Session is the HTTP connection pool shared by a Client and every Image it
// returns. It is safe for concurrent use until Close is called.
type Session struct {
	httpClient *http.Client
	userAgent  string
	owned      bool
	closed     atomic.Bool
}

// NewSession wraps httpClient. A nil httpClient gets a private client with
// DefaultTimeout, which Close fully releases.
func NewSession(httpClient *http.Client) *Session {
	if httpClient == nil {
		return &Session{
			httpClient: &http.Client{Timeout: DefaultTimeout},
			owned:      true,
		}
	}
	return &Session{httpClient: httpClient}
}

// HTTPClient returns the underlying client.
func (s *Session) HTTPClient() *http.Client {
	return s.httpClient
}

// Closed reports whether Close has been called.
func (s *Session) Closed() bool {
	return s.closed.Load()
}

// Close marks the session closed. Idle connections are dropped only when
// the session created its own client; a borrowed client is left to its
// owner. Calling Close more than once is a no-op.
func (s *Session) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	if s.owned {
		s.httpClient.CloseIdleConnections()
	}
	return nil
}

// get issues a GET request for url. Bytes that cannot appear in a request
// line are percent-encoded on the way out; url itself is not changed. The
// caller owns the response body.
func (s *Session) get(ctx context.Context, url string) (*http.Response, error) {
	if s.Closed() {
		return nil, ErrSessionClosed
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requote(url), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create new request: %w", err)
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}
