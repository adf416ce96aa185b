// Package vacefron is a client for the vacefron.nl image generation API.
//
// Every image method builds the request URL, asks the API for it and
// returns an Image once the API has answered 200. Failures are returned as
// *Error (remote), *ValidationError (local) or *DecodeError, all of which
// work with errors.Is against ErrBadRequest, ErrNotFound,
// ErrInternalServerError and ErrHTTP.
//
//	c := vacefron.New()
//	defer c.Close()
//
//	img, err := c.ChangeMyMind(ctx, "Go is fun")
//	if err != nil {
//		return err
//	}
//	err = img.Save(ctx, "changemymind.png")
package vacefron

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the root of the public API.
const DefaultBaseURL = "https://vacefron.nl/api"

// Client calls the API endpoints. It is safe for concurrent use.
type Client struct {
	baseURL string
	session *Session
	logger  *slog.Logger
}

type options struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*options)

// WithBaseURL points the client at another API root.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

// WithHTTPClient makes the client borrow httpClient instead of creating its
// own. Close will not drop its idle connections.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) {
		o.httpClient = httpClient
	}
}

// WithTimeout sets the timeout of the client the session creates. It has
// no effect together with WithHTTPClient.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(userAgent string) Option {
	return func(o *options) {
		o.userAgent = userAgent
	}
}

// WithLogger sets the logger used for debug output. Defaults to
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New creates a client with its own session unless WithHTTPClient is used.
func New(opts ...Option) *Client {
	o := options{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	var session *Session
	if o.httpClient != nil {
		session = NewSession(o.httpClient)
	} else {
		session = NewSession(&http.Client{Timeout: o.timeout})
		session.owned = true
	}
	session.userAgent = o.userAgent

	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL: strings.TrimRight(o.baseURL, "/"),
		session: session,
		logger:  logger,
	}
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Session returns the session shared by the client and its images.
func (c *Client) Session() *Session {
	return c.session
}

// Close closes the session. It is safe to call more than once.
func (c *Client) Close() error {
	return c.session.Close()
}

// fetch requests url and returns an Image for it when the API answers 200.
func (c *Client) fetch(ctx context.Context, url string) (Image, error) {
	c.logger.Debug("Requesting image", "url", url)

	resp, err := c.session.get(ctx, url)
	if err != nil {
		return Image{}, err
	}

	validated, err := classify(url, resp)
	if err != nil {
		c.logger.Debug("Image request rejected", "url", url, "status", resp.StatusCode, "error", err)
		return Image{}, err
	}
	return Image{url: validated, session: c.session}, nil
}
