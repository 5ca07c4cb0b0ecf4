// Package sdk is the Go client for the Mesa restaurant management API.
//
// A Client bundles three cooperating pieces: the session store (identity and
// bearer token, optionally mirrored to durable storage), the tagged response
// cache that keeps list/detail/aggregate views consistent after mutations,
// and the HTTP transport that injects the token and turns a 401 into a
// terminal session reset.
package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is used when no server address is configured.
const DefaultBaseURL = "http://localhost:5001"

// Client talks to one Mesa API server on behalf of one session.
type Client struct {
	baseURL   string
	userAgent string

	store   SessionStore // in-memory, always present
	durable SessionStore // optional persistence across restarts

	httpPlain *http.Client // login/register: no token attached
	httpAuth  *http.Client // everything else: bearer + 401 interception

	cache    *Cache
	validate *validator.Validate
	limiter  *rate.Limiter
}

// Options configures Client construction.
type Options struct {
	HTTPClient   *http.Client
	SessionStore SessionStore
	DurableStore SessionStore
	RateLimit    rate.Limit
	UserAgent    string
}

// Option mutates Options.
type Option func(*Options)

// WithHTTPClient overrides the base HTTP client used for all requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *Options) { o.HTTPClient = hc }
}

// WithSessionStore replaces the in-memory session store.
func WithSessionStore(s SessionStore) Option {
	return func(o *Options) { o.SessionStore = s }
}

// WithDurableStore mirrors the session to s so it survives restarts. The
// stored session is rehydrated into memory during construction, before the
// first protected request.
func WithDurableStore(s SessionStore) Option {
	return func(o *Options) { o.DurableStore = s }
}

// WithRateLimit throttles outbound requests to the given rate.
func WithRateLimit(l rate.Limit) Option {
	return func(o *Options) { o.RateLimit = l }
}

// WithUserAgent sets the User-Agent header on every request.
func WithUserAgent(ua string) Option {
	return func(o *Options) { o.UserAgent = ua }
}

// New builds a Client for the API server at baseURL. An empty baseURL falls
// back to DefaultBaseURL.
func New(baseURL string, optFns ...Option) *Client {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.SessionStore == nil {
		opts.SessionStore = NewMemStore()
	}

	c := &Client{
		baseURL:   baseURL,
		userAgent: opts.UserAgent,
		store:     opts.SessionStore,
		durable:   opts.DurableStore,
		cache:     NewCache(),
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
	if opts.RateLimit > 0 {
		c.limiter = rate.NewLimiter(opts.RateLimit, 1)
	}

	base := opts.HTTPClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	plain := &requestTransport{client: c, next: base}
	c.httpPlain = &http.Client{
		Transport: plain,
		Timeout:   opts.HTTPClient.Timeout,
	}
	c.httpAuth = &http.Client{
		Transport: &reauthTransport{
			client: c,
			next:   &oauth2.Transport{Source: sessionTokenSource{c}, Base: plain},
		},
		Timeout: opts.HTTPClient.Timeout,
	}

	c.rehydrate()
	return c
}

// rehydrate loads the persisted session into memory before first use.
func (c *Client) rehydrate() {
	if c.durable == nil {
		return
	}
	sess, err := c.durable.Load()
	if err != nil || sess.Token == "" {
		return
	}
	_ = c.store.Save(sess)
}

// Cache exposes the client's tagged response cache, mainly for standing
// watches on aggregate views.
func (c *Client) Cache() *Cache { return c.cache }

// Session returns the current in-memory session.
func (c *Client) Session() Session {
	sess, err := c.store.Load()
	if err != nil {
		return Session{}
	}
	return sess
}

// CurrentUser returns the session user, bootstrapping it from the server
// when a token is present without an in-memory identity (e.g. right after a
// restart, where only the durable token survived).
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	sess := c.Session()
	if sess.User != nil {
		return sess.User, nil
	}
	if sess.Token == "" {
		return nil, fmt.Errorf("not logged in")
	}
	return c.Me(ctx)
}

// UpdateSessionUser replaces the session identity in place, keeping the
// current token. Used when an operation returns a fresher user than the
// session holds.
func (c *Client) UpdateSessionUser(u *User) error {
	sess := c.Session()
	if sess.Token == "" {
		return fmt.Errorf("not logged in")
	}
	return c.setCredentials(u, sess.Token)
}

// setCredentials records a login in memory and, when configured, durably.
func (c *Client) setCredentials(u *User, token string) error {
	sess := Session{User: u, Token: token}
	if err := c.store.Save(sess); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	if c.durable != nil {
		if err := c.durable.Save(sess); err != nil {
			return fmt.Errorf("persist session: %w", err)
		}
	}
	return nil
}

// resetSession clears both stores. Called on logout and on any 401.
func (c *Client) resetSession() {
	_ = c.store.Clear()
	if c.durable != nil {
		_ = c.durable.Clear()
	}
}

// sessionTokenSource feeds the oauth2 transport from the session store,
// falling back to the durable store when memory is momentarily empty.
type sessionTokenSource struct{ c *Client }

func (s sessionTokenSource) Token() (*oauth2.Token, error) {
	sess := s.c.Session()
	token := sess.Token
	if token == "" && s.c.durable != nil {
		if persisted, err := s.c.durable.Load(); err == nil {
			token = persisted.Token
		}
	}
	if token == "" {
		return nil, fmt.Errorf("no session token: %w", ErrSessionExpired)
	}
	return &oauth2.Token{AccessToken: token, TokenType: "Bearer"}, nil
}

// requestTransport applies the ambient request policy: rate limiting, a
// client-generated X-Request-ID, and the User-Agent header.
type requestTransport struct {
	client *Client
	next   http.RoundTripper
}

func (t *requestTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.client.limiter != nil {
		if err := t.client.limiter.Wait(req.Context()); err != nil {
			return nil, err
		}
	}
	req = req.Clone(req.Context())
	req.Header.Set("X-Request-ID", uuid.NewString())
	if t.client.userAgent != "" {
		req.Header.Set("User-Agent", t.client.userAgent)
	}
	return t.next.RoundTrip(req)
}

// reauthTransport watches protected responses for authentication failure.
// A 401 is terminal: the session is cleared in memory and on disk, and the
// caller gets the response back to turn into ErrSessionExpired. There is no
// retry and no token refresh.
type reauthTransport struct {
	client *Client
	next   http.RoundTripper
}

func (t *reauthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		t.client.resetSession()
	}
	return resp, nil
}

// do performs one JSON request/response round trip. Non-2xx responses are
// decoded into *APIError with the server message verbatim; a 401 wraps
// ErrSessionExpired instead.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any, authed bool) error {
	u, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return fmt.Errorf("build url: %w", err)
	}
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	hc := c.httpPlain
	if authed {
		hc = c.httpAuth
	}
	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.errorFromResponse(resp, authed)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) errorFromResponse(resp *http.Response, authed bool) error {
	msg := genericErrMessage
	var envelope struct {
		Message string `json:"message"`
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err == nil && json.Unmarshal(data, &envelope) == nil && envelope.Message != "" {
		msg = envelope.Message
	}
	// Only a rejected session token means the session expired. A 401 from
	// the unauthenticated paths (bad login credentials) is an ordinary API
	// error whose message must surface verbatim.
	if authed && resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%s: %w", msg, ErrSessionExpired)
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}

// get runs a cached, tagged GET. Typed wrappers go through here so every read
// participates in tag invalidation.
func get[T any](ctx context.Context, c *Client, path string, query url.Values, tags []Tag) (T, error) {
	key := cacheKey(path, query)
	v, err := c.cache.Query(ctx, key, tags, func(ctx context.Context) (any, error) {
		var out T
		if err := c.do(ctx, http.MethodGet, path, query, nil, &out, true); err != nil {
			return nil, err
		}
		return out, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// cacheKey serializes an endpoint and its arguments into the cache key.
func cacheKey(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}
