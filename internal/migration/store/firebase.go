package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/donovanhide/eventsource"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/l2-migration-dashboard/internal/clock"
)

const (
	// DefaultRetryDelay is the pause between reconnect attempts.
	DefaultRetryDelay = 3 * time.Second

	eventPut         = "put"
	eventPatch       = "patch"
	eventKeepAlive   = "keep-alive"
	eventCancel      = "cancel"
	eventAuthRevoked = "auth_revoked"
)

var (
	// ErrMissingCredentials is returned when a backend is configured without its credentials.
	ErrMissingCredentials = errors.New("store: missing credentials")

	errStreamClosed = errors.New("stream closed")
)

// StatusError is returned when the database answers a stream request with a
// non-200 status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.Code)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

// CancelError is delivered when the database ends a stream for good, either
// because the security rules no longer allow reading the location or because
// the auth token was revoked.
type CancelError struct {
	Event  string
	Reason string
}

func (e *CancelError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("subscription %s", e.Event)
	}
	return fmt.Sprintf("subscription %s: %s", e.Event, e.Reason)
}

// FirebaseConfig holds the connection settings of a Firebase Realtime Database.
type FirebaseConfig struct {
	DatabaseURL string
	AuthToken   string
	RetryDelay  time.Duration
	HTTPClient  *http.Client
}

// FirebaseClient streams locations of a Firebase Realtime Database over its
// REST server-sent events API.
type FirebaseClient struct {
	baseURL    *url.URL
	authToken  string
	retryDelay time.Duration
	httpClient *http.Client
	logger     *zap.Logger
	sleep      func(ctx context.Context, d time.Duration) error
}

// NewFirebaseClient validates cfg and constructs a client.
func NewFirebaseClient(cfg FirebaseConfig, logger *zap.Logger) (*FirebaseClient, error) {
	if cfg.DatabaseURL == "" || cfg.AuthToken == "" {
		return nil, fmt.Errorf("firebase: %w", ErrMissingCredentials)
	}
	base, err := url.Parse(strings.TrimRight(cfg.DatabaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("parse database url: unsupported scheme %q", base.Scheme)
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FirebaseClient{
		baseURL:    base,
		authToken:  cfg.AuthToken,
		retryDelay: cfg.RetryDelay,
		httpClient: cfg.HTTPClient,
		logger:     logger.Named("firebase"),
		sleep:      clock.SleepWithContext,
	}, nil
}

// Subscribe streams the value at path until the subscription is closed or
// ctx is canceled.
func (c *FirebaseClient) Subscribe(ctx context.Context, path string, onData DataHandler, onError ErrorHandler) (Subscription, error) {
	if len(splitPath(path)) == 0 {
		return nil, fmt.Errorf("subscribe: empty path")
	}
	endpoint := c.endpoint(path)
	ctx, sub := newSubscription(ctx)
	go func() {
		defer close(sub.done)
		c.listen(ctx, endpoint, path, onData, onError)
	}()
	return sub, nil
}

func (c *FirebaseClient) endpoint(path string) string {
	u := *c.baseURL
	u.Path = u.Path + "/" + strings.Join(splitPath(path), "/") + ".json"
	q := u.Query()
	q.Set("auth", c.authToken)
	u.RawQuery = q.Encode()
	return u.String()
}

func (c *FirebaseClient) listen(ctx context.Context, endpoint, path string, onData DataHandler, onError ErrorHandler) {
	logger := c.logger.With(zap.String("path", path))
	for {
		err := c.stream(ctx, endpoint, path, onData)
		if ctx.Err() != nil {
			return
		}
		var cancelErr *CancelError
		switch {
		case errors.As(err, &cancelErr):
			logger.Warn("subscription canceled by server", zap.Error(err))
			onError(err)
			return
		case errors.Is(err, errStreamClosed):
			logger.Debug("stream closed, reconnecting", zap.Error(err))
		default:
			logger.Warn("stream failed", zap.Error(err), zap.Duration("retry_in", c.retryDelay))
			onError(err)
		}
		if err := c.sleep(ctx, c.retryDelay); err != nil {
			return
		}
	}
}

func (c *FirebaseClient) stream(ctx context.Context, endpoint, path string, onData DataHandler) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("connect %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("connect %s: %w", path, &StatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(body)),
		})
	}

	local := &tree{}
	dec := eventsource.NewDecoder(resp.Body)
	for {
		ev, err := dec.Decode()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return errStreamClosed
			}
			return fmt.Errorf("%w: %v", errStreamClosed, err)
		}

		switch ev.Event() {
		case eventPut:
			err = local.put([]byte(ev.Data()))
		case eventPatch:
			err = local.patch([]byte(ev.Data()))
		case eventKeepAlive:
			continue
		case eventCancel, eventAuthRevoked:
			return &CancelError{Event: ev.Event(), Reason: cancelReason(ev.Data())}
		default:
			c.logger.Debug("ignoring event", zap.String("event", ev.Event()))
			continue
		}
		if err != nil {
			return fmt.Errorf("apply %s event on %s: %w", ev.Event(), path, err)
		}

		snapshot, err := local.snapshot(path)
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		onData(snapshot)
	}
}

func cancelReason(data string) string {
	var reason string
	if err := json.Unmarshal([]byte(data), &reason); err == nil {
		return reason
	}
	if data == "null" {
		return ""
	}
	return data
}
