package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/mhpportal/internal/client/session"
	"github.com/dmitrijs2005/mhpportal/internal/logging"
	"github.com/google/uuid"
)

const (
	HeaderAuthorization = "Authorization"
	HeaderRequestID     = "X-Request-ID"
)

type anonymousKey struct{}

// anonymous marks a request that must go out without the stored credential.
func anonymous(ctx context.Context) context.Context {
	return context.WithValue(ctx, anonymousKey{}, true)
}

func isAnonymous(ctx context.Context) bool {
	v, _ := ctx.Value(anonymousKey{}).(bool)
	return v
}

// authTransport attaches the stored credential and a request id to every
// outgoing request, except those marked anonymous. It never retries.
type authTransport struct {
	base  http.RoundTripper
	store session.Store
	log   logging.Logger
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	var token string
	if !isAnonymous(ctx) {
		var err error
		if token, err = t.store.Get(ctx); err != nil {
			return nil, fmt.Errorf("read credential: %w", err)
		}
	}

	r := req.Clone(ctx)
	if token != "" {
		r.Header.Set(HeaderAuthorization, "Bearer "+token)
	}
	if r.Header.Get(HeaderRequestID) == "" {
		r.Header.Set(HeaderRequestID, uuid.NewString())
	}

	resp, err := t.base.RoundTrip(r)
	if err != nil {
		t.log.Debug(ctx, "request failed", "method", r.Method, "path", r.URL.Path, "request_id", r.Header.Get(HeaderRequestID), "err", err)
		return nil, err
	}
	t.log.Debug(ctx, "request done", "method", r.Method, "path", r.URL.Path, "request_id", r.Header.Get(HeaderRequestID), "status", resp.StatusCode)
	return resp, nil
}
