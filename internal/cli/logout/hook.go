// Package logout implements the client side of signing out: one best-effort
// call to the server followed by an unconditional move to the login page.
package logout

import (
	"context"
	"io"
	"net/http"
	"strings"

	"StationAdmin/internal/routepath"
)

// Navigator moves the client to a path on the server.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

// Doer sends HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Outcome is how the logout call settled. Logout never inspects it.
type Outcome struct {
	StatusCode int
	Err        error
}

// Discard drops the outcome. Server acknowledgement and network failure
// lead to the same navigation.
func (Outcome) Discard() {}

// Hook performs logout for one client.
type Hook struct {
	endpoint string
	token    string
	client   Doer
	nav      Navigator
}

// Option configures a Hook.
type Option func(*Hook)

// WithToken sends the auth cookie with the logout call.
func WithToken(token string) Option {
	return func(h *Hook) { h.token = token }
}

// New builds a hook for the server at baseURL. client should carry its own timeout.
func New(baseURL string, client Doer, nav Navigator, opts ...Option) *Hook {
	h := &Hook{
		endpoint: strings.TrimRight(baseURL, "/") + routepath.APILogout,
		client:   client,
		nav:      nav,
	}
	for _, o := range opts {
		o(h)
	}
	return h
}

// Logout posts to the logout endpoint, waits for the call to settle, then
// navigates to the login page exactly once. Caller cancellation does not
// abort the call.
func (h *Hook) Logout(ctx context.Context) {
	h.call(context.WithoutCancel(ctx)).Discard()
	h.nav.Navigate(routepath.Login)
}

func (h *Hook) call(ctx context.Context) Outcome {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, nil)
	if err != nil {
		return Outcome{Err: err}
	}
	if h.token != "" {
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: h.token})
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return Outcome{Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return Outcome{StatusCode: resp.StatusCode}
}
