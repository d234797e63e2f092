package commands

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"StationAdmin/internal/routepath"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_Run(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, routepath.APIUserLogin, r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		var body credentialsRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body.Password != "secret" {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "auth_token", Value: "tok-123"})
		_, _ = w.Write([]byte(`{"result":"ok"}`))
	}))
	defer ts.Close()

	cfg := withTempConfig(t, ts.URL)

	t.Run("success stores token", func(t *testing.T) {
		out := withStdoutCapture(t, func() {
			require.NoError(t, (loginCmd{}).Run(context.Background(), cfg, []string{"alice", "secret"}))
		})
		assert.Contains(t, out, "Logged in")
		assert.Equal(t, "tok-123", readToken(t, cfg))
	})

	t.Run("bad credentials", func(t *testing.T) {
		err := (loginCmd{}).Run(context.Background(), cfg, []string{"alice", "wrong"})
		assert.EqualError(t, err, "invalid login or password")
	})

	t.Run("too few args", func(t *testing.T) {
		assert.ErrorIs(t, (loginCmd{}).Run(context.Background(), cfg, []string{"alice"}), ErrUsage)
	})

	t.Run("server error", func(t *testing.T) {
		ts500 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer ts500.Close()
		err := (loginCmd{}).Run(context.Background(), withTempConfig(t, ts500.URL), []string{"a", "b"})
		assert.EqualError(t, err, "server error: boom")
	})

	t.Run("ok without cookie", func(t *testing.T) {
		tsNoCookie := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"result":"ok"}`))
		}))
		defer tsNoCookie.Close()
		err := (loginCmd{}).Run(context.Background(), withTempConfig(t, tsNoCookie.URL), []string{"a", "b"})
		assert.ErrorContains(t, err, "saving auth")
	})
}

func TestRegister_Run(t *testing.T) {
	taken := map[string]bool{"bob": true}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, routepath.APIUserRegister, r.URL.Path)
		var body credentialsRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if taken[body.Login] {
			http.Error(w, "login already taken", http.StatusConflict)
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "auth_token", Value: "reg-" + body.Login})
		_, _ = w.Write([]byte(`{"result":"ok"}`))
	}))
	defer ts.Close()

	cfg := withTempConfig(t, ts.URL)

	out := withStdoutCapture(t, func() {
		require.NoError(t, (registerCmd{}).Run(context.Background(), cfg, []string{"alice", "pw"}))
	})
	assert.Contains(t, out, "Registered")
	assert.Equal(t, "reg-alice", readToken(t, cfg))

	assert.EqualError(t, (registerCmd{}).Run(context.Background(), cfg, []string{"bob", "pw"}), "login already in use")
	assert.ErrorIs(t, (registerCmd{}).Run(context.Background(), cfg, nil), ErrUsage)
}

func TestStatus_Run(t *testing.T) {
	var gotCookie string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, routepath.APIUserStatus, r.URL.Path)
		gotCookie = ""
		if c, err := r.Cookie("auth_token"); err == nil {
			gotCookie = c.Value
		}
		_, _ = w.Write([]byte(`{"result":"User ID = 7"}`))
	}))
	defer ts.Close()

	cfg := withTempConfig(t, ts.URL)
	require.NoError(t, os.WriteFile(cfg.TokenFile, []byte("tok-7\n"), 0o600))

	out := withStdoutCapture(t, func() {
		require.NoError(t, (statusCmd{}).Run(context.Background(), cfg, nil))
	})
	assert.Equal(t, "Status: User ID = 7\n", out)
	assert.Equal(t, "tok-7", gotCookie)

	assert.ErrorIs(t, (statusCmd{}).Run(context.Background(), cfg, []string{"extra"}), ErrUsage)

	tsBad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{"))
	}))
	defer tsBad.Close()
	assert.ErrorContains(t, (statusCmd{}).Run(context.Background(), withTempConfig(t, tsBad.URL), nil), "decode")

	ts500 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts500.Close()
	assert.ErrorContains(t, (statusCmd{}).Run(context.Background(), withTempConfig(t, ts500.URL), nil), "server status 500")
}

func TestProbe_Run_PrintsRawJSON(t *testing.T) {
	const body = `{"data":null,"error":{"message":"no data source configured"}}`
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, routepath.APITestDB, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body + "\n"))
	}))
	defer ts.Close()

	cfg := withTempConfig(t, ts.URL)
	out := withStdoutCapture(t, func() {
		require.NoError(t, (probeCmd{}).Run(context.Background(), cfg, nil))
	})
	assert.Equal(t, body+"\n", out)
	assert.ErrorIs(t, (probeCmd{}).Run(context.Background(), cfg, []string{"x"}), ErrUsage)
}

func TestLogout_Run(t *testing.T) {
	t.Run("server acknowledges", func(t *testing.T) {
		var calls int
		var gotCookie string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			assert.Equal(t, routepath.APILogout, r.URL.Path)
			if c, err := r.Cookie("auth_token"); err == nil {
				gotCookie = c.Value
			}
			w.WriteHeader(http.StatusNoContent)
		}))
		defer ts.Close()

		cfg := withTempConfig(t, ts.URL)
		require.NoError(t, os.WriteFile(cfg.TokenFile, []byte("tok-1"), 0o600))

		out := withStdoutCapture(t, func() {
			require.NoError(t, (logoutCmd{}).Run(context.Background(), cfg, nil))
		})
		assert.Equal(t, 1, calls)
		assert.Equal(t, "tok-1", gotCookie)
		assert.Equal(t, "Logged out. Sign in again at "+ts.URL+routepath.Login+"\n", out)
		_, err := os.Stat(cfg.TokenFile)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("server failure still navigates", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer ts.Close()

		cfg := withTempConfig(t, ts.URL)
		out := withStdoutCapture(t, func() {
			require.NoError(t, (logoutCmd{}).Run(context.Background(), cfg, nil))
		})
		assert.Contains(t, out, routepath.Login)
	})

	t.Run("unreachable server", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		url := ts.URL
		ts.Close()

		cfg := withTempConfig(t, url)
		out := withStdoutCapture(t, func() {
			require.NoError(t, (logoutCmd{}).Run(context.Background(), cfg, nil))
		})
		assert.Contains(t, out, "Logged out.")
	})

	t.Run("extra args", func(t *testing.T) {
		assert.ErrorIs(t, (logoutCmd{}).Run(context.Background(), withTempConfig(t, "http://127.0.0.1:1"), []string{"now"}), ErrUsage)
	})
}
