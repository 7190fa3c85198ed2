package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const target = "https://sarafi.af/fa/exchange-rates/sarai-shahzada"

func TestAllOriginsProvider_FetchPage(t *testing.T) {
	t.Run("returns contents", func(t *testing.T) {
		var gotURL string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotURL = r.URL.Query().Get("url")
			assert.Equal(t, "/get", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"contents":"<table><tr><td>دالر</td></tr></table>","status":{"http_code":200}}`))
		}))
		defer srv.Close()

		p := NewAllOriginsProvider(srv.URL+"/", target, 5)
		page, err := p.FetchPage(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "<table><tr><td>دالر</td></tr></table>", page)
		assert.Equal(t, target, gotURL)
	})

	tests := []struct {
		name   string
		status int
		body   string
		errIs  error
	}{
		{"missing contents", http.StatusOK, `{"status":{}}`, ErrNoContents},
		{"null contents", http.StatusOK, `{"contents":null}`, ErrNoContents},
		{"empty contents", http.StatusOK, `{"contents":""}`, ErrNoContents},
		{"not json", http.StatusOK, `<html>rate limited</html>`, nil},
		{"bad status", http.StatusBadGateway, `upstream down`, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := NewAllOriginsProvider(srv.URL, target, 5).FetchPage(context.Background())

			require.Error(t, err)
			if tc.errIs != nil {
				assert.True(t, errors.Is(err, tc.errIs), "got %v", err)
			}
		})
	}

	t.Run("network failure", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		addr := srv.URL
		srv.Close()

		_, err := NewAllOriginsProvider(addr, target, 1).FetchPage(context.Background())
		assert.Error(t, err)
	})

	t.Run("timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(3 * time.Second):
			}
		}))
		defer srv.Close()

		_, err := NewAllOriginsProvider(srv.URL, target, 1).FetchPage(context.Background())
		assert.Error(t, err)
	})
}

func TestAllOriginsProvider_RequestURL(t *testing.T) {
	p := NewAllOriginsProvider("", target, 5)
	assert.Equal(t,
		"https://api.allorigins.win/get?url=https%3A%2F%2Fsarafi.af%2Ffa%2Fexchange-rates%2Fsarai-shahzada",
		p.requestURL())
}

func TestDirectProvider_FetchPage(t *testing.T) {
	t.Run("returns body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<table></table>"))
		}))
		defer srv.Close()

		page, err := NewDirectProvider(srv.URL, 5).FetchPage(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "<table></table>", page)
	})

	t.Run("empty body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer srv.Close()

		_, err := NewDirectProvider(srv.URL, 5).FetchPage(context.Background())
		assert.ErrorIs(t, err, ErrNoContents)
	})

	t.Run("bad status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		_, err := NewDirectProvider(srv.URL, 5).FetchPage(context.Background())
		assert.Error(t, err)
	})
}

func TestNew(t *testing.T) {
	p, err := New(Options{Mode: ModeProxy, TargetURL: target, TimeoutSec: 5})
	require.NoError(t, err)
	assert.IsType(t, &AllOriginsProvider{}, p)

	p, err = New(Options{Mode: ModeDirect, TargetURL: target, TimeoutSec: 5})
	require.NoError(t, err)
	assert.IsType(t, &DirectProvider{}, p)

	_, err = New(Options{Mode: "carrier-pigeon"})
	assert.Error(t, err)
}
