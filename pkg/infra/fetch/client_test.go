package fetch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/WietRob/ai-router-system/pkg/infra/fetch"
	"github.com/m-mizutani/gt"
)

func TestClient_Fetch(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		switch r.URL.Path {
		case "/scripts/smart_router.py":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("#!/usr/bin/env python3\nprint('router')\n"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	ctx := context.Background()

	t.Run("downloads the response body", func(t *testing.T) {
		client := fetch.New()

		data, err := client.Fetch(ctx, server.URL+"/scripts/smart_router.py")
		gt.NoError(t, err)
		gt.String(t, string(data)).Contains("print('router')")
		gt.Equal(t, gotUserAgent, "ai-router-bootstrap")
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		client := fetch.New()

		data, err := client.Fetch(ctx, server.URL+"/scripts/missing.py")
		gt.Error(t, err)
		gt.Value(t, data).Nil()
		gt.String(t, err.Error()).Contains("unexpected status code")
	})

	t.Run("custom user agent", func(t *testing.T) {
		client := fetch.New(fetch.WithUserAgent("custom-agent"))

		_, err := client.Fetch(ctx, server.URL+"/scripts/smart_router.py")
		gt.NoError(t, err)
		gt.Equal(t, gotUserAgent, "custom-agent")
	})

	t.Run("cancelled context aborts the request", func(t *testing.T) {
		client := fetch.New()

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := client.Fetch(cancelled, server.URL+"/scripts/smart_router.py")
		gt.Error(t, err)
	})
}

func TestClient_Fetch_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := fetch.New(fetch.WithTimeout(10 * time.Millisecond))

	_, err := client.Fetch(context.Background(), server.URL)
	gt.Error(t, err)
}
