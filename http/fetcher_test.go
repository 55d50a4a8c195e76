package http_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	notes "github.com/nandkishor-kumawat/notes-summarizer-mcp"
	noteshttp "github.com/nandkishor-kumawat/notes-summarizer-mcp/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns HTML for a text/html response", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			fmt.Fprint(w, "<html><body>hello</body></html>")
		}))
		defer srv.Close()

		f := noteshttp.NewFetcher()
		defer f.Close()

		result, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Contains(t, result.HTML, "hello")
		assert.Equal(t, srv.URL, result.FinalURL)
	})

	t.Run("rejects non-HTML content types", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/pdf")
			fmt.Fprint(w, "%PDF-1.4")
		}))
		defer srv.Close()

		f := noteshttp.NewFetcher()
		defer f.Close()

		result, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, notes.EUNSUPPORTED, notes.ErrorCode(err))
	})

	t.Run("rejects responses over the byte cap", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			fmt.Fprint(w, "<html>", strings.Repeat("x", 4096), "</html>")
		}))
		defer srv.Close()

		f := noteshttp.NewFetcher(noteshttp.WithMaxBytes(1024))
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Equal(t, notes.ETOOLARGE, notes.ErrorCode(err))
	})

	t.Run("accepts a body exactly at the byte cap", func(t *testing.T) {
		t.Parallel()

		body := strings.Repeat("y", 512)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			fmt.Fprint(w, body)
		}))
		defer srv.Close()

		f := noteshttp.NewFetcher(noteshttp.WithMaxBytes(512))
		defer f.Close()

		result, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, body, result.HTML)
	})

	t.Run("fails with redirect error past the hop limit", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/loop", http.StatusFound)
		}))
		defer srv.Close()

		f := noteshttp.NewFetcher(noteshttp.WithMaxRedirects(3))
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Equal(t, notes.EREDIRECT, notes.ErrorCode(err))
	})

	t.Run("follows redirects within the hop limit", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/start", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/end", http.StatusMovedPermanently)
		})
		mux.HandleFunc("/end", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			fmt.Fprint(w, "<html>done</html>")
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		f := noteshttp.NewFetcher()
		defer f.Close()

		result, err := f.Fetch(context.Background(), srv.URL+"/start")

		require.NoError(t, err)
		assert.Equal(t, srv.URL+"/end", result.FinalURL)
	})

	t.Run("fails with timeout error past the deadline", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			w.Header().Set("Content-Type", "text/html")
			fmt.Fprint(w, "<html>late</html>")
		}))
		defer srv.Close()

		f := noteshttp.NewFetcher(noteshttp.WithTimeout(20 * time.Millisecond))
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Equal(t, notes.ETIMEOUT, notes.ErrorCode(err))
	})

	t.Run("fails with fetch error on HTTP error status", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "not found", http.StatusNotFound)
		}))
		defer srv.Close()

		f := noteshttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Equal(t, notes.EFETCH, notes.ErrorCode(err))
	})

	t.Run("fails with fetch error when the host is unreachable", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // connection refused from here on

		f := noteshttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Equal(t, notes.EFETCH, notes.ErrorCode(err))
	})

	t.Run("rejects invalid URLs", func(t *testing.T) {
		t.Parallel()

		f := noteshttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), "http://\x00invalid")

		require.Error(t, err)
		assert.Equal(t, notes.EINVALID, notes.ErrorCode(err))
	})
}
