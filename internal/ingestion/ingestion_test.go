package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromText_Normalizes(t *testing.T) {
	text, err := FromText("  Looking for\t\tGo engineers\n\n\n\nRemote  ")

	require.NoError(t, err)
	assert.Equal(t, "Looking for Go engineers\n\nRemote", text)
}

func TestFromText_Empty(t *testing.T) {
	_, err := FromText("   \n\n  ")
	assert.ErrorIs(t, err, ErrEmptyJobDescription)
}

func TestFromText_IdempotentOnCleanText(t *testing.T) {
	clean := "Looking for Go engineers\n\nRemote"

	once, err := FromText(clean)
	require.NoError(t, err)
	assert.Equal(t, clean, once)
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jd.txt")
	require.NoError(t, os.WriteFile(path, []byte("Python   and SQL required"), 0644))

	text, err := FromFile(path)

	require.NoError(t, err)
	assert.Equal(t, "Python and SQL required", text)
}

func TestFromFile_Missing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestFromURL_ExtractsPostingText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><nav>menu</nav><main><p>Hiring Go and Kubernetes engineers.</p></main></body></html>`))
	}))
	defer srv.Close()

	text, err := FromURL(context.Background(), srv.URL, Options{})

	require.NoError(t, err)
	assert.Contains(t, text, "Go and Kubernetes")
	assert.NotContains(t, text, "menu")
}

func TestFromURL_FetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := FromURL(context.Background(), srv.URL, Options{})
	assert.Error(t, err)
}

func TestFromURL_EmptyPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body></body></html>`))
	}))
	defer srv.Close()

	_, err := FromURL(context.Background(), srv.URL, Options{})
	assert.ErrorIs(t, err, ErrEmptyJobDescription)
}
