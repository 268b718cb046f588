package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdnscreen/pkg/platform/sentinel"
)

func newTestFetcher(srv *httptest.Server) *Fetcher {
	return NewFetcher(srv.Client(), discardLogger(),
		WithInitialInterval(time.Millisecond),
		WithMaxElapsed(2*time.Second),
	)
}

func TestArchiveName(t *testing.T) {
	assert.Equal(t, "sdn_xml.zip", ArchiveName(DefaultURL))
	assert.Equal(t, "sdn.xml.zip", ArchiveName("sdn.xml.zip"))
	assert.Equal(t, "list.zip", ArchiveName("http://example.test/a/list.zip?x=1"))
}

func TestFetch_WritesArchive(t *testing.T) {
	payload := zipOf(t, map[string]string{"sdn.xml": sampleDoc})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	dir := t.TempDir()
	got, err := newTestFetcher(srv).Fetch(context.Background(), srv.URL+"/sdn.xml.zip", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sdn.xml.zip"), got)

	written, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Equal(t, payload, written)
}

func TestFetch_RetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("zip"))
	}))
	defer srv.Close()

	_, err := newTestFetcher(srv).Fetch(context.Background(), srv.URL+"/sdn.xml.zip", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestFetch_NotFoundIsPermanent(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	dir := t.TempDir()
	_, err := newTestFetcher(srv).Fetch(context.Background(), srv.URL+"/missing.zip", dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
	assert.Equal(t, int32(1), calls.Load())

	_, statErr := os.Stat(filepath.Join(dir, "missing.zip"))
	assert.True(t, os.IsNotExist(statErr), "no file is left behind")
}

func TestFetch_GivesUpWhenCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newTestFetcher(srv).Fetch(ctx, srv.URL+"/sdn.xml.zip", t.TempDir())
	require.Error(t, err)
}
