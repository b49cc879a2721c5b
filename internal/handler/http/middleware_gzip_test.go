// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write(data)
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	return &buf
}

func gunzip(t *testing.T, r io.Reader) string {
	t.Helper()
	gz, err := gzip.NewReader(r)
	require.NoError(t, err)
	defer gz.Close()
	data, err := io.ReadAll(gz)
	require.NoError(t, err)
	return string(data)
}

func echoHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("X-Content-Encoding-Seen", r.Header.Get("Content-Encoding"))
		_, _ = w.Write(append([]byte("echo:"), body...))
	})
}

func TestGZip(t *testing.T) {
	payload := `{"user_id":"u1","flashcard_ids":[1,2,3]}`

	tests := []struct {
		name            string
		acceptEncoding  string
		contentEncoding string
		compressBody    bool
		wantStatus      int
		wantGzipped     bool
	}{
		{name: "plain in plain out", wantStatus: http.StatusOK},
		{name: "plain in gzip out", acceptEncoding: "gzip", wantStatus: http.StatusOK, wantGzipped: true},
		{name: "accept list with quality values", acceptEncoding: "deflate, gzip;q=1.0, br", wantStatus: http.StatusOK, wantGzipped: true},
		{name: "gzip in plain out", contentEncoding: "gzip", compressBody: true, wantStatus: http.StatusOK},
		{name: "gzip in gzip out", acceptEncoding: "gzip", contentEncoding: "gzip", compressBody: true, wantStatus: http.StatusOK, wantGzipped: true},
		{name: "invalid gzip body", contentEncoding: "gzip", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body io.Reader = strings.NewReader(payload)
			if tt.compressBody {
				body = gzipBytes(t, []byte(payload))
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/flashcards/sync", body)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}
			rr := httptest.NewRecorder()

			withGZip(echoHandler()).ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}
			assert.Empty(t, rr.Header().Get("X-Content-Encoding-Seen"))

			if tt.wantGzipped {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Contains(t, rr.Header().Values("Vary"), "Accept-Encoding")
				assert.Equal(t, "echo:"+payload, gunzip(t, rr.Body))
				return
			}
			assert.Empty(t, rr.Header().Get("Content-Encoding"))
			assert.Equal(t, "echo:"+payload, rr.Body.String())
		})
	}
}

func TestGZip_DropsContentLength(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "5")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("hello"))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/flashcards/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Length"))
	assert.Equal(t, "hello", gunzip(t, rr.Body))
}

func TestGZip_CompressesRepetitiveBody(t *testing.T) {
	data := strings.Repeat(`{"front":"What is Go?","back":"A language"},`, 500)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(data))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/flashcards/pending/u1", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Less(t, rr.Body.Len(), len(data)/10)
	assert.Equal(t, data, gunzip(t, rr.Body))
}

func TestGZip_ConcurrentPoolUse(t *testing.T) {
	handler := withGZip(echoHandler())

	wants := make([]string, 32)
	bodies := make([]*bytes.Buffer, len(wants))
	for i := range wants {
		wants[i] = strings.Repeat(string(rune('a'+i%26)), 64)
		bodies[i] = gzipBytes(t, []byte(wants[i]))
	}

	var wg sync.WaitGroup
	for i := range wants {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			want := wants[i]

			req := httptest.NewRequest(http.MethodPost, "/", bodies[i])
			req.Header.Set("Content-Encoding", "gzip")
			req.Header.Set("Accept-Encoding", "gzip")
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			gz, err := gzip.NewReader(rr.Body)
			if !assert.NoError(t, err) {
				return
			}
			got, err := io.ReadAll(gz)
			assert.NoError(t, err)
			assert.Equal(t, "echo:"+want, string(got))
		}(i)
	}
	wg.Wait()
}

func TestPooledGzipReader_CloseTwice(t *testing.T) {
	gz, err := gzip.NewReader(gzipBytes(t, []byte("x")))
	require.NoError(t, err)

	reader := &pooledGzipReader{Reader: gz}
	assert.NoError(t, reader.Close())
	assert.NoError(t, reader.Close())
	assert.True(t, reader.closed)
}
