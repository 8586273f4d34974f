// Package testutil provides testing utilities for the bookmeta resolver.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"time"
)

// MockResponse defines the behavior for one mocked ISBN lookup.
type MockResponse struct {
	StatusCode int
	Body       string
	Delay      time.Duration
}

// MockUpstream is a configurable mock of the bibliographic search API.
// Responses are keyed by the isbn query parameter; unknown ISBNs get an
// empty (not-found) result set.
type MockUpstream struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]http.HandlerFunc

	// Tracking
	RequestCount int
	requests     map[string]int
	LastQuery    url.Values
}

// NewMockUpstream creates a running mock server.
func NewMockUpstream() *MockUpstream {
	mock := &MockUpstream{
		handlers: make(map[string]http.HandlerFunc),
		requests: make(map[string]int),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("isbn")

		mock.mu.Lock()
		mock.RequestCount++
		mock.requests[id]++
		mock.LastQuery = r.URL.Query()
		handler, exists := mock.handlers[id]
		mock.mu.Unlock()

		if exists {
			handler(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, NotFoundBody())
	}))

	return mock
}

// URL returns the mock server URL.
func (m *MockUpstream) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockUpstream) Close() {
	m.server.Close()
}

// Requests returns how many lookups were made for an ISBN.
func (m *MockUpstream) Requests(id string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.requests[id]
}

// SetHandler installs a custom handler for an ISBN.
func (m *MockUpstream) SetHandler(id string, handler http.HandlerFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[id] = handler
}

// SetResponse installs a fixed response for an ISBN.
func (m *MockUpstream) SetResponse(id string, resp MockResponse) {
	m.SetHandler(id, func(w http.ResponseWriter, r *http.Request) {
		if resp.Delay > 0 {
			time.Sleep(resp.Delay)
		}
		w.Header().Set("Content-Type", "application/json")
		if resp.StatusCode != 0 {
			w.WriteHeader(resp.StatusCode)
		}
		fmt.Fprint(w, resp.Body)
	})
}

// SetDoc installs a single-document success response for an ISBN.
func (m *MockUpstream) SetDoc(id, title, author, publisher, publishPredate string) {
	m.SetResponse(id, MockResponse{Body: DocBody(title, author, publisher, publishPredate)})
}

// FailTimes makes the first n lookups for an ISBN return status, then
// serves body. Useful for retry tests.
func (m *MockUpstream) FailTimes(id string, n, status int, body string) {
	var mu sync.Mutex
	failures := 0
	m.SetHandler(id, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		failures++
		failed := failures <= n
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if failed {
			w.WriteHeader(status)
			fmt.Fprint(w, `{"error":"upstream unavailable"}`)
			return
		}
		fmt.Fprint(w, body)
	})
}

// DocBody builds a single-document search response body.
func DocBody(title, author, publisher, publishPredate string) string {
	return fmt.Sprintf(
		`{"TOTAL_COUNT":"1","PAGE_NO":"1","docs":[{"TITLE":%q,"AUTHOR":%q,"PUBLISHER":%q,"PUBLISH_PREDATE":%q}]}`,
		title, author, publisher, publishPredate)
}

// NotFoundBody builds an empty search response body.
func NotFoundBody() string {
	return `{"TOTAL_COUNT":"0","PAGE_NO":"1","docs":[]}`
}
