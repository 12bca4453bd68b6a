//go:build unit || e2e

package upstream

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// FakeGeocoder answers Google reverse-geocoding requests with a fixed list of
// postal codes, one result per code.
type FakeGeocoder struct {
	Server *httptest.Server

	mu     sync.Mutex
	status string
	codes  []string
	keys   []string
}

func NewFakeGeocoder(t *testing.T) *FakeGeocoder {
	t.Helper()

	f := &FakeGeocoder{status: "OK"}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Server.Close)
	return f
}

func (f *FakeGeocoder) SetPostalCodes(codes ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = "OK"
	f.codes = codes
}

// SetStatus makes every request answer with an API status such as ZERO_RESULTS.
func (f *FakeGeocoder) SetStatus(status string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = status
}

// Keys returns the API keys seen so far.
func (f *FakeGeocoder) Keys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.keys...)
}

func (f *FakeGeocoder) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = "OK"
	f.codes = nil
	f.keys = nil
}

func (f *FakeGeocoder) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.keys = append(f.keys, r.URL.Query().Get("key"))
	status, codes := f.status, f.codes
	f.mu.Unlock()

	type component struct {
		LongName  string   `json:"long_name"`
		ShortName string   `json:"short_name"`
		Types     []string `json:"types"`
	}
	type result struct {
		AddressComponents []component `json:"address_components"`
	}

	body := struct {
		Status       string   `json:"status"`
		ErrorMessage string   `json:"error_message,omitempty"`
		Results      []result `json:"results"`
	}{Status: status, Results: []result{}}

	if status == "OK" {
		for _, c := range codes {
			body.Results = append(body.Results, result{
				AddressComponents: []component{{LongName: c, ShortName: c, Types: []string{"postal_code"}}},
			})
		}
	} else {
		body.ErrorMessage = "fake geocoder status " + status
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}

// FakeScheduler serves next-available payloads keyed by location id.
// Unknown locations answer 404.
type FakeScheduler struct {
	Server *httptest.Server

	mu      sync.Mutex
	replies map[string]reply
	calls   []string
}

type reply struct {
	status int
	body   string
}

func NewFakeScheduler(t *testing.T) *FakeScheduler {
	t.Helper()

	f := &FakeScheduler{replies: map[string]reply{}}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Server.Close)
	return f
}

// Slots answers id with one slot per epoch. No epochs means an empty list.
func (f *FakeScheduler) Slots(id string, epochs ...int64) *FakeScheduler {
	slots := make([]map[string]int64, 0, len(epochs))
	for _, e := range epochs {
		slots = append(slots, map[string]int64{"epoch_time": e})
	}
	data, _ := json.Marshal(slots)
	return f.set(id, reply{status: http.StatusOK, body: string(data)})
}

func (f *FakeScheduler) Fail(id string, status int) *FakeScheduler {
	return f.set(id, reply{status: status, body: `{"error":"unavailable"}`})
}

func (f *FakeScheduler) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *FakeScheduler) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies = map[string]reply{}
	f.calls = nil
}

func (f *FakeScheduler) set(id string, r reply) *FakeScheduler {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies[id] = r
	return f
}

func (f *FakeScheduler) serve(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/")

	f.mu.Lock()
	f.calls = append(f.calls, id)
	rep, ok := f.replies[id]
	f.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rep.status)
	_, _ = w.Write([]byte(rep.body))
}
