package agentloop_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/Sudip-8345/OmniBook-AI/internal/agentloop"
	"github.com/Sudip-8345/OmniBook-AI/internal/bookingdb"
	"github.com/Sudip-8345/OmniBook-AI/internal/catalog"
	"github.com/Sudip-8345/OmniBook-AI/internal/notify"
	"github.com/Sudip-8345/OmniBook-AI/internal/provider"
	"github.com/Sudip-8345/OmniBook-AI/tools"
)

const sampleTickets = `{
 "flights": [
  {"id": "FL001", "origin": "New York", "destination": "Los Angeles", "date": "2026-03-05", "time": "09:30", "price": 4500},
  {"id": "FL002", "origin": "New York", "destination": "Los Angeles", "date": "2026-03-06", "time": "18:45", "price": 5200}
 ],
 "trains": [],
 "movies": []
}`

type capture struct {
	method string
	url    string
	body   []byte
}

// scriptedTransport serves a fixed sequence of API responses, one per model
// invocation, repeating the last one if the loop asks for more.
type scriptedTransport struct {
	mu        sync.Mutex
	responses [][]byte
	calls     int
	captured  []capture
}

func (f *scriptedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	b, _ := io.ReadAll(req.Body)
	_ = req.Body.Close()

	f.mu.Lock()
	f.captured = append(f.captured, capture{method: req.Method, url: req.URL.String(), body: b})
	i := f.calls
	if i >= len(f.responses) {
		i = len(f.responses) - 1
	}
	body := f.responses[i]
	f.calls++
	f.mu.Unlock()

	resp := &http.Response{
		StatusCode: 200,
		Body:       io.NopCloser(bytes.NewReader(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp, nil
}

func (f *scriptedTransport) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newClientWithTransport(rt http.RoundTripper) *anthropic.Client {
	c := anthropic.NewClient(
		option.WithHTTPClient(&http.Client{Transport: rt}),
		option.WithAPIKey("test-key"),
	)
	return &c
}

// failingTransport errors on every request, simulating an unreachable
// provider.
type failingTransport struct{}

func (failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, io.ErrUnexpectedEOF
}

// testRegistry wires the booking tools against throwaway fixtures.
func testRegistry(t *testing.T) []tools.ToolDefinition {
	t.Helper()
	dir := t.TempDir()
	ticketsPath := filepath.Join(dir, "tickets.json")
	if err := os.WriteFile(ticketsPath, []byte(sampleTickets), 0o644); err != nil {
		t.Fatalf("prep tickets: %v", err)
	}
	store, err := bookingdb.Open(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	mailer := notify.New("smtp.example.com:587", "", "")
	return tools.Registry(catalog.New(ticketsPath), store, mailer)
}

func newTestRunner(t *testing.T, responses ...string) (*agentloop.Runner, *scriptedTransport) {
	t.Helper()
	fake := &scriptedTransport{}
	for _, r := range responses {
		fake.responses = append(fake.responses, []byte(r))
	}
	r := agentloop.New(newClientWithTransport(fake), provider.DefaultModel, testRegistry(t))
	return r, fake
}

// Canned model responses.

func textResponse(text string) string {
	return `{"role":"assistant","content":[{"type":"text","text":` + jsonString(text) + `}]}`
}

func toolUseResponse(id, name, input string) string {
	return `{"role":"assistant","content":[{"type":"tool_use","id":"` + id + `","name":"` + name + `","input":` + input + `}]}`
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
