package tools_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Sudip-8345/OmniBook-AI/internal/bookingdb"
	"github.com/Sudip-8345/OmniBook-AI/internal/catalog"
	"github.com/Sudip-8345/OmniBook-AI/internal/notify"
	"github.com/Sudip-8345/OmniBook-AI/tools"
)

const sampleTickets = `{
 "flights": [
  {"id": "FL001", "origin": "New York", "destination": "Los Angeles", "date": "2026-03-05", "time": "09:30", "price": 4500},
  {"id": "FL002", "origin": "New York", "destination": "Los Angeles", "date": "2026-03-06", "time": "18:45", "price": 5200},
  {"id": "FL003", "origin": "Mumbai", "destination": "Delhi", "date": "2026-03-05", "time": "06:10", "price": 3200}
 ],
 "trains": [
  {"id": "TR001", "origin": "Mumbai", "destination": "Pune", "date": "2026-03-05", "time": "07:15", "price": 450},
  {"id": "TR002", "origin": "Delhi", "destination": "Agra", "date": "2026-03-06", "time": "08:00", "price": 750}
 ],
 "movies": [
  {"id": "MV001", "name": "Interstellar", "origin": "Mumbai", "destination": "N/A", "date": "2026-03-07", "time": "19:00", "price": 350}
 ]
}`

var sharedCatalog *catalog.Catalog

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "tools-tests-")
	if err != nil {
		panic(err)
	}
	path := filepath.Join(dir, "tickets.json")
	if err := os.WriteFile(path, []byte(sampleTickets), 0o644); err != nil {
		panic(err)
	}
	sharedCatalog = catalog.New(path)

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func openStore(t *testing.T) *bookingdb.Store {
	t.Helper()
	store, err := bookingdb.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func unconfiguredMailer() *notify.Mailer {
	return notify.New("smtp.example.com:587", "", "")
}

// call runs a tool handler with marshaled input.
func call(t *testing.T, def tools.ToolDefinition, input any) (string, error) {
	t.Helper()
	b, err := json.Marshal(input)
	if err != nil {
		t.Fatalf("marshal input: %v", err)
	}
	return def.Function(context.Background(), b)
}
