package tools_test

import (
	"testing"

	"github.com/Sudip-8345/OmniBook-AI/tools"
)

func TestRegistry_ToolCount(t *testing.T) {
	defs := tools.Registry(sharedCatalog, openStore(t), unconfiguredMailer())
	wantCount := 7
	if len(defs) != wantCount {
		t.Fatalf("unexpected number of tools: got %d want %d", len(defs), wantCount)
	}
}

func TestRegistry_ToolNames(t *testing.T) {
	defs := tools.Registry(sharedCatalog, openStore(t), unconfiguredMailer())
	want := map[string]struct{}{
		"search_tickets":            {},
		"filter_by_budget":          {},
		"collect_passenger_details": {},
		"process_payment_mock":      {},
		"save_booking_to_db":        {},
		"generate_receipt":          {},
		"send_email_confirmation":   {},
	}

	for _, d := range defs {
		if _, ok := want[d.Name]; !ok {
			t.Fatalf("unexpected tool in registry: %q", d.Name)
		}
	}

	got := map[string]struct{}{}
	for _, d := range defs {
		got[d.Name] = struct{}{}
	}
	for name := range want {
		if _, ok := got[name]; !ok {
			t.Errorf("missing expected tool: %q", name)
		}
	}

	if t.Failed() {
		t.FailNow()
	}
}

func TestRegistry_EveryToolHasSchemaAndHandler(t *testing.T) {
	for _, d := range tools.Registry(sharedCatalog, openStore(t), unconfiguredMailer()) {
		if d.Function == nil {
			t.Errorf("%s: nil handler", d.Name)
		}
		if d.Description == "" {
			t.Errorf("%s: empty description", d.Name)
		}
		if d.InputSchema.Properties == nil {
			t.Errorf("%s: nil input schema properties", d.Name)
		}
	}
}
