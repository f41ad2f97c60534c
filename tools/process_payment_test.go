package tools_test

import (
	"regexp"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/Sudip-8345/OmniBook-AI/tools"
)

var transactionIDPattern = regexp.MustCompile(`^TXN-[0-9A-F]{8}$`)

func TestProcessPayment_Success(t *testing.T) {
	out, err := call(t, tools.ProcessPaymentDefinition, tools.ProcessPaymentInput{
		Amount: 4500, PassengerName: "Asha Rao", PassengerEmail: "asha@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gjson.Get(out, "status").String() != "success" {
		t.Fatalf("expected success, got %q", out)
	}
	txn := gjson.Get(out, "transaction_id").String()
	if !transactionIDPattern.MatchString(txn) {
		t.Fatalf("unexpected transaction id format: %q", txn)
	}
	if gjson.Get(out, "amount_charged").Float() != 4500 {
		t.Fatalf("unexpected amount: %q", out)
	}
}

func TestProcessPayment_UniqueTransactionIDs(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		out, err := call(t, tools.ProcessPaymentDefinition, tools.ProcessPaymentInput{
			Amount: 100, PassengerName: "A B", PassengerEmail: "a@b.co",
		})
		if err != nil {
			t.Fatal(err)
		}
		txn := gjson.Get(out, "transaction_id").String()
		if seen[txn] {
			t.Fatalf("duplicate transaction id %q", txn)
		}
		seen[txn] = true
	}
}

func TestProcessPayment_NonPositiveAmount(t *testing.T) {
	for _, amount := range []float64{0, -1} {
		out, err := call(t, tools.ProcessPaymentDefinition, tools.ProcessPaymentInput{
			Amount: amount, PassengerName: "A B", PassengerEmail: "a@b.co",
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if gjson.Get(out, "status").String() != "failed" {
			t.Fatalf("amount %v: expected failed, got %q", amount, out)
		}
	}
}
