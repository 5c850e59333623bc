package mobile

import (
	"encoding/json"
	"testing"
)

func TestRecalculateJSON_Success(t *testing.T) {
	engine := NewEngine()

	request := map[string]any{
		"kind": "recalculate",
		"transactions": []map[string]any{
			{
				"id": "b1", "symbol": "X", "kind": "buy",
				"shares": 10, "price_per_share": 10, "total_value": 100,
				"timestamp": "2023-01-01", "currency": "USD",
			},
			{
				"id": "s1", "symbol": "X", "kind": "sell",
				"shares": 10, "price_per_share": 15, "total_value": 150,
				"timestamp": "2023-02-01", "currency": "USD",
			},
		},
	}
	requestJSON, _ := json.Marshal(request)

	var resp map[string]any
	if err := json.Unmarshal([]byte(engine.RecalculateJSON(string(requestJSON))), &resp); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if resp["kind"] != "success" {
		t.Fatalf("expected success, got %v", resp)
	}
	txs := resp["transactions"].([]any)
	sell := txs[1].(map[string]any)
	if sell["realized_pl"] != float64(50) {
		t.Errorf("expected realized_pl 50, got %v", sell["realized_pl"])
	}
}

func TestRecalculateJSON_Failure(t *testing.T) {
	engine := NewEngine()

	request := `{"kind":"recalculate","transactions":[{"id":"b1","symbol":"X","kind":"buy","shares":10,"timestamp":"bogus"}]}`
	var resp map[string]any
	if err := json.Unmarshal([]byte(engine.RecalculateJSON(request)), &resp); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if resp["kind"] != "failure" {
		t.Fatalf("expected failure, got %v", resp)
	}
	if resp["error"] == "" {
		t.Errorf("expected an error description")
	}
}

func TestRecalculateJSON_MalformedRequest(t *testing.T) {
	engine := NewEngine()

	var resp map[string]any
	if err := json.Unmarshal([]byte(engine.RecalculateJSON("{broken")), &resp); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if resp["kind"] != "failure" {
		t.Errorf("expected failure for malformed request, got %v", resp)
	}
}

func TestVersion(t *testing.T) {
	engine := NewEngine()
	if engine.Version() == "" {
		t.Errorf("expected a version string")
	}
}
