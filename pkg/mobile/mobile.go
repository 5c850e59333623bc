package mobile

import (
	"encoding/json"

	"lotledger/pkg/lotledger"
)

// Engine wraps the ledger engine for embedding via gomobile or other
// string-only FFI boundaries. Hosts exchange the same two messages as the
// HTTP API: one request JSON in, one response JSON out.
type Engine struct {
	engine *lotledger.Engine
}

// NewEngine creates an embeddable engine.
func NewEngine() *Engine {
	return &Engine{engine: lotledger.New()}
}

// Version returns the engine release version.
func (e *Engine) Version() string {
	return lotledger.Version
}

type requestMessage struct {
	Kind         string                  `json:"kind"`
	Transactions []lotledger.Transaction `json:"transactions"`
	StockSplits  []lotledger.StockSplit  `json:"stock_splits,omitempty"`
}

type responseMessage struct {
	Kind         string                     `json:"kind"`
	Transactions []lotledger.Transaction    `json:"transactions,omitempty"`
	Summary      *lotledger.RealizedSummary `json:"summary,omitempty"`
	Error        string                     `json:"error,omitempty"`
}

// RecalculateJSON runs one computation. The request carries the full
// transaction history plus optional stock splits; the response is either a
// success message with the annotated batch or a failure message with a
// human-readable error. It never returns a Go error: failures are part of
// the message protocol.
func (e *Engine) RecalculateJSON(requestJSON string) string {
	var req requestMessage
	if err := json.Unmarshal([]byte(requestJSON), &req); err != nil {
		return marshalResponse(responseMessage{Kind: "failure", Error: err.Error()})
	}
	if req.Kind != "" && req.Kind != "recalculate" {
		return marshalResponse(responseMessage{Kind: "failure", Error: "unsupported message kind " + req.Kind})
	}

	result, err := e.engine.Recalculate(lotledger.RecalculateRequest{
		Transactions: req.Transactions,
		StockSplits:  req.StockSplits,
	})
	if err != nil {
		return marshalResponse(responseMessage{Kind: "failure", Error: err.Error()})
	}
	return marshalResponse(responseMessage{
		Kind:         "success",
		Transactions: result.Transactions,
		Summary:      &result.Summary,
	})
}

func marshalResponse(resp responseMessage) string {
	data, err := json.Marshal(resp)
	if err != nil {
		return `{"kind":"failure","error":"failed to encode response"}`
	}
	return string(data)
}
