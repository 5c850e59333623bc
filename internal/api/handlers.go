package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"lotledger/internal/worker"
	"lotledger/pkg/lotledger"
)

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) version(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": lotledger.Version})
}

// recalculate dispatches one computation through the worker pool and relays
// the engine's success or failure message as-is.
func (h *handler) recalculate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxBodyBytes)
	var payload recalculatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.RequestTimeout)
	defer cancel()
	resp, err := h.pool.Submit(ctx, worker.Request{
		Kind:         worker.KindRecalculate,
		Transactions: payload.Transactions,
		StockSplits:  payload.StockSplits,
	})
	if err != nil {
		switch {
		case errors.Is(err, worker.ErrQueueFull):
			writeError(w, http.StatusServiceUnavailable, err.Error())
		case errors.Is(err, context.DeadlineExceeded):
			writeError(w, http.StatusGatewayTimeout, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	status := http.StatusOK
	if resp.Kind == worker.KindFailure {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, resp)
}
