package lotledger

import "log/slog"

// Options controls Engine initialization.
type Options struct {
	Logger *slog.Logger
}

// Engine computes realized profit and loss over a full transaction history.
// It holds no state between calls: every Recalculate works from scratch on the
// complete history, so identical input always yields identical output.
type Engine struct {
	logger *slog.Logger
}

// New creates an Engine with default options.
func New() *Engine {
	return NewWithOptions(Options{})
}

// NewWithOptions creates an Engine using the provided options.
func NewWithOptions(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger}
}

// Recalculate normalizes the history for stock splits, then matches sells
// against purchase lots first-in-first-out and annotates them with realized
// P/L. Any invalid input aborts the whole computation with no partial result.
func (e *Engine) Recalculate(req RecalculateRequest) (*RecalculateResult, error) {
	adjusted, err := AdjustForSplits(req.Transactions, req.StockSplits)
	if err != nil {
		return nil, err
	}
	annotated, err := annotateSales(adjusted)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("recalculation complete",
		"transactions", len(annotated),
		"splits", len(req.StockSplits),
	)
	return &RecalculateResult{
		Transactions: annotated,
		Summary:      summarizeRealized(annotated),
	}, nil
}
