package lotledger

// Transaction kinds understood by the engine.
const (
	KindBuy      = "buy"
	KindSell     = "sell"
	KindDividend = "dividend"
)

// TransactionKinds lists every kind the engine accepts.
var TransactionKinds = []string{KindBuy, KindSell, KindDividend}

// Transaction is one record of the imported trade history. The engine treats
// inputs as immutable; realized P/L annotations are only ever written onto the
// copies it returns.
type Transaction struct {
	ID            string `json:"id"`
	Symbol        string `json:"symbol"`
	Kind          string `json:"kind"`
	Shares        Amount `json:"shares"`
	PricePerShare Amount `json:"price_per_share"`
	TotalValue    Amount `json:"total_value"`
	Commission    Amount `json:"commission"`
	Category      string `json:"category,omitempty"`
	Timestamp     string `json:"timestamp"`
	Currency      string `json:"currency,omitempty"`

	// Set on sells only.
	RealizedPL        *Amount `json:"realized_pl,omitempty"`
	RealizedPLPercent *Amount `json:"realized_pl_percent,omitempty"`
}

// StockSplit rescales share counts and prices of earlier transactions.
// Ratio is >1 for a forward split and <1 for a reverse split.
type StockSplit struct {
	Symbol        string `json:"symbol"`
	Ratio         Amount `json:"ratio"`
	EffectiveDate string `json:"effective_date"`
}

// RecalculateRequest carries the complete history for one computation.
type RecalculateRequest struct {
	Transactions []Transaction
	StockSplits  []StockSplit
}

// RecalculateResult is the outcome of one computation: the full transaction
// batch with sells annotated, plus derived realized totals.
type RecalculateResult struct {
	Transactions []Transaction   `json:"transactions"`
	Summary      RealizedSummary `json:"summary"`
}

// SymbolSummary aggregates the realized outcome of all sells for one symbol.
type SymbolSummary struct {
	Symbol     string `json:"symbol"`
	SharesSold Amount `json:"shares_sold"`
	Proceeds   Amount `json:"proceeds"`
	CostBasis  Amount `json:"cost_basis"`
	Commission Amount `json:"commission"`
	RealizedPL Amount `json:"realized_pl"`
}

// RealizedSummary holds realized P/L totals derived from an annotated batch.
type RealizedSummary struct {
	BySymbol   []SymbolSummary   `json:"by_symbol"`
	ByCurrency map[string]Amount `json:"by_currency"`
}
