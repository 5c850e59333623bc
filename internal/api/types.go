package api

import "lotledger/pkg/lotledger"

type recalculatePayload struct {
	Transactions []lotledger.Transaction `json:"transactions"`
	StockSplits  []lotledger.StockSplit  `json:"stock_splits"`
}
