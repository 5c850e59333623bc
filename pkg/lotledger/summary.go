package lotledger

import "sort"

// summarizeRealized derives realized totals from an annotated batch. The cost
// basis per sell is recovered from the annotation: saleValue − realizedPL −
// commission, which equals the FIFO cost the ledger matched.
func summarizeRealized(txs []Transaction) RealizedSummary {
	bySymbol := map[string]SymbolSummary{}
	byCurrency := map[string]Amount{}

	for _, tx := range txs {
		if tx.Kind != KindSell || tx.RealizedPL == nil {
			continue
		}
		proceeds := tx.Shares.Mul(tx.PricePerShare.Decimal)
		cost := proceeds.Sub(tx.RealizedPL.Decimal).Sub(tx.Commission.Decimal)

		s := bySymbol[tx.Symbol]
		s.Symbol = tx.Symbol
		s.SharesSold = Amount{s.SharesSold.Add(tx.Shares.Decimal)}
		s.Proceeds = Amount{s.Proceeds.Add(proceeds)}
		s.CostBasis = Amount{s.CostBasis.Add(cost)}
		s.Commission = Amount{s.Commission.Add(tx.Commission.Decimal)}
		s.RealizedPL = Amount{s.RealizedPL.Add(tx.RealizedPL.Decimal)}
		bySymbol[tx.Symbol] = s

		byCurrency[tx.Currency] = Amount{byCurrency[tx.Currency].Add(tx.RealizedPL.Decimal)}
	}

	symbols := make([]string, 0, len(bySymbol))
	for symbol := range bySymbol {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	summary := RealizedSummary{ByCurrency: byCurrency}
	for _, symbol := range symbols {
		summary.BySymbol = append(summary.BySymbol, bySymbol[symbol])
	}
	return summary
}
