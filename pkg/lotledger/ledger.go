package lotledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// shareTolerance is the smallest share quantity the ledger distinguishes.
var shareTolerance = decimal.NewFromFloat(1e-6)

var oneHundred = decimal.NewFromInt(100)

// lot is one purchase batch with its own cost basis. Lots are owned by the
// per-symbol queue; remaining only ever decreases and floors at zero, and
// exhausted lots stay in the queue for the rest of the run.
type lot struct {
	id           string
	shares       decimal.Decimal
	costPerShare decimal.Decimal
	remaining    decimal.Decimal
}

// annotateSales orders transactions chronologically and consumes purchase lots
// strictly in arrival order to compute realized P/L for every sell. Buys and
// dividends pass through unannotated; buys contribute lots, dividends touch no
// queue. The returned slice is in chronological order, ties keeping input order.
func annotateSales(txs []Transaction) ([]Transaction, error) {
	type entry struct {
		tx Transaction
		at time.Time
	}
	entries := make([]entry, 0, len(txs))
	for _, tx := range txs {
		at, err := parseTimestamp(tx.Timestamp)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry{tx: tx, at: at})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].at.Before(entries[j].at)
	})

	queues := map[string][]*lot{}
	for i := range entries {
		tx := &entries[i].tx
		switch tx.Kind {
		case KindBuy:
			if tx.Shares.IsZero() {
				return nil, NewErrorf(ErrCodeZeroShareBuy, "buy %s for %s has zero shares", tx.ID, tx.Symbol)
			}
			costPerShare := tx.TotalValue.Add(tx.Commission.Decimal).Div(tx.Shares.Decimal)
			queues[tx.Symbol] = append(queues[tx.Symbol], &lot{
				id:           tx.ID,
				shares:       tx.Shares.Decimal,
				costPerShare: costPerShare,
				remaining:    tx.Shares.Decimal,
			})
		case KindSell:
			toSell := tx.Shares.Decimal
			totalCost := decimal.Zero
			for _, l := range queues[tx.Symbol] {
				if toSell.Cmp(shareTolerance) <= 0 {
					break
				}
				if l.remaining.Cmp(shareTolerance) <= 0 {
					continue
				}
				taking := decimal.Min(l.remaining, toSell)
				totalCost = totalCost.Add(taking.Mul(l.costPerShare))
				l.remaining = l.remaining.Sub(taking)
				toSell = toSell.Sub(taking)
			}
			// Selling more than held is tolerated: the queue ran dry and the
			// P/L is computed against the partial cost basis accumulated so far.
			saleValue := tx.Shares.Mul(tx.PricePerShare.Decimal)
			realized := saleValue.Sub(totalCost).Sub(tx.Commission.Decimal)
			impliedCost := saleValue.Sub(realized).Sub(tx.Commission.Decimal)
			percent := decimal.Zero
			if impliedCost.IsPositive() {
				percent = realized.Div(impliedCost).Mul(oneHundred)
			}
			tx.RealizedPL = amountPtr(Amount{realized})
			tx.RealizedPLPercent = amountPtr(Amount{percent})
		}
	}

	annotated := make([]Transaction, len(entries))
	for i, e := range entries {
		annotated[i] = e.tx
	}
	return annotated, nil
}
