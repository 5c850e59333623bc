package lotledger

import (
	"sort"
	"time"
)

type splitEvent struct {
	StockSplit
	at time.Time
}

// AdjustForSplits rewrites historical share counts and per-share prices so
// every transaction is expressed in post-split terms. Caller-owned slices are
// never mutated. TotalValue and Commission are deliberately left as recorded.
//
// A transaction timestamped exactly at a split's effective date counts as
// occurring after the split and is not adjusted.
func AdjustForSplits(txs []Transaction, splits []StockSplit) ([]Transaction, error) {
	adjusted := make([]Transaction, len(txs))
	copy(adjusted, txs)

	times := make([]time.Time, len(adjusted))
	for i, tx := range adjusted {
		at, err := parseTimestamp(tx.Timestamp)
		if err != nil {
			return nil, err
		}
		times[i] = at
	}

	events := make([]splitEvent, 0, len(splits))
	for _, sp := range splits {
		if !sp.Ratio.IsPositive() {
			return nil, NewErrorf(ErrCodeInvalidSplitRatio, "split for %s has non-positive ratio %s", sp.Symbol, sp.Ratio)
		}
		at, err := parseTimestamp(sp.EffectiveDate)
		if err != nil {
			return nil, err
		}
		events = append(events, splitEvent{StockSplit: sp, at: at})
	}

	// Chronological application: sequential splits compound multiplicatively
	// per affected transaction. Ties keep input order.
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].at.Before(events[j].at)
	})

	for _, ev := range events {
		for i := range adjusted {
			if adjusted[i].Symbol != ev.Symbol || !times[i].Before(ev.at) {
				continue
			}
			adjusted[i].Shares = Amount{adjusted[i].Shares.Mul(ev.Ratio.Decimal)}
			adjusted[i].PricePerShare = Amount{adjusted[i].PricePerShare.Div(ev.Ratio.Decimal)}
		}
	}
	return adjusted, nil
}
