package lotledger

import "testing"

// testBuy builds a buy transaction; total value defaults to shares*price.
func testBuy(id, symbol string, shares, price, commission float64, timestamp string) Transaction {
	return Transaction{
		ID:            id,
		Symbol:        symbol,
		Kind:          KindBuy,
		Shares:        NewAmount(shares),
		PricePerShare: NewAmount(price),
		TotalValue:    NewAmount(shares * price),
		Commission:    NewAmount(commission),
		Timestamp:     timestamp,
		Currency:      "USD",
	}
}

// testSell builds a sell transaction; total value defaults to shares*price.
func testSell(id, symbol string, shares, price, commission float64, timestamp string) Transaction {
	tx := testBuy(id, symbol, shares, price, commission, timestamp)
	tx.Kind = KindSell
	return tx
}

// testDividend builds a dividend transaction with the given payout.
func testDividend(id, symbol string, payout float64, timestamp string) Transaction {
	return Transaction{
		ID:         id,
		Symbol:     symbol,
		Kind:       KindDividend,
		TotalValue: NewAmount(payout),
		Timestamp:  timestamp,
		Currency:   "USD",
	}
}

// assertAmountEquals fails unless got equals want exactly.
func assertAmountEquals(t *testing.T, got Amount, want float64, context string) {
	t.Helper()
	if !got.Equal(NewAmount(want).Decimal) {
		t.Errorf("%s: expected %v, got %s", context, want, got)
	}
}

// assertNoError fails the test if err is not nil.
func assertNoError(t *testing.T, err error, context string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", context, err)
	}
}

// assertErrorCode fails unless err carries the given code.
func assertErrorCode(t *testing.T, err error, code ErrorCode, context string) {
	t.Helper()
	if err == nil {
		t.Fatalf("%s: expected error with code %s, got nil", context, code)
	}
	if !IsErrorCode(err, code) {
		t.Errorf("%s: expected error code %s, got: %v", context, code, err)
	}
}
