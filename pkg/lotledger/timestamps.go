package lotledger

import "time"

// timestampLayouts are the accepted timestamp formats, tried in order.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseTimestamp parses a transaction or split timestamp. The returned time is
// only used for ordering and split-boundary comparison.
func parseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, NewErrorf(ErrCodeMalformedTimestamp, "unparseable timestamp %q", value)
}
