package codec

import (
	"time"

	"github.com/reoring/goval/dsl"
)

// TimeRFC3339 returns a Codec that converts between RFC3339 strings and
// time.Time. Decode accepts RFC3339Nano (trailing zeros optional); encode
// normalizes to UTC RFC3339Nano.
func TimeRFC3339() dsl.Codec[string, time.Time] {
	return dsl.NewCodec(dsl.String(), parseRFC3339, formatRFC3339Canonical)
}

func parseRFC3339(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}

func formatRFC3339Canonical(t time.Time) (string, error) {
	// Go trims trailing zeros when formatting RFC3339Nano
	return t.UTC().Format(time.RFC3339Nano), nil
}
