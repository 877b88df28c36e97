package importer

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBoundaryDate(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  time.Time
		ok    bool
	}{
		{"slash padded", "06/03/2024", time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC), true},
		{"slash single digits", "6/3/2024", time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC), true},
		{"serial number", "45446", time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC), true},
		{"serial with time part", "45446.5", time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC), true},
		{"month out of range", "13/03/2024", time.Time{}, false},
		{"day out of range", "06/32/2024", time.Time{}, false},
		{"not a date", "hello", time.Time{}, false},
		{"empty", "", time.Time{}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := parseBoundaryDate(c.value)
			require.Equal(t, c.ok, ok)
			if ok {
				assert.True(t, got.Equal(c.want), "got %s", got)
			}
		})
	}
}

func TestParseDayFraction(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  *float64
	}{
		{"fraction", "0.25", fp(0.25)},
		{"zero", "0", fp(0)},
		{"clock string", "06:00", fp(0.25)},
		{"clock string evening", "22:30", fp(0.9375)},
		{"out of range", "1.5", nil},
		{"negative", "-0.1", nil},
		{"garbage", "noon", nil},
		{"empty", "", nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := parseDayFraction(c.value)
			if c.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *c.want, *got, 1e-9)
		})
	}
}

func TestStripDecimalTail(t *testing.T) {
	assert.Nil(t, stripDecimalTail(""))

	got := stripDecimalTail("1820126735.0")
	require.NotNil(t, got)
	assert.Equal(t, "1820126735", *got)

	got = stripDecimalTail("1820126735")
	require.NotNil(t, got)
	assert.Equal(t, "1820126735", *got)
}

func TestParseMoney(t *testing.T) {
	assert.True(t, parseMoney("90,000").Equal(d("90000")))
	assert.True(t, parseMoney("535.71").Equal(d("535.71")))
	assert.True(t, parseMoney("").IsZero())
	assert.True(t, parseMoney("n/a").IsZero())
}

func fp(v float64) *float64 { return &v }

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }
