package waitspec

import (
	"errors"
	"testing"

	"github.com/nickwells/mathutil.mod/v2/mathutil"
	"github.com/nickwells/testhelper.mod/v2/testhelper"
)

func TestParseDuration(t *testing.T) {
	testCases := []struct {
		testhelper.ID
		testhelper.ExpErr
		val   string
		expMs int
	}{
		{
			ID:    testhelper.MkID("no suffix - seconds"),
			val:   "5",
			expMs: 5000,
		},
		{
			ID:    testhelper.MkID("seconds"),
			val:   "5s",
			expMs: 5000,
		},
		{
			ID:    testhelper.MkID("fractional seconds"),
			val:   "1.5s",
			expMs: 1500,
		},
		{
			ID:    testhelper.MkID("fractional, no suffix"),
			val:   "0.25",
			expMs: 250,
		},
		{
			ID:    testhelper.MkID("leading point"),
			val:   ".5",
			expMs: 500,
		},
		{
			ID:    testhelper.MkID("trailing point"),
			val:   "2.m",
			expMs: 120000,
		},
		{
			ID:    testhelper.MkID("minutes"),
			val:   "5m",
			expMs: 300000,
		},
		{
			ID:    testhelper.MkID("hours"),
			val:   "2h",
			expMs: 7200000,
		},
		{
			ID:    testhelper.MkID("days"),
			val:   "1d",
			expMs: 86400000,
		},
		{
			ID:    testhelper.MkID("zero"),
			val:   "0",
			expMs: 0,
		},
		{
			ID:    testhelper.MkID("rounded down to the nearest millisecond"),
			val:   "0.0004",
			expMs: 0,
		},
		{
			ID:    testhelper.MkID("rounded up to the nearest millisecond"),
			val:   "0.0006",
			expMs: 1,
		},
		{
			ID:     testhelper.MkID("empty"),
			val:    "",
			ExpErr: testhelper.MkExpErr("bad duration", "there is no number"),
		},
		{
			ID:     testhelper.MkID("suffix only"),
			val:    "m",
			ExpErr: testhelper.MkExpErr("bad duration", "there is no number"),
		},
		{
			ID:     testhelper.MkID("unknown suffix"),
			val:    "5x",
			ExpErr: testhelper.MkExpErr("bad duration", `unexpected character 'x'`),
		},
		{
			ID:     testhelper.MkID("two suffixes"),
			val:    "5ms",
			ExpErr: testhelper.MkExpErr("bad duration", `unexpected character 'm'`),
		},
		{
			ID:     testhelper.MkID("negative"),
			val:    "-5",
			ExpErr: testhelper.MkExpErr("bad duration", `unexpected character '-'`),
		},
		{
			ID:     testhelper.MkID("two points"),
			val:    "1.2.3s",
			ExpErr: testhelper.MkExpErr("bad duration", "more than one '.'"),
		},
		{
			ID:     testhelper.MkID("point only"),
			val:    ".s",
			ExpErr: testhelper.MkExpErr("bad duration", "there are no digits"),
		},
		{
			ID:     testhelper.MkID("exponent"),
			val:    "1e3",
			ExpErr: testhelper.MkExpErr("bad duration", `unexpected character 'e'`),
		},
		{
			ID:     testhelper.MkID("too large"),
			val:    "999999999999d",
			ExpErr: testhelper.MkExpErr("bad duration", "too large"),
		},
	}

	for _, tc := range testCases {
		ms, err := ParseDuration(tc.val)
		if testhelper.CheckExpErr(t, err, tc) && err == nil {
			testhelper.DiffInt(t, tc.IDStr(), "milliseconds",
				int(ms), tc.expMs)
		}

		if err != nil && !errors.Is(err, ErrBadDuration) {
			t.Log(tc.IDStr())
			t.Errorf("\t: the error should wrap ErrBadDuration: %v", err)
		}
	}
}

// TestParseDurationRoundTrip checks that any decimal value with any of the
// allowed suffixes gives the value times the unit multiplier in
// milliseconds.
func TestParseDurationRoundTrip(t *testing.T) {
	suffixes := []struct {
		suffix string
		mult   float64
	}{
		{"", 1},
		{"s", 1},
		{"m", 60},
		{"h", 3600},
		{"d", 86400},
	}
	values := []struct {
		str string
		val float64
	}{
		{"0", 0},
		{"1", 1},
		{"0.001", 0.001},
		{"0.5", 0.5},
		{"1.25", 1.25},
		{"17", 17},
		{"42.125", 42.125},
		{"100", 100},
	}

	for _, s := range suffixes {
		for _, v := range values {
			arg := v.str + s.suffix

			ms, err := ParseDuration(arg)
			if err != nil {
				t.Errorf("unexpected error parsing %q: %v", arg, err)
				continue
			}

			exp := v.val * s.mult * 1000
			if !mathutil.AlmostEqual(float64(ms), exp, 0.5) {
				t.Log(arg)
				t.Logf("\t: expected: %15.3f\n", exp)
				t.Logf("\t:   actual: %15d\n", ms)
				t.Errorf("\t: bad millisecond count\n")
			}
		}
	}
}
