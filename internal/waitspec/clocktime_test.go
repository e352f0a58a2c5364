package waitspec

import (
	"errors"
	"testing"

	"github.com/nickwells/testhelper.mod/v2/testhelper"
)

func TestParseClockTime(t *testing.T) {
	testCases := []struct {
		testhelper.ID
		testhelper.ExpErr
		val       string
		expHour   int
		expMinute int
	}{
		{
			ID:        testhelper.MkID("24-hour"),
			val:       "18:00",
			expHour:   18,
			expMinute: 0,
		},
		{
			ID:        testhelper.MkID("midnight"),
			val:       "00:00",
			expHour:   0,
			expMinute: 0,
		},
		{
			ID:        testhelper.MkID("last minute of the day"),
			val:       "23:59",
			expHour:   23,
			expMinute: 59,
		},
		{
			ID:        testhelper.MkID("single digits"),
			val:       "6:5",
			expHour:   6,
			expMinute: 5,
		},
		{
			ID:        testhelper.MkID("12am"),
			val:       "12:00am",
			expHour:   0,
			expMinute: 0,
		},
		{
			ID:        testhelper.MkID("12pm"),
			val:       "12:30pm",
			expHour:   12,
			expMinute: 30,
		},
		{
			ID:        testhelper.MkID("1pm"),
			val:       "1:00pm",
			expHour:   13,
			expMinute: 0,
		},
		{
			ID:        testhelper.MkID("11am"),
			val:       "11:15am",
			expHour:   11,
			expMinute: 15,
		},
		{
			ID:        testhelper.MkID("11pm"),
			val:       "11:59pm",
			expHour:   23,
			expMinute: 59,
		},
		{
			ID:        testhelper.MkID("upper case, spaces"),
			val:       "  6:00 AM ",
			expHour:   6,
			expMinute: 0,
		},
		{
			ID:        testhelper.MkID("mixed case"),
			val:       "7:45Pm",
			expHour:   19,
			expMinute: 45,
		},
		{
			ID:     testhelper.MkID("hour too big"),
			val:    "25:00",
			ExpErr: testhelper.MkExpErr(`"25:00"`, "must be less than 24"),
		},
		{
			ID:     testhelper.MkID("hour 24"),
			val:    "24:00",
			ExpErr: testhelper.MkExpErr(`"24:00"`, "must be less than 24"),
		},
		{
			ID:     testhelper.MkID("minute too big"),
			val:    "12:60",
			ExpErr: testhelper.MkExpErr(`"12:60"`, "must be less than 60"),
		},
		{
			ID:     testhelper.MkID("13pm"),
			val:    "13:00pm",
			ExpErr: testhelper.MkExpErr("must be from 1 to 12 with pm"),
		},
		{
			ID:     testhelper.MkID("0am"),
			val:    "0:30am",
			ExpErr: testhelper.MkExpErr("must be from 1 to 12 with am"),
		},
		{
			ID:     testhelper.MkID("no colon"),
			val:    "1200",
			ExpErr: testhelper.MkExpErr("there is no ':'"),
		},
		{
			ID:     testhelper.MkID("two colons"),
			val:    "12:00:00",
			ExpErr: testhelper.MkExpErr("more than one ':'"),
		},
		{
			ID:     testhelper.MkID("missing hours"),
			val:    ":30",
			ExpErr: testhelper.MkExpErr("bad hours", "missing"),
		},
		{
			ID:     testhelper.MkID("missing minutes"),
			val:    "12:",
			ExpErr: testhelper.MkExpErr("bad minutes", "missing"),
		},
		{
			ID:     testhelper.MkID("negative hours"),
			val:    "-1:30",
			ExpErr: testhelper.MkExpErr("bad hours", "not a non-negative integer"),
		},
		{
			ID:     testhelper.MkID("not a number"),
			val:    "noon",
			ExpErr: testhelper.MkExpErr("there is no ':'"),
		},
		{
			ID:     testhelper.MkID("space inside the number"),
			val:    "1 2:00",
			ExpErr: testhelper.MkExpErr("bad hours", "not a non-negative integer"),
		},
	}

	for _, tc := range testCases {
		ct, err := ParseClockTime(tc.val)
		if testhelper.CheckExpErr(t, err, tc) && err == nil {
			testhelper.DiffInt(t, tc.IDStr(), "hour", ct.Hour, tc.expHour)
			testhelper.DiffInt(t, tc.IDStr(), "minute", ct.Minute, tc.expMinute)
		}

		if err != nil && !errors.Is(err, ErrBadClockTime) {
			t.Log(tc.IDStr())
			t.Errorf("\t: the error should wrap ErrBadClockTime: %v", err)
		}
	}
}

func TestClockTimeOffset(t *testing.T) {
	testCases := []struct {
		testhelper.ID
		ct        ClockTime
		expOffset int
		expStr    string
	}{
		{
			ID:        testhelper.MkID("midnight"),
			ct:        ClockTime{},
			expOffset: 0,
			expStr:    "00:00",
		},
		{
			ID:        testhelper.MkID("06:00"),
			ct:        ClockTime{Hour: 6},
			expOffset: 6 * 3600 * 1000,
			expStr:    "06:00",
		},
		{
			ID:        testhelper.MkID("23:59"),
			ct:        ClockTime{Hour: 23, Minute: 59},
			expOffset: (23*3600 + 59*60) * 1000,
			expStr:    "23:59",
		},
	}

	for _, tc := range testCases {
		testhelper.DiffInt(t, tc.IDStr(), "offset",
			int(tc.ct.OffsetMs()), tc.expOffset)
		testhelper.DiffString(t, tc.IDStr(), "string",
			tc.ct.String(), tc.expStr)
	}
}

func TestSpecCheck(t *testing.T) {
	testCases := []struct {
		testhelper.ID
		testhelper.ExpErr
		spec Spec
	}{
		{
			ID:     testhelper.MkID("empty"),
			ExpErr: testhelper.MkExpErr("no wait has been specified"),
		},
		{
			ID:     testhelper.MkID("plain sleep alone is not a wait"),
			spec:   Spec{PlainSleep: true},
			ExpErr: testhelper.MkExpErr("no wait has been specified"),
		},
		{
			ID:   testhelper.MkID("zero duration"),
			spec: Spec{HasDuration: true},
		},
		{
			ID:   testhelper.MkID("midnight"),
			spec: Spec{Midnight: true},
		},
		{
			ID:   testhelper.MkID("clock time"),
			spec: Spec{ClockTimes: []string{"12:00"}},
		},
	}

	for _, tc := range testCases {
		err := tc.spec.Check()
		testhelper.CheckExpErr(t, err, tc)
	}
}
