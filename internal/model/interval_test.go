package model

import "testing"

func TestInterval_CycleWraps(t *testing.T) {
	// Next applied once per interval must walk the full ring back to start.
	iv := Interval5m
	for range intervalOrder {
		iv = iv.Next()
	}
	if iv != Interval5m {
		t.Errorf("Next did not wrap, ended at %s", iv.Label())
	}

	if Interval5m.Prev() != Interval1w {
		t.Errorf("Prev from first = %s, want 1w", Interval5m.Prev().Label())
	}
	if Interval1w.Next() != Interval5m {
		t.Errorf("Next from last = %s, want 5m", Interval1w.Next().Label())
	}
}

func TestInterval_DefaultTimeframes(t *testing.T) {
	cases := []struct {
		interval Interval
		days     int
	}{
		{Interval5m, 7},
		{Interval15m, 14},
		{Interval30m, 30},
		{Interval1h, 30},
		{Interval4h, 60},
		{Interval1d, 730},
		{Interval1w, 1825},
	}
	for _, tc := range cases {
		if got := tc.interval.DefaultTimeframe().Days(); got != tc.days {
			t.Errorf("%s timeframe = %d days, want %d", tc.interval.Label(), got, tc.days)
		}
	}
}

func TestInterval_YahooParams(t *testing.T) {
	cases := map[Interval]string{
		Interval5m: "5m",
		Interval1h: "1h",
		Interval1d: "1d",
		Interval1w: "1wk",
	}
	for iv, want := range cases {
		if got := iv.YahooParam(); got != want {
			t.Errorf("%s param = %q, want %q", iv.Label(), got, want)
		}
	}
}

func TestInterval_AxisStrategies(t *testing.T) {
	if s := Interval30m.AxisFormat().Strategy; s.Kind != LabelRoundHours || s.Period != 6 {
		t.Errorf("30m strategy = %+v, want round-hours/6", s)
	}
	if s := Interval4h.AxisFormat().Strategy; s.Kind != LabelDayChange {
		t.Errorf("4h strategy = %+v, want day-change", s)
	}
	if s := Interval1w.AxisFormat().Strategy; s.Kind != LabelEveryYears {
		t.Errorf("1w strategy = %+v, want every-years", s)
	}
	if Interval1d.AxisFormat().TimeFormat != "" {
		t.Error("daily interval must not carry a time format")
	}
}

func TestParseInterval(t *testing.T) {
	iv, ok := ParseInterval("30m")
	if !ok || iv != Interval30m {
		t.Errorf("ParseInterval(30m) = %v, %v", iv, ok)
	}
	if _, ok := ParseInterval("2h"); ok {
		t.Error("unknown interval must not parse")
	}
}

func TestInterval_IsIntraday(t *testing.T) {
	for _, iv := range []Interval{Interval5m, Interval15m, Interval30m, Interval1h, Interval4h} {
		if !iv.IsIntraday() {
			t.Errorf("%s should be intraday", iv.Label())
		}
	}
	for _, iv := range []Interval{Interval1d, Interval1w} {
		if iv.IsIntraday() {
			t.Errorf("%s should not be intraday", iv.Label())
		}
	}
}
