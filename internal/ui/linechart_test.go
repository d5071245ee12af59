package ui

import (
	"testing"

	"CandleGlass/internal/model"
)

func TestAxisLabelFormat(t *testing.T) {
	cases := []struct {
		interval model.Interval
		want     string
	}{
		{model.Interval30m, "%H:%M"},
		{model.Interval4h, "%H:%M"},
		{model.Interval1d, "%b"},
		{model.Interval1w, "%Y"},
	}
	for _, tc := range cases {
		if got := axisLabelFormat(tc.interval.AxisFormat()); got != tc.want {
			t.Errorf("%s label format = %q, want %q", tc.interval.Label(), got, tc.want)
		}
	}
}
