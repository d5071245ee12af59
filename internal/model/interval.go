package model

// Timeframe is the total span of data displayed for one interval.
type Timeframe int

const (
	TimeframeOneDay Timeframe = iota
	TimeframeThreeDays
	TimeframeFiveDays
	TimeframeOneWeek
	TimeframeTwoWeeks
	TimeframeOneMonth
	TimeframeTwoMonths
	TimeframeThreeMonths
	TimeframeSixMonths
	TimeframeOneYear
	TimeframeTwoYears
	TimeframeFiveYears
)

var timeframeDays = map[Timeframe]int{
	TimeframeOneDay:      1,
	TimeframeThreeDays:   3,
	TimeframeFiveDays:    5,
	TimeframeOneWeek:     7,
	TimeframeTwoWeeks:    14,
	TimeframeOneMonth:    30,
	TimeframeTwoMonths:   60,
	TimeframeThreeMonths: 90,
	TimeframeSixMonths:   180,
	TimeframeOneYear:     365,
	TimeframeTwoYears:    730,
	TimeframeFiveYears:   1825,
}

var timeframeLabels = map[Timeframe]string{
	TimeframeOneDay:      "1D",
	TimeframeThreeDays:   "3D",
	TimeframeFiveDays:    "5D",
	TimeframeOneWeek:     "7D",
	TimeframeTwoWeeks:    "14D",
	TimeframeOneMonth:    "1M",
	TimeframeTwoMonths:   "2M",
	TimeframeThreeMonths: "3M",
	TimeframeSixMonths:   "6M",
	TimeframeOneYear:     "1Y",
	TimeframeTwoYears:    "2Y",
	TimeframeFiveYears:   "5Y",
}

// Days returns the number of calendar days the timeframe covers.
func (t Timeframe) Days() int { return timeframeDays[t] }

// Label returns the short display label, e.g. "6M".
func (t Timeframe) Label() string { return timeframeLabels[t] }

// Interval is the time-bucket size of one candle. It determines the default
// display span, the axis text formats and the label cadence strategy.
type Interval int

const (
	Interval5m Interval = iota
	Interval15m
	Interval30m
	Interval1h
	Interval4h
	Interval1d
	Interval1w
)

// DefaultInterval is the startup granularity: 30 minutes balances detail
// against context for most symbols.
const DefaultInterval = Interval30m

// LabelStrategyKind selects the axis label cadence rule.
type LabelStrategyKind int

const (
	// LabelRoundHours labels candles landing on a round hour, every Period hours.
	LabelRoundHours LabelStrategyKind = iota
	// LabelDayChange labels the first candle of each new calendar day.
	LabelDayChange
	// LabelEveryDays labels day boundaries at least Period days apart.
	LabelEveryDays
	// LabelEveryMonths labels month boundaries at least Period months apart.
	LabelEveryMonths
	// LabelEveryYears labels year boundaries at least Period years apart.
	LabelEveryYears
)

// LabelStrategy is a tagged cadence rule. Period is ignored for LabelDayChange.
type LabelStrategy struct {
	Kind   LabelStrategyKind
	Period int
}

// AxisFormat describes how the x axis is labeled for one interval.
// TimeFormat is empty for intervals at or above daily (no time row).
// The format strings use strftime directives.
type AxisFormat struct {
	TimeFormat string
	DateFormat string
	Strategy   LabelStrategy
	// LabelWidth is the estimated rendered width of one label, used to cap
	// how many labels fit the chart.
	LabelWidth int
}

type intervalSpec struct {
	param     string // Yahoo Finance interval parameter
	label     string
	timeframe Timeframe
	intraday  bool
	axis      AxisFormat
}

// intervalSpecs is the single static table driving interval behavior. Default
// timeframes target 300-500 fetched candles per spec (equities trade ~6.5h a
// day, crypto 24h).
var intervalSpecs = map[Interval]intervalSpec{
	Interval5m: {
		param: "5m", label: "5m", timeframe: TimeframeOneWeek, intraday: true,
		axis: AxisFormat{
			TimeFormat: "%H:%M", DateFormat: "%d/%m",
			Strategy:   LabelStrategy{Kind: LabelRoundHours, Period: 1},
			LabelWidth: 5,
		},
	},
	Interval15m: {
		param: "15m", label: "15m", timeframe: TimeframeTwoWeeks, intraday: true,
		axis: AxisFormat{
			TimeFormat: "%H:%M", DateFormat: "%d/%m",
			Strategy:   LabelStrategy{Kind: LabelRoundHours, Period: 3},
			LabelWidth: 5,
		},
	},
	Interval30m: {
		param: "30m", label: "30m", timeframe: TimeframeOneMonth, intraday: true,
		axis: AxisFormat{
			TimeFormat: "%H:%M", DateFormat: "%d/%m",
			Strategy:   LabelStrategy{Kind: LabelRoundHours, Period: 6},
			LabelWidth: 5,
		},
	},
	Interval1h: {
		param: "1h", label: "1h", timeframe: TimeframeOneMonth, intraday: true,
		axis: AxisFormat{
			TimeFormat: "%H:%M", DateFormat: "%d/%m",
			Strategy:   LabelStrategy{Kind: LabelRoundHours, Period: 12},
			LabelWidth: 5,
		},
	},
	Interval4h: {
		param: "4h", label: "4h", timeframe: TimeframeTwoMonths, intraday: true,
		axis: AxisFormat{
			TimeFormat: "%H:%M", DateFormat: "%d/%m",
			Strategy:   LabelStrategy{Kind: LabelDayChange},
			LabelWidth: 5,
		},
	},
	Interval1d: {
		param: "1d", label: "1d", timeframe: TimeframeTwoYears, intraday: false,
		axis: AxisFormat{
			DateFormat: "%b",
			Strategy:   LabelStrategy{Kind: LabelEveryMonths, Period: 1},
			LabelWidth: 3,
		},
	},
	Interval1w: {
		param: "1wk", label: "1w", timeframe: TimeframeFiveYears, intraday: false,
		axis: AxisFormat{
			DateFormat: "%Y",
			Strategy:   LabelStrategy{Kind: LabelEveryYears, Period: 1},
			LabelWidth: 4,
		},
	},
}

// intervalOrder drives Next/Prev cycling.
var intervalOrder = []Interval{
	Interval5m, Interval15m, Interval30m, Interval1h, Interval4h, Interval1d, Interval1w,
}

// YahooParam returns the interval string the Yahoo Finance chart API expects.
func (i Interval) YahooParam() string { return intervalSpecs[i].param }

// Label returns the short display label, e.g. "30m".
func (i Interval) Label() string { return intervalSpecs[i].label }

// DefaultTimeframe returns the display span fetched for this interval.
func (i Interval) DefaultTimeframe() Timeframe { return intervalSpecs[i].timeframe }

// IsIntraday reports whether the interval is finer than daily and therefore
// gets a time row on the axis.
func (i Interval) IsIntraday() bool { return intervalSpecs[i].intraday }

// AxisFormat returns the label formats and cadence strategy for the x axis.
func (i Interval) AxisFormat() AxisFormat { return intervalSpecs[i].axis }

// Intervals returns all intervals in cycling order.
func Intervals() []Interval {
	out := make([]Interval, len(intervalOrder))
	copy(out, intervalOrder)
	return out
}

// Next returns the next interval, wrapping around.
func (i Interval) Next() Interval {
	for n, v := range intervalOrder {
		if v == i {
			return intervalOrder[(n+1)%len(intervalOrder)]
		}
	}
	return DefaultInterval
}

// Prev returns the previous interval, wrapping around.
func (i Interval) Prev() Interval {
	for n, v := range intervalOrder {
		if v == i {
			return intervalOrder[(n+len(intervalOrder)-1)%len(intervalOrder)]
		}
	}
	return DefaultInterval
}

// ParseInterval maps a label like "30m" or "1d" to its Interval.
func ParseInterval(s string) (Interval, bool) {
	for _, iv := range intervalOrder {
		if intervalSpecs[iv].label == s || intervalSpecs[iv].param == s {
			return iv, true
		}
	}
	return DefaultInterval, false
}
