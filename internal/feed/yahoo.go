package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"CandleGlass/internal/model"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// YahooFetcher implements Fetcher using the Yahoo Finance v8 chart API.
type YahooFetcher struct {
	Client  *http.Client
	BaseURL string
}

// NewYahooFetcher creates a Yahoo Finance fetcher, optionally routed through
// a proxy.
func NewYahooFetcher(proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		BaseURL: defaultBaseURL,
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart is the response structure of the chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string   `json:"symbol"`
				ShortName          string   `json:"shortName"`
				RegularMarketPrice *float64 `json:"regularMarketPrice"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func at(vs []*float64, i int) float64 {
	if i >= len(vs) {
		return 0
	}
	return deref(vs[i])
}

func ptrAt(vs []*float64, i int) *float64 {
	if i >= len(vs) {
		return nil
	}
	return vs[i]
}

// FetchSeries retrieves candles for the interval's default timeframe. Bars
// with no quote data (holidays, halts) are skipped.
func (f *YahooFetcher) FetchSeries(ctx context.Context, symbol string, interval model.Interval) (*model.Series, string, error) {
	timeframe := interval.DefaultTimeframe()
	now := time.Now().Unix()
	period1 := now - int64(timeframe.Days())*24*60*60

	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=%s&period1=%d&period2=%d",
		f.BaseURL, url.PathEscape(symbol), interval.YahooParam(), period1, now)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, "", fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, "", fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, "", fmt.Errorf("yahoo: no data returned for %s", symbol)
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, "", fmt.Errorf("yahoo: no quote data for %s", symbol)
	}
	quote := result.Indicators.Quote[0]

	series := model.NewSeries(symbol, interval)
	series.Candles = make([]model.Candle, 0, len(result.Timestamp))
	skipped := 0
	for i, ts := range result.Timestamp {
		o := ptrAt(quote.Open, i)
		h := ptrAt(quote.High, i)
		l := ptrAt(quote.Low, i)
		c := ptrAt(quote.Close, i)
		// Halted or still-forming bars come back with null quote fields.
		// A partial bar with a field forced to 0 would break the
		// Low <= body <= High assumption, so any null drops the bar.
		if o == nil || h == nil || l == nil || c == nil {
			skipped++
			continue
		}
		series.Candles = append(series.Candles, model.Candle{
			Time:   time.Unix(ts, 0),
			Open:   *o,
			High:   *h,
			Low:    *l,
			Close:  *c,
			Volume: at(quote.Volume, i),
		})
	}
	sort.Slice(series.Candles, func(i, j int) bool {
		return series.Candles[i].Time.Before(series.Candles[j].Time)
	})
	series.FetchedAt = time.Now()

	name := result.Meta.ShortName
	log.Debug().
		Str("symbol", symbol).
		Str("interval", interval.Label()).
		Int("candles", series.Len()).
		Int("skipped", skipped).
		Msg("yahoo series fetched")

	return series, name, nil
}
