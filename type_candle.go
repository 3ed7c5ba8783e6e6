package ashare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Candle is one daily row of a stock's historical series, in the column
// order the quote service reports them: date, open, close, high, low,
// volume, amount, amplitude, percent change, change, turnover rate.
type Candle struct {
	Date      Date
	Open      decimal.Decimal
	Close     decimal.Decimal
	High      decimal.Decimal
	Low       decimal.Decimal
	Volume    decimal.Decimal // lots of 100 shares
	Amount    decimal.Decimal // turnover in CNY
	Amplitude decimal.Decimal // percent
	PctChg    decimal.Decimal // percent
	Change    decimal.Decimal // absolute price change
	Turnover  decimal.Decimal // turnover rate, percent
}

// candleHeader is the header row of a per-stock series file.
var candleHeader = []string{"date", "open", "close", "high", "low", "volume", "amount", "amplitude", "pct_chg", "change", "turnover"}

// ParseCandle parses a single comma-joined kline row as returned by the
// quote service, e.g. "2010-01-04,21.06,20.59,21.36,20.45,86263,1691122048.00,4.27,-3.42,-0.73,1.15".
func ParseCandle(line string) (Candle, error) {
	fields := strings.Split(line, ",")
	return candleFromFields(fields)
}

// fields returns the candle as a CSV record in candleHeader order.
func (c Candle) fields() []string {
	return []string{
		c.Date.String(),
		c.Open.String(),
		c.Close.String(),
		c.High.String(),
		c.Low.String(),
		c.Volume.String(),
		c.Amount.String(),
		c.Amplitude.String(),
		c.PctChg.String(),
		c.Change.String(),
		c.Turnover.String(),
	}
}

// candleFromFields builds a Candle from a record in candleHeader order.
func candleFromFields(fields []string) (c Candle, err error) {
	if len(fields) != len(candleHeader) {
		return c, fmt.Errorf("candle row has %d fields, want %d", len(fields), len(candleHeader))
	}

	c.Date, err = ParseDate(fields[0])
	if err != nil {
		return c, err
	}

	cols := []*decimal.Decimal{
		&c.Open, &c.Close, &c.High, &c.Low,
		&c.Volume, &c.Amount, &c.Amplitude, &c.PctChg, &c.Change, &c.Turnover,
	}
	for i, col := range cols {
		*col, err = decimal.NewFromString(fields[i+1])
		if err != nil {
			return c, fmt.Errorf("invalid %s value %q: %w", candleHeader[i+1], fields[i+1], err)
		}
	}
	return c, nil
}
