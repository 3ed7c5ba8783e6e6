package eastmoney

import (
	"context"
	"fmt"
	"net/url"

	"github.com/quantdl/ashare"
)

/*
	{
	    "data": {
	        "code": "600000",
	        "name": "浦发银行",
	        "klines": [
	            "2010-01-04,13.13,12.79,13.20,12.71,241922,521386092.00,3.71,-3.18,-0.42,1.55"
	        ]
	    }
	}
*/

// FetchSeries returns the daily back-adjusted history of one stock over
// [from, to], oldest first. A null data payload means the service does not
// know the code (delisted or never listed) and wraps ashare.ErrNotFound.
func (c *Client) FetchSeries(ctx context.Context, stock ashare.Stock, from, to ashare.Date) ([]ashare.Candle, error) {
	params := url.Values{}
	params.Set("secid", secid(stock))
	params.Set("fields1", "f1,f2,f3,f4,f5,f6")
	params.Set("fields2", "f51,f52,f53,f54,f55,f56,f57,f58,f59,f60,f61")
	params.Set("klt", "101") // daily candles
	params.Set("fqt", "2")   // back adjusted (hfq)
	params.Set("beg", from.Compact())
	params.Set("end", to.Compact())
	params.Set("ut", ut)
	addr := c.KlineURL + "?" + params.Encode()

	var payload struct {
		Data *struct {
			Code   string   `json:"code"`
			Klines []string `json:"klines"`
		} `json:"data"`
	}
	if err := c.getJSON(ctx, addr, &payload); err != nil {
		return nil, fmt.Errorf("series %s: %w", stock.Code, err)
	}
	if payload.Data == nil {
		return nil, fmt.Errorf("series %s: %w", stock.Code, ashare.ErrNotFound)
	}

	candles := make([]ashare.Candle, 0, len(payload.Data.Klines))
	for _, line := range payload.Data.Klines {
		candle, err := ashare.ParseCandle(line)
		if err != nil {
			return nil, fmt.Errorf("series %s: %v: %w", stock.Code, err, ashare.ErrMalformedResponse)
		}
		candles = append(candles, candle)
	}
	return candles, nil
}
