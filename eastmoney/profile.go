package eastmoney

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/quantdl/ashare"
	"github.com/shopspring/decimal"
)

// Quote fields of interest: f57 code, f58 name, f84 total shares, f85 float
// shares, f116 total market cap, f117 float market cap, f127 industry,
// f189 listing date (yyyymmdd integer).
const profileFields = "f57,f58,f84,f85,f116,f117,f127,f189"

// FetchProfile returns the descriptive profile of one stock (industry, share
// structure, listing date).
func (c *Client) FetchProfile(ctx context.Context, stock ashare.Stock) (ashare.Profile, error) {
	params := url.Values{}
	params.Set("secid", secid(stock))
	params.Set("fltt", "2")
	params.Set("invt", "2")
	params.Set("fields", profileFields)
	params.Set("ut", ut)
	addr := c.QuoteURL + "?" + params.Encode()

	var payload struct {
		Data *struct {
			Code        string  `json:"f57"`
			Name        string  `json:"f58"`
			TotalShares float64 `json:"f84"`
			FloatShares float64 `json:"f85"`
			TotalCap    float64 `json:"f116"`
			FloatCap    float64 `json:"f117"`
			Industry    string  `json:"f127"`
			ListDate    int     `json:"f189"`
		} `json:"data"`
	}
	if err := c.getJSON(ctx, addr, &payload); err != nil {
		return ashare.Profile{}, fmt.Errorf("profile %s: %w", stock.Code, err)
	}
	if payload.Data == nil {
		return ashare.Profile{}, fmt.Errorf("profile %s: %w", stock.Code, ashare.ErrNotFound)
	}
	d := payload.Data

	profile := ashare.Profile{
		Code:           d.Code,
		Name:           d.Name,
		Industry:       d.Industry,
		TotalShares:    decimal.NewFromFloat(d.TotalShares),
		FloatShares:    decimal.NewFromFloat(d.FloatShares),
		TotalMarketCap: decimal.NewFromFloat(d.TotalCap),
		FloatMarketCap: decimal.NewFromFloat(d.FloatCap),
	}
	if d.ListDate > 0 {
		when, err := ashare.ParseDate(strconv.Itoa(d.ListDate))
		if err != nil {
			return ashare.Profile{}, fmt.Errorf("profile %s: bad listing date %d: %w", stock.Code, d.ListDate, ashare.ErrMalformedResponse)
		}
		profile.ListingDate = when
	}
	return profile, nil
}
