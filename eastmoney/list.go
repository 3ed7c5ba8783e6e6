package eastmoney

import (
	"context"
	"fmt"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
	"github.com/quantdl/ashare"
)

// fs filters of the clist endpoint: Shanghai A shares (m:1 t:2), Shanghai
// STAR market (m:1 t:23), Shenzhen A shares (m:0 t:6), Shenzhen ChiNext
// (m:0 t:80).
const listFilter = "m:0 t:6,m:0 t:80,m:1 t:2,m:1 t:23"

/*
	{
	    "data": {
	        "total": 5384,
	        "diff": [
	            { "f12": "000001", "f14": "平安银行" },
	            { "f12": "000002", "f14": "万科A" }
	        ]
	    }
	}
*/

// FetchList returns every tradable A-share stock known to the quote service,
// sorted by code. One request, throttled like every other call.
func (c *Client) FetchList(ctx context.Context) ([]ashare.Stock, error) {
	params := url.Values{}
	params.Set("pn", "1")
	params.Set("pz", "50000") // one page holds the whole market
	params.Set("po", "0")
	params.Set("np", "1")
	params.Set("fltt", "2")
	params.Set("invt", "2")
	params.Set("fid", "f12") // sort by code for a stable enumeration order
	params.Set("fs", listFilter)
	params.Set("fields", "f12,f14")
	params.Set("ut", ut)
	addr := c.ListURL + "?" + params.Encode()

	var jobj any
	if err := c.getJSON(ctx, addr, &jobj); err != nil {
		return nil, fmt.Errorf("stock list: %w", err)
	}

	// The payload nests the rows two levels deep; jsonpath keeps the digging
	// honest without a throwaway struct mirroring the whole envelope.
	jval, err := jsonpath.Get("$.data.diff", jobj)
	if err != nil {
		return nil, fmt.Errorf("stock list: no data.diff in response: %w", ashare.ErrMalformedResponse)
	}
	rows, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("stock list: data.diff is not a list: %w", ashare.ErrMalformedResponse)
	}

	stocks := make([]ashare.Stock, 0, len(rows))
	for _, row := range rows {
		m, ok := row.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("stock list: row is not an object: %w", ashare.ErrMalformedResponse)
		}
		code, ok := m["f12"].(string)
		if !ok || code == "" {
			return nil, fmt.Errorf("stock list: row has no code (f12): %w", ashare.ErrMalformedResponse)
		}
		name, _ := m["f14"].(string) // name is best-effort
		stocks = append(stocks, ashare.NewStock(code, name))
	}
	return stocks, nil
}
