package ashare

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
)

// Profile carries the per-stock descriptive information used to enrich a
// downloaded dataset: industry, share structure and listing date.
type Profile struct {
	Code           string
	Name           string
	Industry       string
	ListingDate    Date
	TotalShares    decimal.Decimal
	FloatShares    decimal.Decimal
	TotalMarketCap decimal.Decimal
	FloatMarketCap decimal.Decimal
}

// ProfilePath returns the sidecar file holding a stock's profile.
func ProfilePath(dataset, code string) string {
	return filepath.Join(dataset, code+".info.csv")
}

// Save writes the profile as a two-column field,value table.
func (p Profile) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create profile file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	rows := [][]string{
		{"field", "value"},
		{"code", p.Code},
		{"name", p.Name},
		{"industry", p.Industry},
		{"listing_date", p.ListingDate.String()},
		{"total_shares", p.TotalShares.String()},
		{"float_shares", p.FloatShares.String()},
		{"total_market_cap", p.TotalMarketCap.String()},
		{"float_market_cap", p.FloatMarketCap.String()},
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("cannot write profile file %q: %w", path, err)
	}
	return nil
}
