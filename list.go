package ashare

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
)

// ListCacheFile is the name of the stock list cache inside the dataset directory.
const ListCacheFile = "stock_list_cache.csv"

// StockList is the ordered working list of stocks for one run. Row order is
// stable once persisted: it defines the enumeration order start indices
// refer to.
type StockList struct {
	Stocks []Stock
	// FromCache is true when the list was read from the local cache file
	// rather than freshly fetched.
	FromCache bool
}

// Codes returns the ordered codes of the list.
func (l *StockList) Codes() []string {
	codes := make([]string, 0, len(l.Stocks))
	for _, s := range l.Stocks {
		codes = append(codes, s.Code)
	}
	return codes
}

// LoadStockList reads a persisted stock list. A missing file is reported with
// an error wrapping fs.ErrNotExist.
func LoadStockList(path string) (*StockList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open stock list cache: %w", err)
	}
	defer f.Close()

	stocks, err := decodeStockList(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read stock list cache %q: %w", path, err)
	}
	return &StockList{Stocks: stocks, FromCache: true}, nil
}

// Save overwrites the cache file with the list, preserving order.
func (l *StockList) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create stock list cache: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"code", "name", "exchange"}); err != nil {
		return err
	}
	for _, s := range l.Stocks {
		if err := w.Write([]string{s.Code, s.Name, string(s.Exchange)}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// decodeStockList parses cache rows. The header row is optional; rows whose
// code classifies to no supported exchange are dropped, everything else keeps
// its file order.
func decodeStockList(r io.Reader) ([]Stock, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate short rows from earlier cache formats

	var stocks []Stock
	first := true
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) == 0 || rec[0] == "" {
			continue
		}
		if first && rec[0] == "code" {
			first = false
			continue // header
		}
		first = false

		name := ""
		if len(rec) > 1 {
			name = rec[1]
		}
		s := NewStock(rec[0], name)
		if !s.Listed() {
			continue
		}
		stocks = append(stocks, s)
	}
	return stocks, nil
}

// ResolveStockList returns the working list for a run.
//
// With forceUpdate, or when no cache exists, it calls fetch and overwrites the
// cache. When the fetch fails but a cache exists the cached list is returned
// with a warning; with no cache either, the error is fatal: there is nothing
// to download.
func ResolveStockList(path string, forceUpdate bool, fetch func() ([]Stock, error)) (*StockList, error) {
	if !forceUpdate {
		list, err := LoadStockList(path)
		if err == nil {
			log.Printf("using cached stock list %q (%d stocks)", path, len(list.Stocks))
			return list, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("warning: %v, refetching stock list", err)
		}
	}

	stocks, fetchErr := fetch()
	if fetchErr != nil {
		// Fall back to the cache if there is one.
		list, err := LoadStockList(path)
		if err != nil {
			return nil, fmt.Errorf("cannot obtain a stock list: %w", fetchErr)
		}
		log.Printf("warning: stock list fetch failed (%v), falling back to cache %q", fetchErr, path)
		return list, nil
	}

	list := &StockList{Stocks: listed(stocks)}
	if err := list.Save(path); err != nil {
		return nil, fmt.Errorf("cannot persist stock list: %w", err)
	}
	log.Printf("stock list saved to %q (%d stocks)", path, len(list.Stocks))
	return list, nil
}

// listed filters a fetched list down to the stocks on supported exchanges,
// preserving order.
func listed(stocks []Stock) []Stock {
	kept := stocks[:0:0]
	for _, s := range stocks {
		if s.Listed() {
			kept = append(kept, s)
		}
	}
	return kept
}
