package ashare

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStockListRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ListCacheFile)

	list := &StockList{Stocks: []Stock{
		NewStock("600000", "浦发银行"),
		NewStock("000001", "平安银行"),
		NewStock("300750", "宁德时代"),
	}}
	if err := list.Save(path); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := LoadStockList(path)
	if err != nil {
		t.Fatalf("LoadStockList() failed: %v", err)
	}
	if !loaded.FromCache {
		t.Errorf("loaded list should report FromCache")
	}
	if len(loaded.Stocks) != len(list.Stocks) {
		t.Fatalf("got %d stocks, want %d", len(loaded.Stocks), len(list.Stocks))
	}
	// Order must survive the round trip: it defines start-index positions.
	for i := range list.Stocks {
		if loaded.Stocks[i] != list.Stocks[i] {
			t.Errorf("stock %d: got %v, want %v", i, loaded.Stocks[i], list.Stocks[i])
		}
	}
}

func TestDecodeStockList_NoHeader(t *testing.T) {
	rows := "600000,浦发银行\n000001,平安银行\n"
	stocks, err := decodeStockList(strings.NewReader(rows))
	if err != nil {
		t.Fatalf("decodeStockList() failed: %v", err)
	}
	if len(stocks) != 2 {
		t.Fatalf("got %d stocks, want 2", len(stocks))
	}
	if stocks[0].Code != "600000" || stocks[1].Code != "000001" {
		t.Errorf("got codes %q and %q, want 600000 and 000001", stocks[0].Code, stocks[1].Code)
	}
}

func TestDecodeStockList_DropsUnlisted(t *testing.T) {
	rows := "code,name,exchange\n600000,浦发银行,SSE\n510300,ETF,Unknown\n430047,诺思兰德,Unknown\n"
	stocks, err := decodeStockList(strings.NewReader(rows))
	if err != nil {
		t.Fatalf("decodeStockList() failed: %v", err)
	}
	if len(stocks) != 1 {
		t.Fatalf("got %d stocks, want 1", len(stocks))
	}
	if stocks[0].Code != "600000" {
		t.Errorf("got code %q, want 600000", stocks[0].Code)
	}
}

func TestResolveStockList_UsesCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), ListCacheFile)
	cached := &StockList{Stocks: []Stock{NewStock("600000", "")}}
	if err := cached.Save(path); err != nil {
		t.Fatal(err)
	}

	calls := 0
	list, err := ResolveStockList(path, false, func() ([]Stock, error) {
		calls++
		return []Stock{NewStock("000001", "")}, nil
	})
	if err != nil {
		t.Fatalf("ResolveStockList() failed: %v", err)
	}
	if calls != 0 {
		t.Errorf("fetch called %d times, want 0", calls)
	}
	if !list.FromCache || len(list.Stocks) != 1 || list.Stocks[0].Code != "600000" {
		t.Errorf("got %+v, want the cached list", list)
	}
}

func TestResolveStockList_ForceUpdate(t *testing.T) {
	path := filepath.Join(t.TempDir(), ListCacheFile)
	cached := &StockList{Stocks: []Stock{NewStock("600000", "")}}
	if err := cached.Save(path); err != nil {
		t.Fatal(err)
	}

	calls := 0
	list, err := ResolveStockList(path, true, func() ([]Stock, error) {
		calls++
		return []Stock{NewStock("000001", ""), NewStock("510300", "")}, nil
	})
	if err != nil {
		t.Fatalf("ResolveStockList() failed: %v", err)
	}
	if calls != 1 {
		t.Errorf("fetch called %d times, want exactly 1", calls)
	}
	if list.FromCache {
		t.Errorf("forced refresh should not report FromCache")
	}
	if len(list.Stocks) != 1 || list.Stocks[0].Code != "000001" {
		t.Errorf("got %+v, want the fresh, filtered list", list.Stocks)
	}

	// The cache file must be overwritten with the new list.
	reloaded, err := LoadStockList(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(reloaded.Stocks) != 1 || reloaded.Stocks[0].Code != "000001" {
		t.Errorf("cache file holds %+v, want the fresh list", reloaded.Stocks)
	}
}

func TestResolveStockList_FetchFailsWithCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), ListCacheFile)
	cached := &StockList{Stocks: []Stock{NewStock("600000", "")}}
	if err := cached.Save(path); err != nil {
		t.Fatal(err)
	}

	list, err := ResolveStockList(path, true, func() ([]Stock, error) {
		return nil, errors.New("network down")
	})
	if err != nil {
		t.Fatalf("ResolveStockList() should fall back to the cache, got error: %v", err)
	}
	if !list.FromCache || len(list.Stocks) != 1 || list.Stocks[0].Code != "600000" {
		t.Errorf("got %+v, want the cached list", list)
	}
}

func TestResolveStockList_FetchFailsNoCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), ListCacheFile)

	_, err := ResolveStockList(path, false, func() ([]Stock, error) {
		return nil, errors.New("network down")
	})
	if err == nil {
		t.Fatal("ResolveStockList() should fail when there is no cache and the fetch fails")
	}
	if _, statErr := os.Stat(path); statErr == nil {
		t.Errorf("no cache file should have been created")
	}
}
