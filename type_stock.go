package ashare

import "strings"

// Exchange identifies the stock exchange a code is listed on.
type Exchange string

const (
	// SSE is the Shanghai Stock Exchange.
	SSE Exchange = "SSE"
	// SZSE is the Shenzhen Stock Exchange.
	SZSE Exchange = "SZSE"
	// UnknownExchange marks codes that belong to neither exchange (Beijing
	// listings, indices, malformed rows). They are excluded from downloads.
	UnknownExchange Exchange = "Unknown"
)

// Stock is one tradable instrument as enumerated by the remote quote service.
// Code is the opaque identifier used everywhere else: cache rows, ledger rows
// and output filenames.
type Stock struct {
	Code     string
	Name     string
	Exchange Exchange
}

// NormalizeCode strips an optional exchange prefix ("sh", "sz", "bj") from a
// raw code and trims surrounding whitespace.
func NormalizeCode(raw string) string {
	code := strings.TrimSpace(raw)
	lower := strings.ToLower(code)
	for _, prefix := range []string{"sh", "sz", "bj"} {
		if strings.HasPrefix(lower, prefix) {
			return code[len(prefix):]
		}
	}
	return code
}

// ExchangeOf classifies a normalized stock code by its numeric prefix.
//
// Shanghai main board and STAR market use 60/68, B shares 900. Shenzhen main
// board uses 000/002, ChiNext 300, B shares 200.
func ExchangeOf(code string) Exchange {
	switch {
	case hasAnyPrefix(code, "60", "68", "900"):
		return SSE
	case hasAnyPrefix(code, "000", "002", "300", "200"):
		return SZSE
	default:
		return UnknownExchange
	}
}

// NewStock builds a Stock from a raw code and name, normalizing the code and
// classifying the exchange.
func NewStock(rawCode, name string) Stock {
	code := NormalizeCode(rawCode)
	return Stock{Code: code, Name: name, Exchange: ExchangeOf(code)}
}

// Listed reports whether the stock is on an exchange this tool downloads from.
func (s Stock) Listed() bool { return s.Exchange == SSE || s.Exchange == SZSE }

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
