package ashare

import "testing"

func TestExchangeOf(t *testing.T) {
	testCases := []struct {
		code string
		want Exchange
	}{
		{"600000", SSE},
		{"688981", SSE},
		{"900901", SSE},
		{"000001", SZSE},
		{"002594", SZSE},
		{"300750", SZSE},
		{"200011", SZSE},
		{"430047", UnknownExchange}, // Beijing listing
		{"510300", UnknownExchange}, // ETF
		{"", UnknownExchange},
	}

	for _, tc := range testCases {
		if got := ExchangeOf(tc.code); got != tc.want {
			t.Errorf("ExchangeOf(%q) = %v, want %v", tc.code, got, tc.want)
		}
	}
}

func TestNormalizeCode(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"600000", "600000"},
		{"sh600000", "600000"},
		{"sz000001", "000001"},
		{"bj430047", "430047"},
		{" 600000 ", "600000"},
	}

	for _, tc := range testCases {
		if got := NormalizeCode(tc.in); got != tc.want {
			t.Errorf("NormalizeCode(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNewStock(t *testing.T) {
	s := NewStock("sh600000", "浦发银行")
	if s.Code != "600000" {
		t.Errorf("got code %q, want %q", s.Code, "600000")
	}
	if s.Exchange != SSE {
		t.Errorf("got exchange %v, want %v", s.Exchange, SSE)
	}
	if !s.Listed() {
		t.Errorf("stock %v should be listed", s)
	}

	if etf := NewStock("510300", "沪深300ETF"); etf.Listed() {
		t.Errorf("stock %v should not be listed", etf)
	}
}
