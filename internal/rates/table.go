// Package rates implements the exchange-rate panel pipeline: it retrieves the rates page,
// scans its tables for known currency labels and falls back to a static table on any failure.
package rates

// Currency is one of the fixed currency codes tracked by the rates panel.
type Currency string

// Tracked currencies.
const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	IRR Currency = "IRR"
	PKR Currency = "PKR"
)

// Unavailable is the price recorded when a matching row has no sell-price cell,
// and the placeholder rendered for currencies the page did not list.
const Unavailable = "---"

// Currencies lists the tracked currencies in display order.
var Currencies = []Currency{USD, EUR, GBP, IRR, PKR}

// Table maps a currency code to its price string.
type Table map[Currency]string

// FallbackTable returns a fresh copy of the static rates shown when live retrieval fails.
func FallbackTable() Table {
	return Table{
		USD: "71.20",
		EUR: "76.50",
		GBP: "89.10",
		IRR: "1.40",
		PKR: "0.25",
	}
}

// Complete returns a copy of t where every tracked currency has an entry,
// filling the missing ones with Unavailable.
func (t Table) Complete() Table {
	out := make(Table, len(Currencies))
	for _, c := range Currencies {
		v, ok := t[c]
		if !ok || v == "" {
			v = Unavailable
		}
		out[c] = v
	}
	return out
}

// Origin tells whether a rendered table came from the live page or the fallback.
type Origin string

// Origin values.
const (
	OriginLive     Origin = "live"
	OriginFallback Origin = "fallback"
)
