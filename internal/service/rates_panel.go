package service

import (
	"sync"

	"dashboard/internal/rates"
)

// RateRow is one line of the rates panel.
type RateRow struct {
	Code  rates.Currency
	Flag  string
	Label string
	Price string
}

// RatesView is the rendered rates panel: the headline USD price and one row per currency.
type RatesView struct {
	Origin rates.Origin
	USD    string
	Rows   []RateRow
}

var rateLabels = map[rates.Currency]struct{ flag, label string }{
	rates.USD: {"🇺🇸", "دالر"},
	rates.EUR: {"🇪🇺", "یورو"},
	rates.GBP: {"🇬🇧", "پوند"},
	rates.IRR: {"🇮🇷", "تومان"},
	rates.PKR: {"🇵🇰", "کلدار"},
}

var _ rates.Renderer = (*RatesPanel)(nil)

// RatesPanel turns a rate table into a RatesView. One panel serves one page load.
type RatesPanel struct {
	mu      sync.Mutex
	view    *RatesView
	renders int
}

// NewRatesPanel creates an empty panel.
func NewRatesPanel() *RatesPanel {
	return &RatesPanel{}
}

// RenderRates builds the view from table, in display order.
func (p *RatesPanel) RenderRates(table rates.Table, origin rates.Origin) {
	view := &RatesView{
		Origin: origin,
		USD:    priceOrPlaceholder(table, rates.USD),
		Rows:   make([]RateRow, 0, len(rates.Currencies)),
	}
	for _, c := range rates.Currencies {
		l := rateLabels[c]
		view.Rows = append(view.Rows, RateRow{
			Code:  c,
			Flag:  l.flag,
			Label: l.label,
			Price: priceOrPlaceholder(table, c),
		})
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.view = view
	p.renders++
}

// View returns the last rendered view, or nil before the first render.
func (p *RatesPanel) View() *RatesView {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.view
}

// Renders returns how many times the panel was rendered.
func (p *RatesPanel) Renders() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.renders
}

func priceOrPlaceholder(table rates.Table, c rates.Currency) string {
	if v := table[c]; v != "" {
		return v
	}
	return rates.Unavailable
}
