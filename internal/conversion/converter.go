package conversion

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultRate is used until a usable USD rate has been published.
const DefaultRate = 71

// ErrInvalidAmount is returned for amounts that are not numbers.
var ErrInvalidAmount = errors.New("invalid amount")

// Conversion is the result of converting an amount from USD.
type Conversion struct {
	Amount decimal.Decimal
	Rate   decimal.Decimal
	Result decimal.Decimal
}

// Converter multiplies amounts by the shared USD rate.
type Converter struct {
	store Store
}

// NewConverter creates a Converter reading from store.
func NewConverter(store Store) *Converter {
	return &Converter{store: store}
}

// Rate returns the published rate, or DefaultRate when none is usable.
func (c *Converter) Rate(ctx context.Context) (float64, error) {
	rate, err := c.store.Get(ctx)
	if err != nil {
		return 0, err
	}
	if rate == 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return DefaultRate, nil
	}
	return rate, nil
}

// Convert returns amount times the current rate, rounded to two decimal places.
func (c *Converter) Convert(ctx context.Context, amount decimal.Decimal) (Conversion, error) {
	rate, err := c.Rate(ctx)
	if err != nil {
		return Conversion{}, err
	}
	r := decimal.NewFromFloat(rate)
	return Conversion{
		Amount: amount,
		Rate:   r,
		Result: amount.Mul(r).Round(2),
	}, nil
}

// ParseAmount parses a user supplied amount.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}
