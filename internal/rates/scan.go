package rates

import "strings"

type label struct {
	token    string
	currency Currency
}

// labels are matched by plain substring containment against the row text.
// An unrelated row mentioning a token (a footer, a news line) is picked up as well;
// the first matching row for a currency wins.
var labels = []label{
	{token: "دالر", currency: USD},
	{token: "یورو", currency: EUR},
	{token: "پوند", currency: GBP},
	{token: "تومان", currency: IRR},
	{token: "کلدار", currency: PKR},
}

// sellPriceCell is the column holding the sell price in the rates table.
const sellPriceCell = 2

// ExtractPrice returns the sell price of a row, or Unavailable when the row is too short.
func ExtractPrice(row Row) string {
	cells := row.Cells()
	if len(cells) <= sellPriceCell {
		return Unavailable
	}
	return strings.TrimSpace(cells[sellPriceCell])
}

// Scan walks the rows of doc in order and records the price of the first row
// matching each currency label. A row whose sell price is empty does not claim the
// currency, so a later row may still fill it. Currencies with no matching row are absent from the result.
func Scan(doc TabularDocument) Table {
	found := make(Table, len(labels))
	for _, row := range doc.Rows() {
		text := row.Text()
		for _, l := range labels {
			if v, seen := found[l.currency]; seen && v != "" {
				continue
			}
			if strings.Contains(text, l.token) {
				found[l.currency] = ExtractPrice(row)
			}
		}
	}
	return found
}
