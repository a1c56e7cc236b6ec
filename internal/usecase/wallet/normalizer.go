package wallet

import (
	"math"
	"strings"

	"github.com/mrpanam/marketboard/internal/domain"
)

// EntryKind labels a ledger entry for display purposes only; it does not
// affect totals.
type EntryKind string

const (
	EntryKindDebit  EntryKind = "Debit"
	EntryKindCredit EntryKind = "Credit"
)

// Normalize converts every wallet entry into the reporting currency and sums
// the converted amounts. Sign is preserved through conversion, so debits
// reduce the total.
//
// The rate table is quoted as "units of the foreign currency per unit of the
// reporting currency" (e.g. EUR reporting with {"USD": 1.09} means 1 EUR
// buys 1.09 USD), so a foreign amount is divided by its rate.
//
// An entry whose currency is missing from the table passes through
// unconverted. Known limitation: unknown currencies silently distort the
// total instead of erroring. See DESIGN.md.
func Normalize(entries []*domain.WalletEntry, reportingCurrency string, rates map[string]float64) float64 {
	total := 0.0
	for _, entry := range entries {
		total += Convert(entry.AmountMinor, entry.CurrencyCode, reportingCurrency, rates)
	}
	return total
}

// Convert converts a single signed amount from its currency into the
// reporting currency. Currency codes match case-insensitively; the rate
// table is keyed by upper-case code.
func Convert(amount int64, currencyCode, reportingCurrency string, rates map[string]float64) float64 {
	value := float64(amount)

	if strings.EqualFold(currencyCode, reportingCurrency) {
		return value
	}

	rate, ok := rates[strings.ToUpper(currencyCode)]
	if !ok || rate == 0 {
		// Unknown currency: pass through unconverted. A zero rate would
		// divide by zero, so it is treated the same way.
		return value
	}

	return value / rate
}

// Classify labels an entry as Debit or Credit and returns the absolute
// amount used for display. Presentation only; totals always use the signed
// amount.
func Classify(amount int64) (EntryKind, int64) {
	if amount < 0 {
		if amount == math.MinInt64 {
			// -MinInt64 overflows back to itself; clamp one off for display
			return EntryKindDebit, math.MaxInt64
		}
		return EntryKindDebit, -amount
	}
	return EntryKindCredit, amount
}
