package domain

import (
	"time"

	"github.com/google/uuid"
)

// WalletEntry represents a single ledger row in the wallet.
// Entries are immutable once created by the data source.
// Amount is signed: negative = debit, positive = credit.
type WalletEntry struct {
	ID           uuid.UUID
	AmountMinor  int64
	CurrencyCode string
	TxDate       time.Time
	Status       string
	Note         string
}
