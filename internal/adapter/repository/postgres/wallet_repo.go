package postgres

import (
	"context"
	"fmt"

	"github.com/mrpanam/marketboard/internal/domain"
)

// walletRepository implements domain.WalletRepository
type walletRepository struct {
	db *DB
}

// NewWalletRepository creates a new wallet repository
func NewWalletRepository(db *DB) domain.WalletRepository {
	return &walletRepository{db: db}
}

// List retrieves all wallet entries, most recent first
func (r *walletRepository) List(ctx context.Context) ([]*domain.WalletEntry, error) {
	query := `
		SELECT id, amount_minor, currency_code, tx_date, status, note
		FROM wallet_entries
		ORDER BY tx_date DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query wallet entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.WalletEntry, 0)
	for rows.Next() {
		var entry domain.WalletEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.AmountMinor,
			&entry.CurrencyCode,
			&entry.TxDate,
			&entry.Status,
			&entry.Note,
		); err != nil {
			return nil, fmt.Errorf("failed to scan wallet entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate wallet entries: %w", err)
	}

	return entries, nil
}
