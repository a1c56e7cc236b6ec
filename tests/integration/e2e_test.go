//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mrpanam/marketboard/internal/adapter/httpapi"
	"github.com/mrpanam/marketboard/internal/adapter/repository/postgres"
	"github.com/mrpanam/marketboard/internal/config"
	"github.com/mrpanam/marketboard/internal/usecase/overview"
)

var (
	db     *postgres.DB
	server *httptest.Server
)

// TestMain sets up the test environment: a real Postgres database seeded
// with a known data set, and the HTTP API served in-process on top of it.
func TestMain(m *testing.M) {
	ctx := context.Background()

	// 1. Connect to Database
	var err error
	db, err = postgres.NewDB(getDBConnectionString())
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}
	defer db.Close()

	// 2. Self-Healing Setup: create schema and seed data if missing
	if err := setupSchema(ctx); err != nil {
		panic(fmt.Sprintf("Failed to setup schema: %v", err))
	}
	if err := seedData(ctx); err != nil {
		panic(fmt.Sprintf("Failed to seed data: %v", err))
	}

	// 3. Serve the API in-process on real repositories
	cfg := &config.Config{
		ReportingCurrency: "EUR",
		TopPerformers:     6,
		Rates:             map[string]float64{"USD": 1.09},
	}
	svc := overview.NewOverviewService(postgres.NewAssetRepository(db), postgres.NewWalletRepository(db), postgres.NewCategoryRepository(db), cfg)
	server = httptest.NewServer(httpapi.NewServer(zap.NewNop(), svc))
	defer server.Close()

	code := m.Run()

	os.Exit(code)
}

func getDBConnectionString() string {
	if connStr := os.Getenv("DB_CONN_STR"); connStr != "" {
		return connStr
	}
	return "host=localhost port=5432 user=postgres password=postgres dbname=marketboard_test sslmode=disable"
}

func setupSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS assets (
			id UUID PRIMARY KEY,
			symbol TEXT NOT NULL,
			category_key TEXT NOT NULL,
			risk_score SMALLINT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS prices (
			id UUID PRIMARY KEY,
			asset_id UUID NOT NULL REFERENCES assets(id),
			price DOUBLE PRECISION NOT NULL,
			price_date TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS wallet_entries (
			id UUID PRIMARY KEY,
			amount_minor BIGINT NOT NULL,
			currency_code TEXT NOT NULL,
			tx_date TIMESTAMPTZ NOT NULL,
			status TEXT NOT NULL,
			note TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT ''
		)`,
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	// Start from a clean slate so assertions stay deterministic
	for _, table := range []string{"prices", "assets", "wallet_entries", "categories"} {
		if _, err := db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}
	return nil
}

func seedData(ctx context.Context) error {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	assets := []struct {
		symbol   string
		category string
		risk     int
		prices   []float64 // most-recent-first
	}{
		{"BTC", "crypto", 8, []float64{60000, 50000}}, // +20%
		{"AAPL", "stocks", 2, []float64{180, 200}},    // -10%
		{"GOLD", "commodities", 3, []float64{2300}},   // no change data
		{"EURUSD", "forex", 1, nil},                   // no prices at all
	}

	for _, a := range assets {
		assetID := uuid.New()
		_, err := db.ExecContext(ctx,
			`INSERT INTO assets (id, symbol, category_key, risk_score) VALUES ($1, $2, $3, $4)`,
			assetID, a.symbol, a.category, a.risk)
		if err != nil {
			return fmt.Errorf("failed to insert asset %s: %w", a.symbol, err)
		}

		for i, price := range a.prices {
			_, err := db.ExecContext(ctx,
				`INSERT INTO prices (id, asset_id, price, price_date) VALUES ($1, $2, $3, $4)`,
				uuid.New(), assetID, price, now.Add(-time.Duration(i)*time.Hour))
			if err != nil {
				return fmt.Errorf("failed to insert price for %s: %w", a.symbol, err)
			}
		}
	}

	wallet := []struct {
		amount   int64
		currency string
		note     string
	}{
		{100, "EUR", "salary"},
		{109, "USD", "consulting"},
		{-50, "EUR", "groceries"},
	}
	for i, w := range wallet {
		_, err := db.ExecContext(ctx,
			`INSERT INTO wallet_entries (id, amount_minor, currency_code, tx_date, status, note)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			uuid.New(), w.amount, w.currency, now.Add(-time.Duration(i)*24*time.Hour), "settled", w.note)
		if err != nil {
			return fmt.Errorf("failed to insert wallet entry: %w", err)
		}
	}

	categories := []struct {
		name        string
		description string
	}{
		{"Crypto", "Digital assets"},
		{"Stocks", "Public equities"},
	}
	for _, c := range categories {
		_, err := db.ExecContext(ctx,
			`INSERT INTO categories (id, name, description) VALUES ($1, $2, $3)`,
			uuid.New(), c.name, c.description)
		if err != nil {
			return fmt.Errorf("failed to insert category %s: %w", c.name, err)
		}
	}

	return nil
}

func getJSON(t *testing.T, path string, out interface{}) {
	t.Helper()
	resp, err := http.Get(server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestE2E_TopPerformers(t *testing.T) {
	var cards []overview.AssetCard
	getJSON(t, "/api/top", &cards)

	require.Len(t, cards, 4)

	// BTC leads, AAPL follows, the two without change data sort last
	assert.Equal(t, "BTC", cards[0].Symbol)
	assert.Equal(t, "+20.00%", cards[0].ChangePct)
	assert.Equal(t, "60000.00", cards[0].LastPrice)

	assert.Equal(t, "AAPL", cards[1].Symbol)
	assert.Equal(t, "-10.00%", cards[1].ChangePct)

	assert.Equal(t, "-", cards[2].ChangePct)
	assert.Equal(t, "-", cards[3].ChangePct)
}

func TestE2E_AssetsTable(t *testing.T) {
	var rows []overview.AssetCard
	getJSON(t, "/api/assets", &rows)

	require.Len(t, rows, 4)

	bysymbol := make(map[string]overview.AssetCard, len(rows))
	for _, r := range rows {
		bysymbol[r.Symbol] = r
	}

	gold := bysymbol["GOLD"]
	assert.Equal(t, "Commodities", gold.Category)
	assert.Equal(t, "Moderate", gold.RiskBand)
	assert.Equal(t, "2300.00", gold.LastPrice)
	assert.Equal(t, "-", gold.ChangePct)

	eurusd := bysymbol["EURUSD"]
	assert.Equal(t, "-", eurusd.LastPrice)
	assert.Equal(t, "Low", eurusd.RiskBand)
}

func TestE2E_AssetsTableFilter(t *testing.T) {
	var rows []overview.AssetCard
	getJSON(t, "/api/assets?q=crypto", &rows)

	require.Len(t, rows, 1)
	assert.Equal(t, "BTC", rows[0].Symbol)
}

func TestE2E_Categories(t *testing.T) {
	var cards []overview.CategoryCard
	getJSON(t, "/api/categories", &cards)

	require.Len(t, cards, 2)
	assert.Equal(t, "Crypto", cards[0].Name)
	assert.Equal(t, "Digital assets", cards[0].Description)
	assert.Equal(t, "C", cards[0].Initial)
	assert.Equal(t, "Stocks", cards[1].Name)
}

func TestE2E_Wallet(t *testing.T) {
	var summary overview.WalletSummary
	getJSON(t, "/api/wallet", &summary)

	require.Len(t, summary.Lines, 3)

	// Entries come back most recent first
	assert.Equal(t, "Credit", summary.Lines[0].Kind)
	assert.Equal(t, "100.00 EUR", summary.Lines[0].Amount)
	assert.Equal(t, "salary", summary.Lines[0].Note)
	assert.Equal(t, "Debit", summary.Lines[2].Kind)
	assert.Equal(t, "50.00 EUR", summary.Lines[2].Amount)

	// 100 EUR + 109 USD / 1.09 - 50 EUR = 150 EUR
	assert.Equal(t, "150.00 EUR", summary.Total)
	assert.Equal(t, "EUR", summary.ReportingCurrency)
}
