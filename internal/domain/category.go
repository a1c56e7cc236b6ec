package domain

import (
	"github.com/google/uuid"
)

// Category is a portfolio category as supplied by the data source. It is a
// browsing aid only; ranking and wallet totals never consult it.
type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
}
