package catalog

import "github.com/shopspring/decimal"

// Product mirrors the Catalog Service payload. Prices are decoded into
// decimals so downstream pricing never goes through float arithmetic.
type Product struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int32           `json:"stock_quantity"`
	Category      string          `json:"category"`
	Likes         int64           `json:"likes"`
	ImageURL      string          `json:"image_url"`
}
