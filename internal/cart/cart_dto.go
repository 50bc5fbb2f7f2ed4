package cart

// AddItemRequest carries the product snapshot being added. The storefront
// keeps the snapshot the browser saw, the same way the SPA cart did.
type AddItemRequest struct {
	ID            int64   `json:"id" validate:"required"`
	Name          string  `json:"name" validate:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" validate:"gte=0"`
	StockQuantity int32   `json:"stock_quantity" validate:"gte=0"`
	Category      string  `json:"category"`
	Likes         int64   `json:"likes"`
	ImageURL      string  `json:"image_url"`
}

// UpdateQtyRequest sets an absolute quantity. Zero and below remove the
// item, so no lower bound is validated here.
type UpdateQtyRequest struct {
	Quantity int32 `json:"quantity"`
}

type CartItemResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Quantity      int32   `json:"quantity"`
	StockQuantity int32   `json:"stockQuantity"`
	Category      string  `json:"category"`
	ImageURL      string  `json:"imageUrl"`
	LineTotal     float64 `json:"lineTotal"`
}

type CartDetailResponse struct {
	Items      []CartItemResponse `json:"items"`
	TotalItems int32              `json:"totalItems"`
	TotalPrice float64            `json:"totalPrice"`
}

type CartCountResponse struct {
	Count int32 `json:"count"`
}

type CartSummaryResponse struct {
	Subtotal              float64 `json:"subtotal"`
	Shipping              float64 `json:"shipping"`
	Tax                   float64 `json:"tax"`
	Total                 float64 `json:"total"`
	FreeShippingRemaining float64 `json:"freeShippingRemaining"`
	FreeShippingProgress  float64 `json:"freeShippingProgress"`
}
