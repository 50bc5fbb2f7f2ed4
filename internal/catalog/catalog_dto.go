package catalog

type ProductResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	StockQuantity int32   `json:"stockQuantity"`
	Category      string  `json:"category"`
	Likes         int64   `json:"likes"`
	ImageURL      string  `json:"imageUrl"`
}

func mapProductToResponse(p Product) ProductResponse {
	price, _ := p.Price.Round(2).Float64()
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         price,
		StockQuantity: p.StockQuantity,
		Category:      p.Category,
		Likes:         p.Likes,
		ImageURL:      p.ImageURL,
	}
}
