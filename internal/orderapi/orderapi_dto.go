package orderapi

// CreateOrderRequest is the Order Service's creation contract. The field
// names are the upstream's, casing and all; do not normalize them.
type CreateOrderRequest struct {
	UserID        int64   `json:"user_id"`
	TotalAmount   float64 `json:"total_amount"`
	Price         float64 `json:"price"`
	FirstName     string  `json:"First_Name"`
	LastName      string  `json:"Last_Name"`
	Email         string  `json:"Email"`
	Address       string  `json:"Address"`
	City          string  `json:"City"`
	Zipcode       string  `json:"Zipcode"`
	Country       string  `json:"Country"`
	PhoneNumber   string  `json:"Phone_Number"`
	PaymentMethod string  `json:"Payment_Method"`
}

// Order is the persisted order as the upstream reports it. Only the id is
// load-bearing for the storefront; the rest is echoed for display.
type Order struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"user_id"`
	TotalAmount   float64 `json:"total_amount"`
	Price         float64 `json:"price"`
	FirstName     string  `json:"First_Name"`
	LastName      string  `json:"Last_Name"`
	Email         string  `json:"Email"`
	Address       string  `json:"Address"`
	City          string  `json:"City"`
	Zipcode       string  `json:"Zipcode"`
	Country       string  `json:"Country"`
	PhoneNumber   string  `json:"Phone_Number"`
	PaymentMethod string  `json:"Payment_Method"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type createOrderEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    Order  `json:"data"`
}
