package checkout

// BillingInfo mirrors the checkout form. Every field is required; email
// must also look like an email.
type BillingInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
}

// CardInfo is only validated when the payment method is "card".
type CardInfo struct {
	CardNumber string `json:"cardNumber"`
	CardName   string `json:"cardName"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
}

type SubmitRequest struct {
	Billing       BillingInfo `json:"billing"`
	Card          CardInfo    `json:"card"`
	PaymentMethod string      `json:"paymentMethod"`
}

// FieldErrors is a fixed record of per-field messages, one slot per known
// input. A loose string map would let a forgotten field slip through
// silently; this shape will not.
type FieldErrors struct {
	FirstName     string `json:"firstName,omitempty"`
	LastName      string `json:"lastName,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	City          string `json:"city,omitempty"`
	ZipCode       string `json:"zipCode,omitempty"`
	Country       string `json:"country,omitempty"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
	CardNumber    string `json:"cardNumber,omitempty"`
	CardName      string `json:"cardName,omitempty"`
	ExpiryDate    string `json:"expiryDate,omitempty"`
	CVV           string `json:"cvv,omitempty"`
}

func (e FieldErrors) Any() bool {
	return e != FieldErrors{}
}

type SubmitResponse struct {
	OrderID     int64   `json:"orderId"`
	State       string  `json:"state"`
	TotalAmount float64 `json:"totalAmount"`
}

type OrderHistoryItem struct {
	ID            int64   `json:"id"`
	TotalAmount   float64 `json:"totalAmount"`
	Price         float64 `json:"price"`
	PaymentMethod string  `json:"paymentMethod"`
	CreatedAt     string  `json:"createdAt"`
}
