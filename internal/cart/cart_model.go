package cart

import (
	"github.com/Dusan-Milekic/PixelShop/internal/catalog"

	"github.com/shopspring/decimal"
)

// Item is a product snapshot plus the quantity chosen by the shopper.
// Quantity is always >= 1; an item that would drop to zero is removed.
type Item struct {
	catalog.Product
	Quantity int32 `json:"quantity"`
}

// Cart is an ordered sequence of items, unique by product id. Insertion
// order is kept for display only.
type Cart struct {
	Items []Item `json:"cart"`
}

func (c *Cart) find(productID int64) int {
	for i := range c.Items {
		if c.Items[i].ID == productID {
			return i
		}
	}
	return -1
}

// Add increments the quantity of an existing entry by one, or appends a
// new entry with quantity 1. Stock ceilings are enforced at the edge, not
// here.
func (c *Cart) Add(p catalog.Product) {
	if i := c.find(p.ID); i >= 0 {
		c.Items[i].Quantity++
		return
	}
	c.Items = append(c.Items, Item{Product: p, Quantity: 1})
}

// Remove deletes the entry with the given id. Removing an absent id is a
// no-op, not an error.
func (c *Cart) Remove(productID int64) {
	if i := c.find(productID); i >= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	}
}

// UpdateQuantity sets the quantity of an existing entry. A quantity of
// zero or less behaves as Remove. An unknown id is a no-op.
func (c *Cart) UpdateQuantity(productID int64, quantity int32) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	if i := c.find(productID); i >= 0 {
		c.Items[i].Quantity = quantity
	}
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) TotalItems() int32 {
	var total int32
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt32(item.Quantity)))
	}
	return total
}

func (c *Cart) clone() Cart {
	items := make([]Item, len(c.Items))
	copy(items, c.Items)
	return Cart{Items: items}
}
