package models

// CartLine is one distinct product in a cart. The product is a snapshot taken
// when the line was first added, so later catalog edits do not change what the
// shopper sees priced in their cart.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity" validate:"gte=1"`
}

// Cart holds a shopper's selected-but-unordered lines, keyed by the shopper's
// user ID. Lines keep insertion order and hold at most one entry per product.
type Cart struct {
	ID    string     `json:"id"`
	Lines []CartLine `json:"lines"`
}

// Total returns the sum of price times quantity over all lines. Zero for an
// empty cart.
func (c *Cart) Total() int64 {
	var total int64
	for _, line := range c.Lines {
		total += line.Product.Price * int64(line.Quantity)
	}
	return total
}

// ItemCount returns the sum of quantities over all lines.
func (c *Cart) ItemCount() int {
	var count int
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}
