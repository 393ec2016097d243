package entity

// CartItem is one line item in a cart: a catalog item plus the quantity held.
// The catalog fields are embedded so the persisted JSON matches the snapshot
// layout (item fields inline, plus "quantity").
type CartItem struct {
	MenuItem
	Quantity int `json:"quantity"`
}

// Subtotal returns price × quantity for this line item.
func (ci CartItem) Subtotal() float64 {
	return ci.Price * float64(ci.Quantity)
}

// Cart is an ordered collection of line items. At most one line item exists
// per catalog id; adding the same id again increments its quantity.
// The zero value is an empty, usable cart.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Find returns a pointer to the line item with the given catalog id, or nil.
func (c *Cart) Find(itemID string) *CartItem {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return &c.Items[i]
		}
	}

	return nil
}

// Add merges quantity into an existing line item for the same catalog id, or
// appends a new line item at the end of the collection.
func (c *Cart) Add(item MenuItem, quantity int) {
	if existing := c.Find(item.ID); existing != nil {
		existing.Quantity += quantity

		return
	}

	c.Items = append(c.Items, CartItem{MenuItem: item, Quantity: quantity})
}

// Remove deletes the line item with the given catalog id. Removing an absent
// id is a no-op.
func (c *Cart) Remove(itemID string) {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)

			return
		}
	}
}

// SetQuantity sets the quantity of an existing line item exactly. A quantity
// of zero or less removes the line item. Absent ids are a no-op.
func (c *Cart) SetQuantity(itemID string, quantity int) {
	if quantity <= 0 {
		c.Remove(itemID)

		return
	}

	if existing := c.Find(itemID); existing != nil {
		existing.Quantity = quantity
	}
}

// Clear empties the collection.
func (c *Cart) Clear() {
	c.Items = nil
}

// IsEmpty reports whether the cart holds no line items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Total is the sum of price × quantity over all line items, recomputed from
// the current entries on every call so it can never go stale.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Subtotal()
	}

	return total
}

// Count is the sum of quantities over all line items.
func (c *Cart) Count() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}

	return count
}
