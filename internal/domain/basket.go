package domain

// BasketItem is one line of a basket. Amount is the unit price in
// minor units; the line value is Amount * Quantity.
type BasketItem struct {
	ID          string `json:"id,omitempty"`
	Label       string `json:"label" validate:"required"`
	Category    string `json:"category,omitempty"`
	Amount      int64  `json:"amount" validate:"min=0"`
	Quantity    int    `json:"quantity" validate:"min=0"`
	Measurement string `json:"measurement,omitempty"`
}

func (i BasketItem) TotalAmount() int64 {
	return i.Amount * int64(i.Quantity)
}

func (i BasketItem) matches(other BasketItem) bool {
	return i.Label == other.Label && i.Category == other.Category
}

// Basket is an ordered list of items. When attached to a Payment its
// total value must reconcile with the payment base amount; that check
// lives in PaymentBuilder.
type Basket struct {
	Items []BasketItem `json:"items"`
}

func NewBasket(items ...BasketItem) *Basket {
	b := &Basket{Items: make([]BasketItem, 0, len(items))}
	b.AddItems(items...)
	return b
}

// AddItems appends items as new lines, without merging.
func (b *Basket) AddItems(items ...BasketItem) {
	b.Items = append(b.Items, items...)
}

// AddItemMerge adds an item, merging into an existing line when label
// and category match by summing quantities.
func (b *Basket) AddItemMerge(item BasketItem) {
	for i := range b.Items {
		if b.Items[i].matches(item) {
			b.Items[i].Quantity += item.Quantity
			return
		}
	}
	b.Items = append(b.Items, item)
}

// AddOneOf adds a single unit of the given item, merging by label and
// category.
func (b *Basket) AddOneOf(item BasketItem) {
	item.Quantity = 1
	b.AddItemMerge(item)
}

// RemoveItems subtracts the requested quantity from the matching line.
// Over-removal clamps the line at zero rather than erroring. A line
// that reaches zero is kept when retainZero is true and dropped
// otherwise.
func (b *Basket) RemoveItems(item BasketItem, retainZero bool) {
	for i := range b.Items {
		if !b.Items[i].matches(item) {
			continue
		}
		b.Items[i].Quantity -= item.Quantity
		if b.Items[i].Quantity > 0 {
			return
		}
		b.Items[i].Quantity = 0
		if !retainZero {
			b.Items = append(b.Items[:i], b.Items[i+1:]...)
		}
		return
	}
}

// RemoveOneOf removes a single unit of the given item.
func (b *Basket) RemoveOneOf(item BasketItem, retainZero bool) {
	item.Quantity = 1
	b.RemoveItems(item, retainZero)
}

// ItemByLabel returns the first line with the given label.
func (b *Basket) ItemByLabel(label string) (BasketItem, bool) {
	for _, item := range b.Items {
		if item.Label == label {
			return item, true
		}
	}
	return BasketItem{}, false
}

func (b *Basket) HasItems() bool {
	return len(b.Items) > 0
}

func (b *Basket) ItemCount() int {
	count := 0
	for _, item := range b.Items {
		count += item.Quantity
	}
	return count
}

// TotalValue sums quantity * unit amount over all lines.
func (b *Basket) TotalValue() int64 {
	var total int64
	for _, item := range b.Items {
		total += item.TotalAmount()
	}
	return total
}

func (b *Basket) Clone() *Basket {
	clone := &Basket{Items: make([]BasketItem, len(b.Items))}
	copy(clone.Items, b.Items)
	return clone
}
