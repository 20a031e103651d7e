package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func apple(qty int) BasketItem {
	return BasketItem{Label: "Apple", Category: "fruit", Amount: 50, Quantity: qty}
}

func TestBasket_RemoveRetainSemantics(t *testing.T) {
	testCases := []struct {
		name          string
		removeQty     int
		retainZero    bool
		expectPresent bool
		expectedQty   int
	}{
		{name: "remove all retain zero", removeQty: 5, retainZero: true, expectPresent: true, expectedQty: 0},
		{name: "remove all drop line", removeQty: 5, retainZero: false, expectPresent: false},
		{name: "partial removal", removeQty: 2, retainZero: false, expectPresent: true, expectedQty: 3},
		{name: "over-removal clamps at zero", removeQty: 9, retainZero: true, expectPresent: true, expectedQty: 0},
		{name: "over-removal drop line", removeQty: 9, retainZero: false, expectPresent: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			basket := NewBasket(apple(5))
			basket.RemoveItems(apple(testCase.removeQty), testCase.retainZero)

			item, found := basket.ItemByLabel("Apple")
			assert.Equal(t, testCase.expectPresent, found)
			if testCase.expectPresent {
				assert.Equal(t, testCase.expectedQty, item.Quantity)
			}
		})
	}
}

func TestBasket_AddItemMerge(t *testing.T) {
	basket := NewBasket()
	basket.AddItemMerge(apple(2))
	basket.AddItemMerge(apple(3))
	basket.AddItemMerge(BasketItem{Label: "Apple", Category: "gift", Amount: 50, Quantity: 1})

	assert.Len(t, basket.Items, 2)
	item, found := basket.ItemByLabel("Apple")
	assert.True(t, found)
	assert.Equal(t, 5, item.Quantity)
}

func TestBasket_AddItemsDoesNotMerge(t *testing.T) {
	basket := NewBasket(apple(1))
	basket.AddItems(apple(1))

	assert.Len(t, basket.Items, 2)
	assert.Equal(t, 2, basket.ItemCount())
}

func TestBasket_OneOfHelpers(t *testing.T) {
	basket := NewBasket(apple(2))

	basket.AddOneOf(apple(99))
	item, _ := basket.ItemByLabel("Apple")
	assert.Equal(t, 3, item.Quantity)

	basket.RemoveOneOf(apple(99), false)
	item, _ = basket.ItemByLabel("Apple")
	assert.Equal(t, 2, item.Quantity)
}

func TestBasket_TotalValue(t *testing.T) {
	basket := NewBasket(
		apple(3),
		BasketItem{Label: "Coffee", Amount: 350, Quantity: 2},
	)

	assert.Equal(t, int64(3*50+2*350), basket.TotalValue())
}

func TestBasket_CloneIsIndependent(t *testing.T) {
	basket := NewBasket(apple(5))
	clone := basket.Clone()

	clone.RemoveItems(apple(5), false)

	assert.True(t, basket.HasItems())
	assert.False(t, clone.HasItems())
}
