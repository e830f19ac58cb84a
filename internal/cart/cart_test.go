package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NangRotha/Cloths-Frontend-User/internal/domain"
)

func product(id int64, price string) domain.Product {
	return domain.Product{
		ID:    id,
		Name:  "shirt",
		Price: decimal.RequireFromString(price),
	}
}

func TestAdd_NewItem(t *testing.T) {
	sut := New()
	sut.Add(product(1, "10"), 2)

	items := sut.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, sut.Total().Equal(decimal.RequireFromString("20")))
}

func TestAdd_SameProductMergesQuantity(t *testing.T) {
	sut := New()
	sut.Add(product(1, "10"), 2)
	sut.Add(product(1, "10"), 3)

	items := sut.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.True(t, sut.Total().Equal(decimal.RequireFromString("50")))
}

func TestAdd_QuantityBelowOneClampedToOne(t *testing.T) {
	sut := New()
	sut.Add(product(1, "10"), 0)
	sut.Add(product(2, "5"), -3)

	items := sut.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestAdd_PreservesInsertionOrder(t *testing.T) {
	sut := New()
	sut.Add(product(3, "1"), 1)
	sut.Add(product(1, "1"), 1)
	sut.Add(product(2, "1"), 1)
	sut.Add(product(1, "1"), 1)

	items := sut.Items()
	require.Len(t, items, 3)
	assert.Equal(t, int64(3), items[0].ProductID)
	assert.Equal(t, int64(1), items[1].ProductID)
	assert.Equal(t, int64(2), items[2].ProductID)
}

func TestUpdateQuantity_SetsQuantity(t *testing.T) {
	sut := New()
	sut.Add(product(1, "10"), 2)
	sut.UpdateQuantity(1, 7)

	items := sut.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Quantity)
	assert.True(t, sut.Total().Equal(decimal.RequireFromString("70")))
}

func TestUpdateQuantity_ZeroRemovesItem(t *testing.T) {
	sut := New()
	sut.Add(product(1, "10"), 2)
	sut.UpdateQuantity(1, 0)

	assert.Empty(t, sut.Items())
	assert.Equal(t, 0, sut.Count())
}

func TestUpdateQuantity_NegativeRemovesItem(t *testing.T) {
	sut := New()
	sut.Add(product(1, "10"), 2)
	sut.UpdateQuantity(1, -1)

	assert.Empty(t, sut.Items())
}

func TestUpdateQuantity_UnknownIDIsNoOp(t *testing.T) {
	sut := New()
	sut.Add(product(1, "10"), 2)
	sut.UpdateQuantity(99, 5)

	items := sut.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestRemove_UnknownIDIsNoOp(t *testing.T) {
	sut := New()
	sut.Add(product(1, "10"), 2)
	sut.Remove(99)

	assert.Len(t, sut.Items(), 1)
}

func TestClear_EmptiesCart(t *testing.T) {
	sut := New()
	sut.Add(product(1, "10"), 2)
	sut.Add(product(2, "3"), 1)
	sut.Clear()

	assert.Empty(t, sut.Items())
	assert.Equal(t, 0, sut.Count())
	assert.True(t, sut.Total().IsZero())
}

func TestCount_SumsQuantitiesNotLines(t *testing.T) {
	sut := New()
	sut.Add(product(1, "10"), 2)
	sut.Add(product(2, "3"), 3)

	assert.Equal(t, 5, sut.Count())
}

func TestTotal_RecomputedAfterEveryMutation(t *testing.T) {
	sut := New()
	sut.Add(product(1, "10"), 2)
	require.True(t, sut.Total().Equal(decimal.RequireFromString("20")))

	sut.Add(product(1, "10"), 3)
	require.True(t, sut.Total().Equal(decimal.RequireFromString("50")))

	sut.UpdateQuantity(1, 0)
	assert.True(t, sut.Total().IsZero())
	assert.Empty(t, sut.Items())
}

func TestTotal_FractionalPricesExact(t *testing.T) {
	sut := New()
	sut.Add(product(1, "19.99"), 3)

	assert.True(t, sut.Total().Equal(decimal.RequireFromString("59.97")))
}

func TestItems_ReturnsCopy(t *testing.T) {
	sut := New()
	sut.Add(product(1, "10"), 2)

	items := sut.Items()
	items[0].Quantity = 99

	assert.Equal(t, 2, sut.Items()[0].Quantity)
}
