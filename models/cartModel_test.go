package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(id, name, price string) Product {
	return Product{ID: id, Name: name, Price: decimal.RequireFromString(price), Unit: "40 pieces +-"}
}

func TestCart_AddSameProductKeepsOneLine(t *testing.T) {
	var cart Cart
	p := testProduct("tart-nenas", "Tart Nenas", "35.00")

	for _, n := range []int{2, 1, 4} {
		require.NoError(t, cart.Add(p, n))
	}

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 7, cart.Lines[0].Quantity)
	assert.Equal(t, 7, cart.Quantity("tart-nenas"))
	assert.True(t, decimal.RequireFromString("245").Equal(cart.Total()))
}

func TestCart_AddRejectsNonPositiveQuantity(t *testing.T) {
	var cart Cart
	p := testProduct("a", "A", "1.00")

	assert.ErrorIs(t, cart.Add(p, 0), ErrInvalidQuantity)
	assert.ErrorIs(t, cart.Add(p, -3), ErrInvalidQuantity)
	assert.True(t, cart.IsEmpty())
}

func TestCart_AddCapturesPriceAtAddTime(t *testing.T) {
	var cart Cart
	p := testProduct("a", "A", "10.00")
	require.NoError(t, cart.Add(p, 1))

	p.Price = decimal.RequireFromString("99.00")
	p.Name = "Renamed"
	require.NoError(t, cart.Add(p, 1))

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "A", cart.Lines[0].Name)
	assert.True(t, decimal.RequireFromString("20.00").Equal(cart.Total()))
}

func TestCart_DecrementAtOneRemovesLine(t *testing.T) {
	var cart Cart
	require.NoError(t, cart.Add(testProduct("a", "A", "5.00"), 1))

	require.NoError(t, cart.Decrement("a"))

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.Quantity("a"))
	for _, line := range cart.Lines {
		assert.GreaterOrEqual(t, line.Quantity, 1)
	}
}

func TestCart_UnknownLine(t *testing.T) {
	var cart Cart
	require.NoError(t, cart.Add(testProduct("a", "A", "5.00"), 2))
	before := cart.Clone()

	assert.ErrorIs(t, cart.Increment("zzz"), ErrLineNotFound)
	assert.ErrorIs(t, cart.Decrement("zzz"), ErrLineNotFound)
	assert.ErrorIs(t, cart.Remove("zzz"), ErrLineNotFound)
	assert.Equal(t, before, cart)
}

func TestCart_MutationsKeyedByProductID(t *testing.T) {
	var cart Cart
	require.NoError(t, cart.Add(testProduct("a", "A", "1.00"), 1))
	require.NoError(t, cart.Add(testProduct("b", "B", "2.00"), 1))
	require.NoError(t, cart.Add(testProduct("c", "C", "3.00"), 1))

	// Removing the first line shifts positions; the ids taken from the
	// pre-removal snapshot must still address the right lines.
	snapshot := cart.Clone()
	for _, line := range snapshot.Lines[:2] {
		require.NoError(t, cart.Remove(line.ProductID))
	}

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "c", cart.Lines[0].ProductID)
	assert.True(t, decimal.RequireFromString("3.00").Equal(cart.Total()))
}

func TestCart_WorkedExample(t *testing.T) {
	var cart Cart
	a := testProduct("a", "Product A", "35.00")
	b := testProduct("b", "Product B", "35.00")

	require.NoError(t, cart.Add(a, 2))
	require.NoError(t, cart.Add(b, 1))
	assert.Equal(t, "105.00", cart.Total().StringFixed(2))

	require.NoError(t, cart.Decrement("a"))
	assert.Equal(t, 1, cart.Quantity("a"))
	assert.Equal(t, "70.00", cart.Total().StringFixed(2))

	require.NoError(t, cart.Remove("b"))
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "a", cart.Lines[0].ProductID)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
	assert.Equal(t, "35.00", cart.Total().StringFixed(2))
}

func TestCart_TotalTracksEveryMutation(t *testing.T) {
	var cart Cart
	a := testProduct("a", "A", "12.50")
	b := testProduct("b", "B", "3.20")

	sum := func() decimal.Decimal {
		total := decimal.Zero
		for _, line := range cart.Lines {
			total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}
		return total
	}

	steps := []func() error{
		func() error { return cart.Add(a, 3) },
		func() error { return cart.Add(b, 2) },
		func() error { return cart.Increment("b") },
		func() error { return cart.Decrement("a") },
		func() error { return cart.Remove("a") },
		func() error { return cart.Decrement("b") },
	}
	for i, step := range steps {
		require.NoError(t, step(), "step %d", i)
		assert.True(t, sum().Equal(cart.Total()), "step %d: total %s", i, cart.Total())
	}
	assert.Equal(t, 2, cart.ItemCount())
}

func TestCart_ClearAndClone(t *testing.T) {
	var cart Cart
	require.NoError(t, cart.Add(testProduct("a", "A", "1.00"), 2))

	clone := cart.Clone()
	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.True(t, cart.Total().IsZero())
	assert.Equal(t, 2, clone.Quantity("a"))
}

func TestNewCatalog(t *testing.T) {
	catalog, err := NewCatalog([]Product{
		testProduct("a", "A", "1.00"),
		testProduct("b", "B", "2.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, catalog.Len())

	p, ok := catalog.Find("b")
	require.True(t, ok)
	assert.Equal(t, "B", p.Name)

	_, ok = catalog.Find("missing")
	assert.False(t, ok)

	_, err = NewCatalog(nil)
	assert.Error(t, err)

	_, err = NewCatalog([]Product{testProduct("a", "A", "1"), testProduct("a", "A2", "1")})
	assert.ErrorContains(t, err, "duplicate")

	_, err = NewCatalog([]Product{testProduct("", "A", "1")})
	assert.Error(t, err)

	_, err = NewCatalog([]Product{testProduct("a", "A", "-1")})
	assert.ErrorContains(t, err, "negative")
}

func TestNewCatalog_ProductNamesAreColumns(t *testing.T) {
	_, err := NewCatalog([]Product{
		testProduct("tart-1", "Tart", "35.00"),
		testProduct("tart-2", " Tart ", "35.00"),
	})
	assert.ErrorContains(t, err, "duplicate product name")

	for _, name := range []string{"Name", "Total", "Order ID", "Remarks"} {
		_, err = NewCatalog([]Product{testProduct("a", name, "1.00")})
		assert.ErrorContains(t, err, "reserved", name)
	}

	_, err = NewCatalog([]Product{testProduct("a", "  ", "1.00")})
	assert.ErrorContains(t, err, "no name")

	catalog, err := NewCatalog([]Product{
		testProduct("tart-1", "Tart Nenas", "35.00"),
		testProduct("tart-2", "Tart Chocolate", "35.00"),
	})
	require.NoError(t, err)
	var cart Cart
	first, _ := catalog.Find("tart-1")
	require.NoError(t, cart.Add(first, 3))

	record := NewOrderRecord("AB12CD", time.Now(), CustomerDetails{}, cart, catalog)
	fields := record.Fields()
	assert.Len(t, fields, len(record.Columns()), "every column keeps its own field")
	assert.Equal(t, 3, fields["Tart Nenas"])
	assert.Equal(t, 0, fields["Tart Chocolate"])
}

func TestCatalog_Lookup(t *testing.T) {
	catalog, err := NewCatalog([]Product{testProduct("a", "A", "1.00")})
	require.NoError(t, err)

	p, err := catalog.Lookup("a")
	require.NoError(t, err)
	assert.Equal(t, "A", p.Name)

	_, err = catalog.Lookup("croissant")
	assert.ErrorIs(t, err, ErrUnknownProduct)
}
