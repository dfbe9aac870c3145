package catalog

import (
	"testing"

	"github.com/playbase/backend/internal/domain/shared"
	"github.com/playbase/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	price := valueobject.NewMoneyEURFromFloat(549.90)

	t.Run("creates active product", func(t *testing.T) {
		p, err := NewProduct("RTX 4070", "RTX 4070", CategoryComponents, price, 12)
		require.NoError(t, err)

		assert.True(t, p.IsActive)
		assert.Equal(t, 12, p.Stock)
		assert.True(t, p.GetPriceMoney().Equals(price))
	})

	t.Run("albanian name falls back to english", func(t *testing.T) {
		p, err := NewProduct("Gaming Mouse", "", CategoryPeripherals, price, 5)
		require.NoError(t, err)
		assert.Equal(t, "Gaming Mouse", p.NameSq)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		_, err := NewProduct("", "", CategoryComponents, price, 1)
		assert.Error(t, err)
		_, err = NewProduct("Mouse", "", Category("TOYS"), price, 1)
		assert.Error(t, err)
		_, err = NewProduct("Mouse", "", CategoryPeripherals, price, -1)
		assert.Error(t, err)
	})
}

func TestProductLocalization(t *testing.T) {
	p, err := NewProduct("Gift Card 50 EUR", "Kartë Dhuratë 50 EUR", CategoryGiftCards, valueobject.NewMoneyEURFromFloat(50), 100)
	require.NoError(t, err)

	assert.Equal(t, "Kartë Dhuratë 50 EUR", p.NameFor(shared.LanguageAlbanian))
	assert.Equal(t, "Gift Card 50 EUR", p.NameFor(shared.LanguageEnglish))
}

func TestProductStock(t *testing.T) {
	newProduct := func(t *testing.T) *Product {
		t.Helper()
		p, err := NewProduct("SSD 1TB", "", CategoryComponents, valueobject.NewMoneyEURFromFloat(89.90), 3)
		require.NoError(t, err)
		return p
	}

	t.Run("adjust up and down", func(t *testing.T) {
		p := newProduct(t)
		require.NoError(t, p.AdjustStock(5))
		assert.Equal(t, 8, p.Stock)
		require.NoError(t, p.AdjustStock(-8))
		assert.Equal(t, 0, p.Stock)
	})

	t.Run("cannot go negative", func(t *testing.T) {
		p := newProduct(t)
		assert.Error(t, p.AdjustStock(-4))
		assert.Equal(t, 3, p.Stock)
	})
}

func TestProductUpdates(t *testing.T) {
	p, err := NewProduct("Keyboard", "", CategoryPeripherals, valueobject.NewMoneyEURFromFloat(79), 10)
	require.NoError(t, err)

	t.Run("set price", func(t *testing.T) {
		require.NoError(t, p.SetPrice(valueobject.NewMoneyEURFromFloat(69)))
		assert.Equal(t, "69.00", p.GetPriceMoney().StringFixed(2))

		neg, err := valueobject.NewMoneyEURFromString("-1")
		require.NoError(t, err)
		assert.Error(t, p.SetPrice(neg))
	})

	t.Run("activate toggles", func(t *testing.T) {
		p.Deactivate()
		assert.False(t, p.IsActive)
		p.Activate()
		assert.True(t, p.IsActive)
	})
}
