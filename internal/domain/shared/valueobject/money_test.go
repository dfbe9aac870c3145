package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyConstruction(t *testing.T) {
	t.Run("default currency is EUR", func(t *testing.T) {
		m := NewMoneyEUR(decimal.NewFromInt(10))
		assert.Equal(t, EUR, m.Currency())
		assert.Equal(t, DefaultCurrency, m.Currency())
	})

	t.Run("from string", func(t *testing.T) {
		m, err := NewMoneyEURFromString("19.99")
		require.NoError(t, err)
		assert.Equal(t, "19.99", m.StringFixed(2))
	})

	t.Run("from invalid string", func(t *testing.T) {
		_, err := NewMoneyEURFromString("abc")
		assert.Error(t, err)
	})

	t.Run("empty currency rejected", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromInt(1), "")
		assert.Error(t, err)
	})
}

func TestMoneyArithmetic(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		a := NewMoneyEURFromFloat(10.50)
		b := NewMoneyEURFromFloat(4.50)

		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.Equal(t, "15.00", sum.StringFixed(2))
	})

	t.Run("add mismatched currencies", func(t *testing.T) {
		eur := NewMoneyEUR(decimal.NewFromInt(10))
		lek, err := NewMoney(decimal.NewFromInt(1000), ALL)
		require.NoError(t, err)

		_, err = eur.Add(lek)
		assert.Error(t, err)
	})

	t.Run("subtract", func(t *testing.T) {
		a := NewMoneyEURFromFloat(10)
		b := NewMoneyEURFromFloat(3.25)

		diff, err := a.Subtract(b)
		require.NoError(t, err)
		assert.Equal(t, "6.75", diff.StringFixed(2))
	})

	t.Run("multiply by int", func(t *testing.T) {
		m := NewMoneyEURFromFloat(9.99)
		assert.Equal(t, "29.97", m.MultiplyByInt(3).StringFixed(2))
	})

	t.Run("percentage", func(t *testing.T) {
		m := NewMoneyEUR(decimal.NewFromInt(200))
		vat := m.CalculatePercentage(decimal.NewFromInt(20))
		assert.Equal(t, "40.00", vat.StringFixed(2))
	})

	t.Run("round to cents", func(t *testing.T) {
		m, err := NewMoneyEURFromString("1.998")
		require.NoError(t, err)
		assert.Equal(t, "2.00", m.Round(2).StringFixed(2))
	})
}

func TestMoneyComparison(t *testing.T) {
	a := NewMoneyEURFromFloat(5)
	b := NewMoneyEURFromFloat(10)

	t.Run("equals", func(t *testing.T) {
		assert.True(t, a.Equals(NewMoneyEURFromFloat(5)))
		assert.False(t, a.Equals(b))
	})

	t.Run("less and greater", func(t *testing.T) {
		less, err := a.LessThan(b)
		require.NoError(t, err)
		assert.True(t, less)

		greater, err := b.GreaterThan(a)
		require.NoError(t, err)
		assert.True(t, greater)
	})

	t.Run("sign checks", func(t *testing.T) {
		assert.True(t, ZeroEUR().IsZero())
		assert.True(t, b.IsPositive())
		neg, err := NewMoneyEURFromString("-1")
		require.NoError(t, err)
		assert.True(t, neg.IsNegative())
	})
}

func TestMoneyJSON(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		m := NewMoneyEURFromFloat(42.50)

		data, err := json.Marshal(m)
		require.NoError(t, err)

		var decoded Money
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.True(t, m.Equals(decoded))
	})

	t.Run("missing currency defaults to EUR", func(t *testing.T) {
		var m Money
		require.NoError(t, json.Unmarshal([]byte(`{"amount":"12.34"}`), &m))
		assert.Equal(t, EUR, m.Currency())
		assert.Equal(t, "12.34", m.StringFixed(2))
	})
}

func TestMoneySQL(t *testing.T) {
	t.Run("value stores the amount", func(t *testing.T) {
		m := NewMoneyEURFromFloat(15.75)
		v, err := m.Value()
		require.NoError(t, err)
		assert.Equal(t, "15.75", v)
	})

	t.Run("scan string and bytes", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan("99.90"))
		assert.Equal(t, "99.90", m.StringFixed(2))
		assert.Equal(t, EUR, m.Currency())

		var n Money
		require.NoError(t, n.Scan([]byte("7.00")))
		assert.Equal(t, "7.00", n.StringFixed(2))
	})

	t.Run("scan nil yields zero", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan(nil))
		assert.True(t, m.IsZero())
	})
}
