package catalog_test

import (
	"testing"

	"foodcourt/internal/core/domain/model/catalog"
	"foodcourt/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestMenuItem_EffectivePrice(t *testing.T) {
	t.Run("uses_list_price_without_discount", func(t *testing.T) {
		item := catalog.MenuItem{Price: money(t, "300")}

		assert.True(t, item.EffectivePrice().IsEqual(money(t, "300")))
	})

	t.Run("uses_discounted_price_when_set", func(t *testing.T) {
		discounted := money(t, "250")
		item := catalog.MenuItem{Price: money(t, "300"), DiscountedPrice: &discounted}

		assert.True(t, item.EffectivePrice().IsEqual(discounted))
	})

	t.Run("zero_discount_falls_back_to_list_price", func(t *testing.T) {
		zero := kernel.ZeroMoney()
		item := catalog.MenuItem{Price: money(t, "300"), DiscountedPrice: &zero}

		assert.True(t, item.EffectivePrice().IsEqual(money(t, "300")))
	})
}
