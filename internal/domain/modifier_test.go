package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"payflow/pkg/e"
)

func TestAmountsModifier_NoModifications(t *testing.T) {
	original, _ := NewAmountsWithAdditional(1000, "EUR", map[string]int64{AmountTip: 100})

	modifier := NewAmountsModifier(original)
	assert.False(t, modifier.HasModifications())

	built := modifier.Build()
	assert.True(t, original.Equivalent(built))
	assert.Empty(t, built.OriginalCurrency)
	assert.Zero(t, built.ExchangeRate)
}

func TestAmountsModifier_NegativeInputsIgnored(t *testing.T) {
	original, _ := NewAmounts(1000, "EUR")

	modifier := NewAmountsModifier(original)
	modifier.UpdateBaseAmount(-5)
	modifier.SetAdditionalAmount(AmountTip, -100)

	assert.False(t, modifier.HasModifications())
	built := modifier.Build()
	assert.Equal(t, int64(1000), built.BaseAmount)
	assert.False(t, built.HasAdditional(AmountTip))
}

func TestAmountsModifier_UpdateAmounts(t *testing.T) {
	original, _ := NewAmounts(1000, "EUR")

	modifier := NewAmountsModifier(original)
	modifier.UpdateBaseAmount(1200).SetAdditionalAmount(AmountSurcharge, 30)

	assert.True(t, modifier.HasModifications())
	built := modifier.Build()
	assert.Equal(t, int64(1200), built.BaseAmount)
	assert.Equal(t, int64(30), built.Additional(AmountSurcharge))
	assert.Equal(t, "EUR", built.Currency)
}

func TestAmountsModifier_ChangeCurrency(t *testing.T) {
	original, _ := NewAmountsWithAdditional(1000, "EUR", map[string]int64{AmountTip: 100})

	built := NewAmountsModifier(original).ChangeCurrency("SEK", 11.5).Build()

	assert.Equal(t, "SEK", built.Currency)
	assert.Equal(t, "EUR", built.OriginalCurrency)
	assert.Equal(t, 11.5, built.ExchangeRate)
	assert.Equal(t, int64(11500), built.BaseAmount)
	assert.Equal(t, int64(1150), built.Additional(AmountTip))
}

func TestAmountsModifier_BaseFraction(t *testing.T) {
	testCases := []struct {
		name        string
		fraction    float64
		expectErr   bool
		expectedTip int64
	}{
		{name: "ten percent", fraction: 0.1, expectedTip: 100},
		{name: "floors the result", fraction: 0.333, expectedTip: 333},
		{name: "zero", fraction: 0, expectedTip: 0},
		{name: "full base", fraction: 1, expectedTip: 1000},
		{name: "negative rejected", fraction: -0.1, expectErr: true},
		{name: "above one rejected", fraction: 1.01, expectErr: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			original, _ := NewAmounts(1000, "EUR")
			modifier := NewAmountsModifier(original)

			err := modifier.SetAdditionalAmountAsBaseFraction(AmountTip, testCase.fraction)
			if testCase.expectErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, e.ErrInvalidArgument))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, testCase.expectedTip, modifier.Build().Additional(AmountTip))
		})
	}
}
