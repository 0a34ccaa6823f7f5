package rules

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatscai10/employee-management-system-sub002/internal/model"
	pkgerrors "github.com/chatscai10/employee-management-system-sub002/pkg/errors"
)

func bonusSettings() *model.OperationSettings {
	return &model.OperationSettings{
		WeekdayBonusThreshold: 13000,
		WeekdayBonusRate:      0.30,
		HolidayBonusThreshold: 13000,
		HolidayBonusRate:      0.38,
		ServiceFees:           model.FeeMap{"熊貓": 0.35, "UberEats": 0.35},
	}
}

func line(category string, amount float64) IncomeLine {
	return IncomeLine{Category: category, Amount: decimal.NewFromFloat(amount)}
}

func TestCalculateBonus_ServiceFeeDeduction(t *testing.T) {
	// 熊貓 10000 扣 35% 服務費 → 6500，未達平日門檻 13000 → 獎金 0
	res, err := CalculateBonus([]IncomeLine{line("熊貓", 10000)}, model.BonusTypeWeekday, bonusSettings())
	require.NoError(t, err)
	assert.True(t, res.TotalIncome.Equal(decimal.NewFromInt(6500)), "total = %s", res.TotalIncome)
	assert.True(t, res.BonusAmount.IsZero())
	assert.False(t, res.IsQualified)
}

func TestCalculateBonus_WeekdayStrictThreshold(t *testing.T) {
	settings := bonusSettings()

	// 恰好等於門檻：平日不給
	res, err := CalculateBonus([]IncomeLine{line("現場", 13000)}, model.BonusTypeWeekday, settings)
	require.NoError(t, err)
	assert.True(t, res.BonusAmount.IsZero())
	assert.False(t, res.IsQualified)

	// 超過門檻一元即給
	res, err = CalculateBonus([]IncomeLine{line("現場", 13001)}, model.BonusTypeWeekday, settings)
	require.NoError(t, err)
	assert.True(t, res.BonusAmount.Equal(decimal.NewFromFloat(3900.30)), "bonus = %s", res.BonusAmount)
	assert.True(t, res.IsQualified)
}

func TestCalculateBonus_HolidayInclusiveThreshold(t *testing.T) {
	// 恰好等於門檻：假日即給（與平日的嚴格大於不同）
	res, err := CalculateBonus([]IncomeLine{line("現場", 13000)}, model.BonusTypeHoliday, bonusSettings())
	require.NoError(t, err)
	assert.True(t, res.BonusAmount.Equal(decimal.NewFromInt(4940)), "bonus = %s", res.BonusAmount)
	assert.True(t, res.IsQualified)
}

func TestCalculateBonus_MixedCategories(t *testing.T) {
	// 現場 10000（費率 0）+ 熊貓 10000（費率 0.35）= 16500 > 13000
	lines := []IncomeLine{line("現場", 10000), line("熊貓", 10000)}
	res, err := CalculateBonus(lines, model.BonusTypeWeekday, bonusSettings())
	require.NoError(t, err)
	assert.True(t, res.TotalIncome.Equal(decimal.NewFromInt(16500)))
	assert.True(t, res.BonusAmount.Equal(decimal.NewFromInt(4950)))
	assert.True(t, res.IsQualified)
}

func TestCalculateBonus_MonotonicInIncome(t *testing.T) {
	settings := bonusSettings()
	prev := decimal.Zero
	for _, amount := range []float64{5000, 13000, 13001, 20000, 50000} {
		res, err := CalculateBonus([]IncomeLine{line("現場", amount)}, model.BonusTypeWeekday, settings)
		require.NoError(t, err)
		assert.True(t, res.BonusAmount.GreaterThanOrEqual(prev),
			"收入 %v 的獎金 %s 低於較小收入的獎金 %s", amount, res.BonusAmount, prev)
		prev = res.BonusAmount
	}
}

func TestCalculateBonus_InvalidInput(t *testing.T) {
	settings := bonusSettings()

	_, err := CalculateBonus(nil, model.BonusTypeWeekday, settings)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))

	_, err = CalculateBonus([]IncomeLine{line("現場", -1)}, model.BonusTypeWeekday, settings)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))

	_, err = CalculateBonus([]IncomeLine{line("現場", 100)}, "季度獎金", settings)
	assert.ErrorIs(t, err, ErrUnknownBonusType)
}
