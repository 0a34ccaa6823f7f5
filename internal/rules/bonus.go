package rules

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/chatscai10/employee-management-system-sub002/internal/model"
	pkgerrors "github.com/chatscai10/employee-management-system-sub002/pkg/errors"
)

// ErrUnknownBonusType 獎金類別不是平日獎金或假日獎金
var ErrUnknownBonusType = errors.New("未知的獎金類別")

// IncomeLine 單行收入（提交 DTO 轉換後的型別）
type IncomeLine struct {
	Category string
	Amount   decimal.Decimal
}

// BonusResult 獎金計算結果
type BonusResult struct {
	TotalIncome decimal.Decimal `json:"total_income"`
	BonusAmount decimal.Decimal `json:"bonus_amount"`
	IsQualified bool            `json:"is_qualified"`
}

// CalculateBonus 依收入明細與獎金公式計算當日獎金
//
// 每行收入先扣除類別服務費：adjusted = amount * (1 - feeRate)，未列出的
// 類別費率為 0。加總後依類別套用門檻：
//   - 平日獎金：total > threshold 才給（嚴格大於）
//   - 假日獎金：total >= threshold 即給（含等於）
//
// 兩者的比較方式不同是沿用的營運規則，勿統一。金額皆四捨五入到分。
func CalculateBonus(lines []IncomeLine, bonusType string, settings *model.OperationSettings) (BonusResult, error) {
	if len(lines) == 0 {
		return BonusResult{}, pkgerrors.NewValidation("income_items", "收入明細不得為空")
	}

	total := decimal.Zero
	for _, line := range lines {
		if line.Category == "" {
			return BonusResult{}, pkgerrors.NewValidation("category", "收入類別不得為空")
		}
		if line.Amount.IsNegative() {
			return BonusResult{}, pkgerrors.NewValidation("amount", "收入金額不得為負數")
		}
		feeRate := decimal.NewFromFloat(settings.ServiceFees[line.Category])
		adjusted := line.Amount.Mul(decimal.NewFromInt(1).Sub(feeRate))
		total = total.Add(adjusted)
	}
	total = total.Round(2)

	var threshold, rate decimal.Decimal
	var qualified bool
	switch bonusType {
	case model.BonusTypeWeekday:
		threshold = decimal.NewFromFloat(settings.WeekdayBonusThreshold)
		rate = decimal.NewFromFloat(settings.WeekdayBonusRate)
		qualified = total.GreaterThan(threshold)
	case model.BonusTypeHoliday:
		threshold = decimal.NewFromFloat(settings.HolidayBonusThreshold)
		rate = decimal.NewFromFloat(settings.HolidayBonusRate)
		qualified = total.GreaterThanOrEqual(threshold)
	default:
		return BonusResult{}, ErrUnknownBonusType
	}

	bonus := decimal.Zero
	if qualified {
		bonus = total.Mul(rate).Round(2)
	}

	return BonusResult{
		TotalIncome: total,
		BonusAmount: bonus,
		IsQualified: bonus.IsPositive(),
	}, nil
}
