package services

import (
	"time"

	"shop/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetActiveDiscountRules lấy toàn bộ rule đang bật từ cơ sở dữ liệu.
// Rule hết hạn vẫn nằm trong kho, việc lọc theo thời gian do evaluator đảm nhận.
func GetActiveDiscountRules(db *gorm.DB) ([]models.DiscountRule, error) {
	var rules []models.DiscountRule
	if err := db.Where("active = ?", true).Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

// BestDiscount chọn mức giảm giá tốt nhất cho sản phẩm trong tập rule đang bật.
// Mỗi rule qua hai bước lọc: khoảng thời gian hiệu lực rồi đến điều kiện theo loại.
// Trong các rule khớp, lấy mức giảm lớn nhất; nếu bằng nhau thì ưu tiên rule
// cụ thể hơn (PRODUCT > CATEGORY > PRICE_MIN > GLOBAL).
// Trả về 0 và nil nếu không rule nào khớp. Hàm không có side effect.
func BestDiscount(product *models.Product, rules []models.DiscountRule, now time.Time) (float64, *models.DiscountRule) {
	var winner *models.DiscountRule

	for i := range rules {
		rule := &rules[i]

		if !rule.ActiveInWindow(now) {
			continue
		}
		if !rule.Matches(product) {
			continue
		}

		if winner == nil ||
			rule.DiscountPercentage > winner.DiscountPercentage ||
			(rule.DiscountPercentage == winner.DiscountPercentage && rule.Specificity() > winner.Specificity()) {
			winner = rule
		}
	}

	if winner == nil {
		return 0, nil
	}
	return clampPercentage(winner.DiscountPercentage), winner
}

// FinalPrice tính giá sau giảm, làm tròn 2 chữ số thập phân và không âm
func FinalPrice(price float64, percentage float64) float64 {
	percentage = clampPercentage(percentage)

	priceDec := decimal.NewFromFloat(price)
	remaining := decimal.NewFromFloat(100 - percentage)
	final := priceDec.Mul(remaining).Div(decimal.NewFromInt(100)).Round(2)

	if final.IsNegative() {
		return 0
	}
	result, _ := final.Float64()
	return result
}

// clampPercentage giữ phần trăm giảm giá trong khoảng [0, 100]
func clampPercentage(percentage float64) float64 {
	if percentage < 0 {
		return 0
	}
	if percentage > 100 {
		return 100
	}
	return percentage
}
