package services

import (
	"math"
	"time"

	"shop/models"

	"github.com/shopspring/decimal"
)

// PriceBreakdown là cấu trúc giá trả về cho client khi hiển thị sản phẩm
type PriceBreakdown struct {
	OriginalPrice      float64 `json:"originalPrice"`
	FinalPrice         float64 `json:"finalPrice"`
	DiscountAmount     float64 `json:"discountAmount"`
	DiscountPercentage int     `json:"discountPercentage"`
	HasDiscount        bool    `json:"hasDiscount"`
}

// BuildPricing tính breakdown giá cho sản phẩm từ tập rule đang bật.
// Tiền giữ 2 chữ số thập phân, phần trăm hiển thị làm tròn về số nguyên.
func BuildPricing(product *models.Product, rules []models.DiscountRule, now time.Time) PriceBreakdown {
	percentage, _ := BestDiscount(product, rules, now)
	finalPrice := FinalPrice(product.Price, percentage)

	original := decimal.NewFromFloat(product.Price).Round(2)
	final := decimal.NewFromFloat(finalPrice)
	amount := original.Sub(final)
	if amount.IsNegative() {
		amount = decimal.Zero
		final = original
	}

	originalF, _ := original.Float64()
	finalF, _ := final.Float64()
	amountF, _ := amount.Float64()

	displayPercentage := 0
	if amountF > 0 && originalF > 0 {
		displayPercentage = int(math.Round(amountF / originalF * 100))
	}

	return PriceBreakdown{
		OriginalPrice:      originalF,
		FinalPrice:         finalF,
		DiscountAmount:     amountF,
		DiscountPercentage: displayPercentage,
		HasDiscount:        amountF > 0,
	}
}
