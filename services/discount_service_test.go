package services

import (
	"testing"
	"time"

	"shop/models"
)

func uintPtr(v uint) *uint           { return &v }
func floatPtr(v float64) *float64    { return &v }
func timePtr(v time.Time) *time.Time { return &v }

func testProduct() *models.Product {
	return &models.Product{
		ID:         1,
		Name:       "Áo thun",
		Price:      100.00,
		CategoryID: uintPtr(5),
	}
}

func TestBestDiscountGlobalRule(t *testing.T) {
	product := testProduct()
	rules := []models.DiscountRule{
		{Type: models.RuleTypeGlobal, DiscountPercentage: 10, Active: true},
	}

	pct, winner := BestDiscount(product, rules, time.Now())
	if pct != 10 {
		t.Fatalf("pct = %v, want 10", pct)
	}
	if winner == nil {
		t.Fatal("winner = nil, want GLOBAL rule")
	}

	final := FinalPrice(product.Price, pct)
	if final != 90.00 {
		t.Errorf("FinalPrice = %v, want 90.00", final)
	}
}

func TestBestDiscountPicksHighestPercentage(t *testing.T) {
	product := testProduct()
	rules := []models.DiscountRule{
		{Type: models.RuleTypeGlobal, DiscountPercentage: 10},
		{Type: models.RuleTypeProduct, ProductID: uintPtr(1), DiscountPercentage: 25},
	}

	pct, winner := BestDiscount(product, rules, time.Now())
	if pct != 25 {
		t.Fatalf("pct = %v, want 25", pct)
	}
	if winner.Type != models.RuleTypeProduct {
		t.Errorf("winner.Type = %s, want PRODUCT", winner.Type)
	}

	if final := FinalPrice(product.Price, pct); final != 75.00 {
		t.Errorf("FinalPrice = %v, want 75.00", final)
	}
}

func TestBestDiscountTieBreakBySpecificity(t *testing.T) {
	product := testProduct()
	rules := []models.DiscountRule{
		{Type: models.RuleTypeGlobal, DiscountPercentage: 20},
		{Type: models.RuleTypePriceMin, PriceMin: floatPtr(50), DiscountPercentage: 20},
		{Type: models.RuleTypeCategory, CategoryID: uintPtr(5), DiscountPercentage: 20},
		{Type: models.RuleTypeProduct, ProductID: uintPtr(1), DiscountPercentage: 20},
	}

	_, winner := BestDiscount(product, rules, time.Now())
	if winner.Type != models.RuleTypeProduct {
		t.Errorf("winner.Type = %s, want PRODUCT", winner.Type)
	}
}

func TestBestDiscountIgnoresFutureRule(t *testing.T) {
	product := testProduct()
	now := time.Now()
	rules := []models.DiscountRule{
		{
			Type:               models.RuleTypeGlobal,
			DiscountPercentage: 50,
			StartsAt:           timePtr(now.Add(time.Hour)),
		},
	}

	pct, winner := BestDiscount(product, rules, now)
	if pct != 0 || winner != nil {
		t.Errorf("rule chưa bắt đầu vẫn được áp dụng: pct=%v winner=%v", pct, winner)
	}
}

func TestBestDiscountIgnoresExpiredRule(t *testing.T) {
	product := testProduct()
	now := time.Now()
	rules := []models.DiscountRule{
		{
			Type:               models.RuleTypeGlobal,
			DiscountPercentage: 50,
			EndsAt:             timePtr(now.Add(-time.Hour)),
		},
	}

	pct, winner := BestDiscount(product, rules, now)
	if pct != 0 || winner != nil {
		t.Errorf("rule đã hết hạn vẫn được áp dụng: pct=%v winner=%v", pct, winner)
	}
}

func TestBestDiscountPriceMinBoundary(t *testing.T) {
	rules := []models.DiscountRule{
		{Type: models.RuleTypePriceMin, PriceMin: floatPtr(50), DiscountPercentage: 10},
	}
	now := time.Now()

	atBoundary := &models.Product{ID: 2, Price: 50.00}
	pct, _ := BestDiscount(atBoundary, rules, now)
	if pct != 10 {
		t.Errorf("giá 50.00 với priceMin 50: pct = %v, want 10", pct)
	}

	belowBoundary := &models.Product{ID: 3, Price: 49.99}
	pct, winner := BestDiscount(belowBoundary, rules, now)
	if pct != 0 || winner != nil {
		t.Errorf("giá 49.99 với priceMin 50: pct = %v, want 0", pct)
	}
}

func TestBestDiscountNoMatch(t *testing.T) {
	product := &models.Product{ID: 9, Price: 30.00}
	rules := []models.DiscountRule{
		{Type: models.RuleTypeProduct, ProductID: uintPtr(1), DiscountPercentage: 25},
		{Type: models.RuleTypeCategory, CategoryID: uintPtr(5), DiscountPercentage: 15},
		{Type: models.RuleTypePriceMin, PriceMin: floatPtr(50), DiscountPercentage: 10},
	}

	pct, winner := BestDiscount(product, rules, time.Now())
	if pct != 0 || winner != nil {
		t.Errorf("không rule nào khớp nhưng pct = %v, winner = %v", pct, winner)
	}
}

func TestBestDiscountCategoryNilProductCategory(t *testing.T) {
	product := &models.Product{ID: 4, Price: 80.00}
	rules := []models.DiscountRule{
		{Type: models.RuleTypeCategory, CategoryID: uintPtr(5), DiscountPercentage: 15},
	}

	if pct, _ := BestDiscount(product, rules, time.Now()); pct != 0 {
		t.Errorf("sản phẩm không có danh mục vẫn khớp rule CATEGORY: pct = %v", pct)
	}
}

func TestFinalPriceRounding(t *testing.T) {
	// 19.99 * 0.9 = 17.991, làm tròn còn 17.99
	if final := FinalPrice(19.99, 10); final != 17.99 {
		t.Errorf("FinalPrice(19.99, 10) = %v, want 17.99", final)
	}
}

func TestFinalPriceClampsPercentage(t *testing.T) {
	if final := FinalPrice(100.00, 150); final != 0 {
		t.Errorf("FinalPrice với 150%% = %v, want 0", final)
	}
	if final := FinalPrice(100.00, -10); final != 100.00 {
		t.Errorf("FinalPrice với -10%% = %v, want 100.00", final)
	}
}

func TestFinalPriceNeverExceedsOriginal(t *testing.T) {
	prices := []float64{0, 0.01, 19.99, 100, 12345.67}
	percentages := []float64{0, 5, 33.33, 99.99, 100}

	for _, price := range prices {
		for _, pct := range percentages {
			final := FinalPrice(price, pct)
			if final > price {
				t.Errorf("FinalPrice(%v, %v) = %v vượt quá giá gốc", price, pct, final)
			}
			if final < 0 {
				t.Errorf("FinalPrice(%v, %v) = %v âm", price, pct, final)
			}
		}
	}
}
