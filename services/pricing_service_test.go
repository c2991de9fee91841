package services

import (
	"testing"
	"time"

	"shop/models"
)

func TestBuildPricingNoDiscount(t *testing.T) {
	product := &models.Product{ID: 1, Price: 100.00}

	breakdown := BuildPricing(product, nil, time.Now())

	if breakdown.OriginalPrice != 100.00 {
		t.Errorf("OriginalPrice = %v, want 100.00", breakdown.OriginalPrice)
	}
	if breakdown.FinalPrice != 100.00 {
		t.Errorf("FinalPrice = %v, want 100.00", breakdown.FinalPrice)
	}
	if breakdown.DiscountAmount != 0 {
		t.Errorf("DiscountAmount = %v, want 0", breakdown.DiscountAmount)
	}
	if breakdown.DiscountPercentage != 0 {
		t.Errorf("DiscountPercentage = %v, want 0", breakdown.DiscountPercentage)
	}
	if breakdown.HasDiscount {
		t.Error("HasDiscount = true, want false")
	}
}

func TestBuildPricingGlobalTenPercent(t *testing.T) {
	product := &models.Product{ID: 1, Price: 100.00}
	rules := []models.DiscountRule{
		{Type: models.RuleTypeGlobal, DiscountPercentage: 10},
	}

	breakdown := BuildPricing(product, rules, time.Now())

	if breakdown.FinalPrice != 90.00 {
		t.Errorf("FinalPrice = %v, want 90.00", breakdown.FinalPrice)
	}
	if breakdown.DiscountPercentage != 10 {
		t.Errorf("DiscountPercentage = %v, want 10", breakdown.DiscountPercentage)
	}
	if !breakdown.HasDiscount {
		t.Error("HasDiscount = false, want true")
	}
}

func TestBuildPricingWithDiscount(t *testing.T) {
	product := &models.Product{ID: 1, Price: 100.00}
	rules := []models.DiscountRule{
		{Type: models.RuleTypeGlobal, DiscountPercentage: 25},
	}

	breakdown := BuildPricing(product, rules, time.Now())

	if breakdown.FinalPrice != 75.00 {
		t.Errorf("FinalPrice = %v, want 75.00", breakdown.FinalPrice)
	}
	if breakdown.DiscountAmount != 25.00 {
		t.Errorf("DiscountAmount = %v, want 25.00", breakdown.DiscountAmount)
	}
	if breakdown.DiscountPercentage != 25 {
		t.Errorf("DiscountPercentage = %v, want 25", breakdown.DiscountPercentage)
	}
	if !breakdown.HasDiscount {
		t.Error("HasDiscount = false, want true")
	}
}

func TestBuildPricingDisplayPercentageRounded(t *testing.T) {
	product := &models.Product{ID: 1, Price: 19.99}
	rules := []models.DiscountRule{
		{Type: models.RuleTypeGlobal, DiscountPercentage: 33.33},
	}

	breakdown := BuildPricing(product, rules, time.Now())

	// 19.99 * 0.6667 = 13.327333 -> 13.33, giảm 6.66, hiển thị 33%
	if breakdown.FinalPrice != 13.33 {
		t.Errorf("FinalPrice = %v, want 13.33", breakdown.FinalPrice)
	}
	if breakdown.DiscountPercentage != 33 {
		t.Errorf("DiscountPercentage = %v, want 33", breakdown.DiscountPercentage)
	}
}

func TestBuildPricingZeroPriceProduct(t *testing.T) {
	product := &models.Product{ID: 1, Price: 0}
	rules := []models.DiscountRule{
		{Type: models.RuleTypeGlobal, DiscountPercentage: 50},
	}

	breakdown := BuildPricing(product, rules, time.Now())

	if breakdown.FinalPrice != 0 || breakdown.HasDiscount {
		t.Errorf("sản phẩm giá 0: breakdown = %+v", breakdown)
	}
}
