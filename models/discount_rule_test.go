package models

import (
	"testing"
	"time"
)

func uintPtr(v uint) *uint           { return &v }
func floatPtr(v float64) *float64    { return &v }
func timePtr(v time.Time) *time.Time { return &v }

func TestDiscountRuleValidateType(t *testing.T) {
	valid := []string{RuleTypeGlobal, RuleTypeCategory, RuleTypeProduct, RuleTypePriceMin}
	for _, typ := range valid {
		rule := DiscountRule{Type: typ}
		if err := rule.ValidateType(); err != nil {
			t.Errorf("ValidateType(%s) = %v, want nil", typ, err)
		}
	}

	invalid := DiscountRule{Type: "BOGOF"}
	if err := invalid.ValidateType(); err == nil {
		t.Error("ValidateType(BOGOF) = nil, want error")
	}
}

func TestDiscountRuleSpecificityOrder(t *testing.T) {
	product := DiscountRule{Type: RuleTypeProduct}
	category := DiscountRule{Type: RuleTypeCategory}
	priceMin := DiscountRule{Type: RuleTypePriceMin}
	global := DiscountRule{Type: RuleTypeGlobal}

	if !(product.Specificity() > category.Specificity() &&
		category.Specificity() > priceMin.Specificity() &&
		priceMin.Specificity() > global.Specificity()) {
		t.Errorf("thứ tự ưu tiên sai: PRODUCT=%d CATEGORY=%d PRICE_MIN=%d GLOBAL=%d",
			product.Specificity(), category.Specificity(), priceMin.Specificity(), global.Specificity())
	}
}

func TestDiscountRuleActiveInWindow(t *testing.T) {
	now := time.Now()

	unbounded := DiscountRule{}
	if !unbounded.ActiveInWindow(now) {
		t.Error("rule không giới hạn thời gian phải luôn hiệu lực")
	}

	started := DiscountRule{StartsAt: timePtr(now.Add(-time.Hour))}
	if !started.ActiveInWindow(now) {
		t.Error("rule đã bắt đầu phải hiệu lực")
	}

	future := DiscountRule{StartsAt: timePtr(now.Add(time.Hour))}
	if future.ActiveInWindow(now) {
		t.Error("rule chưa bắt đầu không được hiệu lực")
	}

	expired := DiscountRule{EndsAt: timePtr(now.Add(-time.Hour))}
	if expired.ActiveInWindow(now) {
		t.Error("rule đã kết thúc không được hiệu lực")
	}

	inside := DiscountRule{
		StartsAt: timePtr(now.Add(-time.Hour)),
		EndsAt:   timePtr(now.Add(time.Hour)),
	}
	if !inside.ActiveInWindow(now) {
		t.Error("rule trong khoảng hiệu lực phải được áp dụng")
	}
}

func TestDiscountRuleMatches(t *testing.T) {
	product := &Product{ID: 7, Price: 120.00, CategoryID: uintPtr(3)}

	tests := []struct {
		name string
		rule DiscountRule
		want bool
	}{
		{"global luôn khớp", DiscountRule{Type: RuleTypeGlobal}, true},
		{"đúng danh mục", DiscountRule{Type: RuleTypeCategory, CategoryID: uintPtr(3)}, true},
		{"sai danh mục", DiscountRule{Type: RuleTypeCategory, CategoryID: uintPtr(4)}, false},
		{"đúng sản phẩm", DiscountRule{Type: RuleTypeProduct, ProductID: uintPtr(7)}, true},
		{"sai sản phẩm", DiscountRule{Type: RuleTypeProduct, ProductID: uintPtr(8)}, false},
		{"giá trên ngưỡng", DiscountRule{Type: RuleTypePriceMin, PriceMin: floatPtr(100)}, true},
		{"giá bằng ngưỡng", DiscountRule{Type: RuleTypePriceMin, PriceMin: floatPtr(120)}, true},
		{"giá dưới ngưỡng", DiscountRule{Type: RuleTypePriceMin, PriceMin: floatPtr(120.01)}, false},
		{"rule CATEGORY thiếu categoryId", DiscountRule{Type: RuleTypeCategory}, false},
		{"rule PRODUCT thiếu productId", DiscountRule{Type: RuleTypeProduct}, false},
		{"rule PRICE_MIN thiếu priceMin", DiscountRule{Type: RuleTypePriceMin}, false},
	}

	for _, tt := range tests {
		if got := tt.rule.Matches(product); got != tt.want {
			t.Errorf("%s: Matches = %v, want %v", tt.name, got, tt.want)
		}
	}
}
