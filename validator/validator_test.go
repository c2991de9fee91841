package validator

import (
	"testing"
	"time"

	"shop/models"
)

func uintPtr(v uint) *uint           { return &v }
func floatPtr(v float64) *float64    { return &v }
func timePtr(v time.Time) *time.Time { return &v }

func TestValidateDiscountRuleValid(t *testing.T) {
	rules := []models.DiscountRule{
		{Name: "Sale toàn shop", Type: models.RuleTypeGlobal, DiscountPercentage: 10},
		{Name: "Sale danh mục", Type: models.RuleTypeCategory, CategoryID: uintPtr(1), DiscountPercentage: 15},
		{Name: "Sale sản phẩm", Type: models.RuleTypeProduct, ProductID: uintPtr(2), DiscountPercentage: 25},
		{Name: "Sale đơn lớn", Type: models.RuleTypePriceMin, PriceMin: floatPtr(500), DiscountPercentage: 5},
	}

	for _, rule := range rules {
		if err := ValidateDiscountRule(&rule); err != nil {
			t.Errorf("rule %s hợp lệ nhưng bị từ chối: %v", rule.Name, err)
		}
	}
}

func TestValidateDiscountRuleMissingTypeFields(t *testing.T) {
	tests := []struct {
		name string
		rule models.DiscountRule
	}{
		{"CATEGORY thiếu categoryId", models.DiscountRule{Name: "x", Type: models.RuleTypeCategory, DiscountPercentage: 10}},
		{"PRODUCT thiếu productId", models.DiscountRule{Name: "x", Type: models.RuleTypeProduct, DiscountPercentage: 10}},
		{"PRICE_MIN thiếu priceMin", models.DiscountRule{Name: "x", Type: models.RuleTypePriceMin, DiscountPercentage: 10}},
		{"PRICE_MIN âm", models.DiscountRule{Name: "x", Type: models.RuleTypePriceMin, PriceMin: floatPtr(-1), DiscountPercentage: 10}},
	}

	for _, tt := range tests {
		if err := ValidateDiscountRule(&tt.rule); err == nil {
			t.Errorf("%s: muốn lỗi validate, nhận nil", tt.name)
		}
	}
}

func TestValidateDiscountRuleBadPercentage(t *testing.T) {
	for _, pct := range []float64{0, -5, 100.01, 150} {
		rule := models.DiscountRule{Name: "x", Type: models.RuleTypeGlobal, DiscountPercentage: pct}
		if err := ValidateDiscountRule(&rule); err == nil {
			t.Errorf("DiscountPercentage = %v: muốn lỗi validate, nhận nil", pct)
		}
	}
}

func TestValidateDiscountRuleBadWindow(t *testing.T) {
	now := time.Now()
	rule := models.DiscountRule{
		Name:               "x",
		Type:               models.RuleTypeGlobal,
		DiscountPercentage: 10,
		StartsAt:           timePtr(now),
		EndsAt:             timePtr(now.Add(-time.Hour)),
	}
	if err := ValidateDiscountRule(&rule); err == nil {
		t.Error("EndsAt trước StartsAt: muốn lỗi validate, nhận nil")
	}
}

func TestValidateDiscountRuleBadType(t *testing.T) {
	rule := models.DiscountRule{Name: "x", Type: "FLASH", DiscountPercentage: 10}
	if err := ValidateDiscountRule(&rule); err == nil {
		t.Error("loại rule không hợp lệ: muốn lỗi validate, nhận nil")
	}
}

func TestValidateProduct(t *testing.T) {
	valid := models.Product{Name: "Áo thun", Price: 99.99, Stock: 5}
	if err := ValidateProduct(&valid); err != nil {
		t.Errorf("sản phẩm hợp lệ bị từ chối: %v", err)
	}

	noName := models.Product{Price: 10}
	if err := ValidateProduct(&noName); err == nil {
		t.Error("sản phẩm không tên: muốn lỗi validate")
	}

	freePrice := models.Product{Name: "x", Price: 0}
	if err := ValidateProduct(&freePrice); err == nil {
		t.Error("sản phẩm giá 0: muốn lỗi validate")
	}

	negativeStock := models.Product{Name: "x", Price: 10, Stock: -1}
	if err := ValidateProduct(&negativeStock); err == nil {
		t.Error("tồn kho âm: muốn lỗi validate")
	}
}

func TestValidateUser(t *testing.T) {
	valid := models.User{Email: "a@b.com", Password: "secret1", PhoneNumber: "0912345678"}
	if err := ValidateUser(&valid); err != nil {
		t.Errorf("user hợp lệ bị từ chối: %v", err)
	}

	badEmail := models.User{Email: "not-an-email", Password: "secret1", PhoneNumber: "0912345678"}
	if err := ValidateUser(&badEmail); err == nil {
		t.Error("email sai định dạng: muốn lỗi validate")
	}

	shortPassword := models.User{Email: "a@b.com", Password: "abc", PhoneNumber: "0912345678"}
	if err := ValidateUser(&shortPassword); err == nil {
		t.Error("mật khẩu ngắn: muốn lỗi validate")
	}

	badPhone := models.User{Email: "a@b.com", Password: "secret1", PhoneNumber: "123"}
	if err := ValidateUser(&badPhone); err == nil {
		t.Error("số điện thoại sai: muốn lỗi validate")
	}
}

func TestValidateRuleWindowAt(t *testing.T) {
	now := time.Now()
	rule := models.DiscountRule{
		StartsAt: timePtr(now.Add(-time.Hour)),
		EndsAt:   timePtr(now.Add(time.Hour)),
	}

	if !ValidateRuleWindowAt(&rule, now) {
		t.Error("thời điểm trong khoảng hiệu lực phải trả về true")
	}
	if ValidateRuleWindowAt(&rule, now.Add(2*time.Hour)) {
		t.Error("thời điểm ngoài khoảng hiệu lực phải trả về false")
	}
}
