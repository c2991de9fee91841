package models

import (
	"fmt"
	"time"
)

// Các loại rule giảm giá
const (
	RuleTypeGlobal   = "GLOBAL"    // Áp dụng cho mọi sản phẩm
	RuleTypeCategory = "CATEGORY"  // Áp dụng theo danh mục
	RuleTypeProduct  = "PRODUCT"   // Áp dụng cho một sản phẩm
	RuleTypePriceMin = "PRICE_MIN" // Áp dụng khi giá từ mức tối thiểu trở lên
)

type DiscountRule struct {
	ID                 uint       `json:"id" gorm:"primaryKey"`            // ID cho rule giảm giá
	Name               string     `json:"name"`                            // Tên chương trình giảm giá
	Type               string     `json:"type" gorm:"type:varchar(20)"`    // Loại rule (GLOBAL, CATEGORY, PRODUCT, PRICE_MIN)
	CategoryID         *uint      `json:"categoryId"`                      // Bắt buộc khi Type = CATEGORY
	ProductID          *uint      `json:"productId"`                       // Bắt buộc khi Type = PRODUCT
	PriceMin           *float64   `json:"priceMin"`                        // Bắt buộc khi Type = PRICE_MIN
	DiscountPercentage float64    `json:"discountPercentage"`              // Mức giảm giá (0 đến 100)
	StartsAt           *time.Time `json:"startsAt"`                        // Thời điểm bắt đầu (nil = không giới hạn)
	EndsAt             *time.Time `json:"endsAt"`                          // Thời điểm kết thúc (nil = không giới hạn)
	Active             bool       `json:"active" gorm:"default:true"`      // Công tắc bật/tắt rule
	CreatedAt          time.Time  `gorm:"autoCreateTime" json:"createdAt"` // Thời gian tạo
	UpdatedAt          time.Time  `gorm:"autoUpdateTime" json:"updatedAt"` // Thời gian cập nhật
}

// ValidateType kiểm tra loại rule hợp lệ
func (r *DiscountRule) ValidateType() error {
	switch r.Type {
	case RuleTypeGlobal, RuleTypeCategory, RuleTypeProduct, RuleTypePriceMin:
		return nil
	}
	return fmt.Errorf("invalid Type: %s, must be one of GLOBAL, CATEGORY, PRODUCT, PRICE_MIN", r.Type)
}

// Specificity trả về độ ưu tiên của rule khi nhiều rule có cùng mức giảm:
// PRODUCT > CATEGORY > PRICE_MIN > GLOBAL
func (r *DiscountRule) Specificity() int {
	switch r.Type {
	case RuleTypeProduct:
		return 3
	case RuleTypeCategory:
		return 2
	case RuleTypePriceMin:
		return 1
	}
	return 0
}

// ActiveInWindow kiểm tra rule có nằm trong khoảng thời gian hiệu lực tại thời điểm now không.
// Mốc nào nil thì không giới hạn phía đó.
func (r *DiscountRule) ActiveInWindow(now time.Time) bool {
	if r.StartsAt != nil && now.Before(*r.StartsAt) {
		return false
	}
	if r.EndsAt != nil && now.After(*r.EndsAt) {
		return false
	}
	return true
}

// Matches kiểm tra rule có áp dụng được cho sản phẩm không
func (r *DiscountRule) Matches(product *Product) bool {
	switch r.Type {
	case RuleTypeGlobal:
		return true
	case RuleTypeCategory:
		return r.CategoryID != nil && product.CategoryID != nil && *product.CategoryID == *r.CategoryID
	case RuleTypeProduct:
		return r.ProductID != nil && product.ID == *r.ProductID
	case RuleTypePriceMin:
		return r.PriceMin != nil && product.Price >= *r.PriceMin
	}
	return false
}
