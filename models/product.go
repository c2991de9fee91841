package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type Product struct {
	ID               uint            `json:"id" gorm:"primaryKey"` // ID cho sản phẩm
	Name             string          `json:"name"`                 // Tên sản phẩm
	ShortDescription string          `json:"shortDescription"`     // Mô tả ngắn
	Description      string          `json:"description"`          // Mô tả chi tiết
	Price            float64         `json:"price"`                // Giá gốc
	Stock            int             `json:"stock"`                // Số lượng tồn kho
	Avatar           string          `json:"avatar"`               // Ảnh đại diện sản phẩm
	Img              json.RawMessage `json:"img" gorm:"type:json"` // Danh sách hình ảnh
	Status           int             `json:"status" gorm:"default:1"`
	CategoryID       *uint           `json:"categoryId"`
	Category         *Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Sold             int             `json:"sold" gorm:"default:0"` // Số lượng đã bán
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (p *Product) ValidateStatus() error {
	if p.Status < 0 || p.Status > 1 {
		return fmt.Errorf("invalid Status: %d, must be either 0 or 1", p.Status)
	}
	return nil
}
