package models

import (
	"fmt"
	"time"
)

type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`    // ID cho danh mục
	Name        string    `json:"name" gorm:"unique"`      // Tên danh mục
	Description string    `json:"description"`             // Mô tả danh mục
	Image       string    `json:"image"`                   // Ảnh đại diện danh mục
	Status      int       `json:"status" gorm:"default:1"` // Trạng thái (1: hiển thị, 0: ẩn)
	Products    []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (c *Category) ValidateStatus() error {
	if c.Status < 0 || c.Status > 1 {
		return fmt.Errorf("invalid Status: %d, must be either 0 or 1", c.Status)
	}
	return nil
}
