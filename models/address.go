package models

import "time"

type Address struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"userId" gorm:"not null"`
	FullName    string    `json:"fullName"`    // Tên người nhận
	PhoneNumber string    `json:"phoneNumber"` // Số điện thoại người nhận
	Street      string    `json:"street"`      // Số nhà, tên đường
	Ward        string    `json:"ward"`
	District    string    `json:"district"`
	Province    string    `json:"province"`
	IsDefault   bool      `json:"isDefault" gorm:"default:false"` // Địa chỉ mặc định
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
