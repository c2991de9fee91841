package models

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

type Payment struct {
	ID                    uint      `gorm:"primaryKey" json:"id"`
	OrderID               uint      `json:"orderId" gorm:"not null" validate:"required"`
	Amount                float64   `json:"amount" validate:"required,gt=0"`
	Currency              string    `json:"currency" gorm:"type:varchar(3);default:'usd'"`
	Status                int       `json:"status" gorm:"default:0"`
	StripePaymentIntentID string    `json:"stripePaymentIntentId" gorm:"index"`
	CreatedAt             time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt             time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Order Order `gorm:"foreignKey:OrderID" json:"order"`
}

func (p *Payment) Validate() error {
	validate := validator.New()

	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.Status < 0 || p.Status > 3 {
		return fmt.Errorf("invalid Status: %d, must be between 0 and 3", p.Status)
	}
	return nil
}
