package services

import (
	"encoding/json"
	"fmt"

	"shop/config"
	"shop/models"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"github.com/stripe/stripe-go/v76/webhook"
	"gorm.io/gorm"
)

// AmountInCents đổi tổng tiền sang đơn vị cent cho Stripe.
// Phải làm tròn qua decimal, ép kiểu trực tiếp sẽ bị cụt 1 cent (19.99 * 100 ra 1998).
func AmountInCents(total float64) int64 {
	return decimal.NewFromFloat(total).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// CreatePaymentIntent tạo PaymentIntent trên Stripe cho đơn hàng.
// Stripe nhận amount theo đơn vị nhỏ nhất nên nhân 100.
func CreatePaymentIntent(db *gorm.DB, order *models.Order) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(AmountInCents(order.TotalPrice)),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("order_id", fmt.Sprintf("%d", order.ID))

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("không thể tạo payment intent: %v", err)
	}

	order.StripePaymentIntentID = pi.ID
	if err := db.Model(order).Update("stripe_payment_intent_id", pi.ID).Error; err != nil {
		return nil, err
	}

	payment := models.Payment{
		OrderID:               order.ID,
		Amount:                order.TotalPrice,
		Currency:              "usd",
		Status:                models.PaymentStatusUnpaid,
		StripePaymentIntentID: pi.ID,
	}
	if err := payment.Validate(); err != nil {
		return nil, err
	}
	if err := db.Create(&payment).Error; err != nil {
		return nil, err
	}

	return pi, nil
}

// HandleStripeEvent xác minh chữ ký webhook và cập nhật trạng thái thanh toán.
// Chữ ký sai thì từ chối luôn, không xử lý payload.
func HandleStripeEvent(db *gorm.DB, payload []byte, sigHeader string) error {
	event, err := webhook.ConstructEvent(payload, sigHeader, config.GetEnv("STRIPE_WEBHOOK_SECRET"))
	if err != nil {
		return fmt.Errorf("chữ ký webhook không hợp lệ: %v", err)
	}

	switch event.Type {
	case "payment_intent.succeeded":
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return err
		}
		return markPayment(db, pi.ID, models.PaymentStatusPaid)
	case "payment_intent.payment_failed":
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return err
		}
		return markPayment(db, pi.ID, models.PaymentStatusFailed)
	}

	// Các event khác bỏ qua
	return nil
}

func markPayment(db *gorm.DB, paymentIntentID string, status int) error {
	var order models.Order
	if err := db.Where("stripe_payment_intent_id = ?", paymentIntentID).First(&order).Error; err != nil {
		return fmt.Errorf("không tìm thấy đơn hàng cho payment intent %s", paymentIntentID)
	}

	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Model(&order).Update("payment_status", status).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Model(&models.Payment{}).
		Where("stripe_payment_intent_id = ?", paymentIntentID).
		Update("status", status).Error; err != nil {
		tx.Rollback()
		return err
	}

	// Thanh toán thành công thì chuyển đơn sang đã xác nhận
	if status == models.PaymentStatusPaid && order.Status == models.OrderStatusPending {
		if err := models.GetOrderState(order.Status).Confirm(&order); err == nil {
			if err := tx.Model(&order).Update("status", order.Status).Error; err != nil {
				tx.Rollback()
				return err
			}
		}
	}

	return tx.Commit().Error
}
