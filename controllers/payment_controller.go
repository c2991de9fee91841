package controllers

import (
	goErrors "errors"
	"io"
	"log"
	"strconv"

	"shop/config"
	"shop/models"
	"shop/response"
	"shop/services"
	"shop/types"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreatePaymentIntent tạo PaymentIntent Stripe cho đơn hàng của chính mình
func CreatePaymentIntent(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	userID, _, err := services.GetUserIDFromToken(authHeader)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var order models.Order
	if err := config.DB.First(&order, id).Error; err != nil {
		if goErrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if order.UserID == nil || *order.UserID != userID {
		response.Forbidden(c)
		return
	}
	if order.PaymentStatus == models.PaymentStatusPaid {
		response.BadRequest(c, "Đơn hàng đã được thanh toán")
		return
	}
	if order.Status == models.OrderStatusCancelled {
		response.BadRequest(c, "Đơn hàng đã bị hủy")
		return
	}

	pi, err := services.CreatePaymentIntent(config.DB, &order)
	if err != nil {
		log.Printf("Lỗi khi tạo payment intent cho đơn %d: %v", order.ID, err)
		response.ServerError(c)
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"paymentIntentId": pi.ID,
		"clientSecret":    pi.ClientSecret,
		"amount":          pi.Amount,
		"currency":        pi.Currency,
		"user": types.PaymentUserResponse{
			ID:          user.ID,
			Name:        user.Name,
			Email:       user.Email,
			PhoneNumber: user.PhoneNumber,
		},
	})
}

// StripeWebhook nhận event từ Stripe, body phải được đọc thô để xác minh chữ ký
func StripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.BadRequest(c, "Không đọc được payload")
		return
	}

	sigHeader := c.GetHeader("Stripe-Signature")
	if err := services.HandleStripeEvent(config.DB, payload, sigHeader); err != nil {
		log.Printf("Lỗi khi xử lý webhook Stripe: %v", err)
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, nil)
}
