package controllers

import (
	goErrors "errors"
	"log"
	"strconv"

	"shop/config"
	"shop/constants"
	"shop/dto"
	appErrors "shop/errors"
	"shop/models"
	"shop/response"
	"shop/services"
	"shop/services/notification"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	orderService *services.OrderService
	notifier     notification.Service
)

// InitOrderController gắn các service dùng chung cho controller đơn hàng,
// gọi một lần lúc khởi động
func InitOrderController(s *services.OrderService, n notification.Service) {
	orderService = s
	notifier = n
}

func toOrderResponse(order *models.Order) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:            order.ID,
		Address:       toAddressResponse(&order.Address),
		Status:        order.Status,
		PaymentStatus: order.PaymentStatus,
		Subtotal:      order.Subtotal,
		DiscountTotal: order.DiscountTotal,
		TotalPrice:    order.TotalPrice,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}

	if order.User != nil {
		resp.User = dto.ActorResponse{
			Name:        order.User.Name,
			Email:       order.User.Email,
			PhoneNumber: order.User.PhoneNumber,
		}
	} else {
		resp.User = dto.ActorResponse{
			Name:        order.GuestName,
			Email:       order.GuestEmail,
			PhoneNumber: order.GuestPhone,
		}
	}

	resp.Items = make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ProductID:          item.ProductID,
			ProductName:        item.Product.Name,
			Quantity:           item.Quantity,
			UnitPrice:          item.UnitPrice,
			FinalPrice:         item.FinalPrice,
			DiscountPercentage: item.DiscountPercentage,
		})
	}

	return resp
}

// Checkout tạo đơn hàng từ giỏ của người dùng đang đăng nhập
func Checkout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	userID, _, err := services.GetUserIDFromToken(authHeader)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	order, err := orderService.CheckoutFromCart(userID, req.AddressID)
	if err != nil {
		if goErrors.Is(err, appErrors.ErrEmptyCart) {
			response.BadRequest(c, "Giỏ hàng trống")
			return
		}
		if goErrors.Is(err, appErrors.ErrOutOfStock) {
			response.BadRequest(c, "Sản phẩm không đủ hàng")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	// Email xác nhận và thông báo realtime không chặn response
	go func(order models.Order) {
		var user models.User
		if err := config.DB.First(&user, userID).Error; err == nil {
			if err := services.SendOrderEmail(user.Email, order.ID, order.TotalPrice, len(order.Items)); err != nil {
				log.Printf("Lỗi khi gửi email đơn hàng %d: %v", order.ID, err)
			}
		}
		if notifier != nil {
			message := notification.NewOrderMessageBuilder(order.ID, order.TotalPrice).Build()
			if err := notifier.SendMessage(message); err != nil {
				log.Printf("Lỗi khi broadcast đơn hàng %d: %v", order.ID, err)
			}
		}
	}(*order)

	full, err := orderService.GetByID(order.ID)
	if err != nil {
		response.Success(c, toOrderResponse(order))
		return
	}

	response.Success(c, toOrderResponse(full))
}

// GetOrders trả về lịch sử đơn hàng của người dùng đang đăng nhập
func GetOrders(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	userID, _, err := services.GetUserIDFromToken(authHeader)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit <= 0 {
		limit = 10
	}

	query := config.DB.Model(&models.Order{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var orders []models.Order
	if err := query.Preload("Items.Product").Preload("Address").
		Order("created_at DESC").Offset(page * limit).Limit(limit).Find(&orders).Error; err != nil {
		response.ServerError(c)
		return
	}

	orderResponses := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		orderResponses = append(orderResponses, toOrderResponse(&orders[i]))
	}

	response.SuccessWithPagination(c, orderResponses, page, limit, int(total))
}

// GetAllOrders trả về toàn bộ đơn hàng, chỉ dành cho admin
func GetAllOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit <= 0 {
		limit = 10
	}

	query := config.DB.Model(&models.Order{})

	if statusStr := c.Query("status"); statusStr != "" {
		status, err := strconv.Atoi(statusStr)
		if err != nil {
			response.BadRequest(c, "Trạng thái không hợp lệ")
			return
		}
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var orders []models.Order
	if err := query.Preload("Items.Product").Preload("Address").Preload("User").
		Order("created_at DESC").Offset(page * limit).Limit(limit).Find(&orders).Error; err != nil {
		response.ServerError(c)
		return
	}

	orderResponses := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		orderResponses = append(orderResponses, toOrderResponse(&orders[i]))
	}

	response.SuccessWithPagination(c, orderResponses, page, limit, int(total))
}

// GetOrderDetail trả về chi tiết đơn hàng, chủ đơn hoặc admin mới được xem
func GetOrderDetail(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	userID, role, err := services.GetUserIDFromToken(authHeader)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	order, err := orderService.GetByID(uint(id))
	if err != nil {
		if goErrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if role != constants.RoleAdmin && (order.UserID == nil || *order.UserID != userID) {
		response.Forbidden(c)
		return
	}

	response.Success(c, toOrderResponse(order))
}

// ChangeOrderStatus đổi trạng thái đơn theo state machine, chỉ dành cho admin
func ChangeOrderStatus(c *gin.Context) {
	var req dto.ChangeOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	order, err := orderService.GetByID(req.ID)
	if err != nil {
		if goErrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	switch req.Status {
	case models.OrderStatusConfirmed:
		err = orderService.Confirm(order)
	case models.OrderStatusCancelled:
		err = orderService.Cancel(order)
	case models.OrderStatusCompleted:
		err = orderService.Complete(order)
	default:
		response.BadRequest(c, "Trạng thái không hợp lệ")
		return
	}

	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, toOrderResponse(order))
}

// DeleteOrder xóa hẳn đơn hàng, chỉ dành cho admin và chỉ với đơn đã hủy hoặc đã hoàn thành
func DeleteOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	order, err := orderService.GetByID(uint(id))
	if err != nil {
		if goErrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if err := orderService.Delete(order); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{"id": order.ID})
}

// CancelOrder hủy đơn hàng của chính mình khi đơn còn ở trạng thái pending
func CancelOrder(c *gin.Context) {
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

	order, err := orderService.GetByID(uint(id))
	if err != nil {
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
	if order.Status != models.OrderStatusPending {
		response.BadRequest(c, "Chỉ đơn hàng đang chờ mới được hủy")
		return
	}

	if err := orderService.Cancel(order); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, toOrderResponse(order))
}
