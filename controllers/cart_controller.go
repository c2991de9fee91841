package controllers

import (
	"errors"
	"time"

	"shop/config"
	"shop/constants"
	"shop/dto"
	"shop/models"
	"shop/response"
	"shop/services"
	"shop/validator"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// getOrCreateCart lấy giỏ hàng của user, tạo mới nếu chưa có
func getOrCreateCart(userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := config.DB.Preload("Items.Product.Category").Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: userID}
		if err := config.DB.Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// toCartResponse tính breakdown giá cho từng dòng hàng theo rule hiện hành
func toCartResponse(cart *models.Cart, rules []models.DiscountRule, now time.Time) dto.CartResponse {
	resp := dto.CartResponse{
		ID:    cart.ID,
		Items: make([]dto.CartItemResponse, 0, len(cart.Items)),
	}

	subtotal := decimal.Zero
	total := decimal.Zero

	for i := range cart.Items {
		item := &cart.Items[i]
		pricing := services.BuildPricing(&item.Product, rules, now)
		quantity := decimal.NewFromInt(int64(item.Quantity))
		lineTotal := decimal.NewFromFloat(pricing.FinalPrice).Mul(quantity).Round(2)

		subtotal = subtotal.Add(decimal.NewFromFloat(pricing.OriginalPrice).Mul(quantity))
		total = total.Add(lineTotal)

		resp.Items = append(resp.Items, dto.CartItemResponse{
			ID:        item.ID,
			Product:   toProductResponse(&item.Product, rules, now),
			Quantity:  item.Quantity,
			Pricing:   pricing,
			LineTotal: lineTotal.InexactFloat64(),
		})
	}

	resp.Subtotal = subtotal.Round(2).InexactFloat64()
	resp.Total = total.Round(2).InexactFloat64()
	resp.DiscountTotal = subtotal.Sub(total).Round(2).InexactFloat64()
	return resp
}

// GetCart trả về giỏ hàng của người dùng đang đăng nhập
func GetCart(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	userID, _, err := services.GetUserIDFromToken(authHeader)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	cart, err := getOrCreateCart(userID)
	if err != nil {
		response.ServerError(c)
		return
	}

	rules, err := services.GetActiveDiscountRules(config.DB)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toCartResponse(cart, rules, time.Now()))
}

// AddCartItem thêm sản phẩm vào giỏ, cộng dồn số lượng nếu đã có
func AddCartItem(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	userID, _, err := services.GetUserIDFromToken(authHeader)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	newItem := models.CartItem{ProductID: req.ProductID, Quantity: req.Quantity}
	if err := validator.ValidateCartItem(&newItem); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	var product models.Product
	if err := config.DB.First(&product, req.ProductID).Error; err != nil {
		response.NotFound(c)
		return
	}
	if product.Status != constants.ProductStatusVisible {
		response.BadRequest(c, "Sản phẩm hiện không được bán")
		return
	}

	cart, err := getOrCreateCart(userID)
	if err != nil {
		response.ServerError(c)
		return
	}

	var existing *models.CartItem
	for i := range cart.Items {
		if cart.Items[i].ProductID == req.ProductID {
			existing = &cart.Items[i]
			break
		}
	}

	requested := req.Quantity
	if existing != nil {
		requested += existing.Quantity
	}
	if requested > product.Stock {
		response.BadRequest(c, "Số lượng vượt quá tồn kho")
		return
	}

	if existing != nil {
		existing.Quantity = requested
		if err := config.DB.Save(existing).Error; err != nil {
			response.ServerError(c)
			return
		}
	} else {
		newItem.CartID = cart.ID
		if err := config.DB.Create(&newItem).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	cart, err = getOrCreateCart(userID)
	if err != nil {
		response.ServerError(c)
		return
	}

	rules, err := services.GetActiveDiscountRules(config.DB)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toCartResponse(cart, rules, time.Now()))
}

// UpdateCartItem đổi số lượng một dòng hàng trong giỏ
func UpdateCartItem(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	userID, _, err := services.GetUserIDFromToken(authHeader)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cart, err := getOrCreateCart(userID)
	if err != nil {
		response.ServerError(c)
		return
	}

	var item *models.CartItem
	for i := range cart.Items {
		if cart.Items[i].ID == req.ItemID {
			item = &cart.Items[i]
			break
		}
	}
	if item == nil {
		response.NotFound(c)
		return
	}

	if req.Quantity <= 0 {
		// Số lượng 0 đồng nghĩa với xóa dòng hàng
		if err := config.DB.Delete(&models.CartItem{}, item.ID).Error; err != nil {
			response.ServerError(c)
			return
		}
	} else {
		if req.Quantity > item.Product.Stock {
			response.BadRequest(c, "Số lượng vượt quá tồn kho")
			return
		}
		item.Quantity = req.Quantity
		if err := config.DB.Save(item).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	cart, err = getOrCreateCart(userID)
	if err != nil {
		response.ServerError(c)
		return
	}

	rules, err := services.GetActiveDiscountRules(config.DB)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toCartResponse(cart, rules, time.Now()))
}

// RemoveCartItem xóa một dòng hàng khỏi giỏ
func RemoveCartItem(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	userID, _, err := services.GetUserIDFromToken(authHeader)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	itemID := c.Param("id")

	cart, err := getOrCreateCart(userID)
	if err != nil {
		response.ServerError(c)
		return
	}

	result := config.DB.Where("cart_id = ? AND id = ?", cart.ID, itemID).Delete(&models.CartItem{})
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c)
		return
	}

	response.Success(c, nil)
}

// ClearCart xóa toàn bộ giỏ hàng
func ClearCart(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	userID, _, err := services.GetUserIDFromToken(authHeader)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	cart, err := getOrCreateCart(userID)
	if err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}
