package services

import (
	"fmt"
	"time"

	"shop/builders"
	"shop/commands"
	appErrors "shop/errors"
	"shop/models"
	"shop/services/logger"

	"gorm.io/gorm"
)

type OrderService struct {
	db     *gorm.DB
	logger logger.Logger
}

type OrderServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewOrderService(opts OrderServiceOptions) *OrderService {
	return &OrderService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// CheckoutFromCart tạo đơn hàng từ giỏ hàng của user.
// Từng dòng hàng được tính giá qua evaluator tại thời điểm đặt, trừ kho và
// xóa giỏ trong cùng một transaction.
func (s *OrderService) CheckoutFromCart(userID uint, addressID uint) (*models.Order, error) {
	var cart models.Cart
	if err := s.db.Preload("Items.Product").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return nil, appErrors.ErrEmptyCart
	}
	if len(cart.Items) == 0 {
		return nil, appErrors.ErrEmptyCart
	}

	var address models.Address
	if err := s.db.Where("id = ? AND user_id = ?", addressID, userID).First(&address).Error; err != nil {
		return nil, fmt.Errorf("không tìm thấy địa chỉ giao hàng")
	}

	rules, err := GetActiveDiscountRules(s.db)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var items []models.OrderItem
	var subtotal, discountTotal, total float64

	for _, cartItem := range cart.Items {
		product := cartItem.Product
		if product.Stock < cartItem.Quantity {
			return nil, appErrors.NewAppError(appErrors.ErrCodeOutOfStock,
				fmt.Sprintf("sản phẩm %s không đủ hàng", product.Name), nil)
		}

		breakdown := BuildPricing(&product, rules, now)
		lineOriginal := breakdown.OriginalPrice * float64(cartItem.Quantity)
		lineFinal := breakdown.FinalPrice * float64(cartItem.Quantity)

		items = append(items, models.OrderItem{
			ProductID:          product.ID,
			Quantity:           cartItem.Quantity,
			UnitPrice:          breakdown.OriginalPrice,
			FinalPrice:         breakdown.FinalPrice,
			DiscountPercentage: breakdown.DiscountPercentage,
		})

		subtotal += lineOriginal
		total += lineFinal
	}
	discountTotal = subtotal - total

	order := builders.NewOrderBuilder().
		WithUser(userID).
		WithAddress(addressID).
		WithStatus(models.OrderStatusPending).
		WithItems(items).
		WithTotals(subtotal, discountTotal, total).
		Build()

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	if err := commands.NewCreateOrderCommand(order, tx).Execute(); err != nil {
		tx.Rollback()
		return nil, err
	}

	for _, item := range items {
		result := tx.Model(&models.Product{}).
			Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
			Updates(map[string]interface{}{
				"stock": gorm.Expr("stock - ?", item.Quantity),
				"sold":  gorm.Expr("sold + ?", item.Quantity),
			})
		if result.Error != nil {
			tx.Rollback()
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			tx.Rollback()
			return nil, appErrors.ErrOutOfStock
		}
	}

	if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	s.logger.Info("Đã tạo đơn hàng %d cho user %d, tổng %.2f", order.ID, userID, total)
	return order, nil
}

// GetByID lấy order theo ID
func (s *OrderService) GetByID(orderID uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items.Product").Preload("Address").First(&order, orderID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// Confirm xác nhận order theo state machine
func (s *OrderService) Confirm(order *models.Order) error {
	if err := models.GetOrderState(order.Status).Confirm(order); err != nil {
		return err
	}
	return commands.NewUpdateOrderCommand(order, s.db).Execute()
}

// Cancel hủy order và hoàn kho
func (s *OrderService) Cancel(order *models.Order) error {
	if err := models.GetOrderState(order.Status).Cancel(order); err != nil {
		return err
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	for _, item := range order.Items {
		if err := tx.Model(&models.Product{}).
			Where("id = ?", item.ProductID).
			Updates(map[string]interface{}{
				"stock": gorm.Expr("stock + ?", item.Quantity),
				"sold":  gorm.Expr("sold - ?", item.Quantity),
			}).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := commands.NewUpdateOrderCommand(order, tx).Execute(); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// Complete hoàn thành order
func (s *OrderService) Complete(order *models.Order) error {
	if err := models.GetOrderState(order.Status).Complete(order); err != nil {
		return err
	}
	return commands.NewUpdateOrderCommand(order, s.db).Execute()
}

// Delete xóa hẳn đơn hàng khỏi hệ thống, chỉ dành cho admin dọn dữ liệu.
// Đơn pending hoặc confirmed phải hủy trước rồi mới xóa được.
func (s *OrderService) Delete(order *models.Order) error {
	if order.Status == models.OrderStatusPending || order.Status == models.OrderStatusConfirmed {
		return fmt.Errorf("chỉ xóa được đơn đã hủy hoặc đã hoàn thành")
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := commands.NewDeleteOrderCommand(order.ID, tx).Execute(); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// ExpirePendingOrders hủy các đơn pending chưa thanh toán quá hạn
func (s *OrderService) ExpirePendingOrders(olderThan time.Duration) (int, error) {
	var orders []models.Order
	cutoff := time.Now().Add(-olderThan)

	if err := s.db.Preload("Items").
		Where("status = ? AND payment_status = ? AND created_at < ?",
			models.OrderStatusPending, models.PaymentStatusUnpaid, cutoff).
		Find(&orders).Error; err != nil {
		return 0, err
	}

	expired := 0
	for i := range orders {
		if err := s.Cancel(&orders[i]); err != nil {
			s.logger.Error("Lỗi khi hủy đơn quá hạn %d: %v", orders[i].ID, err)
			continue
		}
		expired++
	}

	if expired > 0 {
		s.logger.Info("Đã hủy %d đơn pending quá hạn", expired)
	}
	return expired, nil
}
