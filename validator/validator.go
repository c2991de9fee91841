package validator

import (
	"regexp"
	"time"

	"shop/errors"
	"shop/models"
)

// ValidateUser validate thông tin user
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}

	if user.PhoneNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại không được để trống", nil)
	}

	if !isValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}

	if user.Role < 0 || user.Role > 2 {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role không hợp lệ", nil)
	}

	return nil
}

// ValidateDiscountRule validate rule giảm giá, gồm cả field bắt buộc theo từng loại.
// Được gọi cả khi tạo lẫn khi cập nhật để rule không bao giờ rơi vào trạng thái không hợp lệ.
func ValidateDiscountRule(rule *models.DiscountRule) error {
	if rule.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên rule giảm giá không được để trống", nil)
	}

	if err := rule.ValidateType(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidRuleType, "Loại rule giảm giá không hợp lệ", err)
	}

	switch rule.Type {
	case models.RuleTypeCategory:
		if rule.CategoryID == nil {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Rule loại CATEGORY phải có categoryId", nil)
		}
	case models.RuleTypeProduct:
		if rule.ProductID == nil {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Rule loại PRODUCT phải có productId", nil)
		}
	case models.RuleTypePriceMin:
		if rule.PriceMin == nil {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Rule loại PRICE_MIN phải có priceMin", nil)
		}
		if *rule.PriceMin < 0 {
			return errors.NewAppError(errors.ErrCodeInvalidAmount, "priceMin không được âm", nil)
		}
	}

	if rule.DiscountPercentage <= 0 || rule.DiscountPercentage > 100 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Mức giảm giá phải nằm trong khoảng từ 0 đến 100", nil)
	}

	if rule.StartsAt != nil && rule.EndsAt != nil && !rule.EndsAt.After(*rule.StartsAt) {
		return errors.NewAppError(errors.ErrCodeValidation, "Thời điểm kết thúc phải sau thời điểm bắt đầu", nil)
	}

	return nil
}

// ValidateProduct validate thông tin sản phẩm
func ValidateProduct(product *models.Product) error {
	if product.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên sản phẩm không được để trống", nil)
	}

	if product.Price <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá sản phẩm phải lớn hơn 0", nil)
	}

	if product.Stock < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Tồn kho không được âm", nil)
	}

	return nil
}

// ValidateAddress validate địa chỉ giao hàng
func ValidateAddress(address *models.Address) error {
	if address.FullName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên người nhận không được để trống", nil)
	}

	if address.PhoneNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại người nhận không được để trống", nil)
	}

	if !isValidPhone(address.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại người nhận không hợp lệ", nil)
	}

	if address.Street == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Địa chỉ không được để trống", nil)
	}

	if address.Province == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tỉnh/thành phố không được để trống", nil)
	}

	return nil
}

// ValidateCartItem validate dòng hàng trong giỏ
func ValidateCartItem(item *models.CartItem) error {
	if item.ProductID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID sản phẩm không được để trống", nil)
	}

	if item.Quantity <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Số lượng phải lớn hơn 0", nil)
	}

	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10}$`)
	return phoneRegex.MatchString(phone)
}

// ValidateEmail kiểm tra email hợp lệ
func ValidateEmail(email string) error {
	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}
	return nil
}

// ValidatePhone kiểm tra số điện thoại hợp lệ
func ValidatePhone(phone string) error {
	if !isValidPhone(phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}
	return nil
}

// ValidatePassword kiểm tra mật khẩu hợp lệ
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.NewAppError(errors.ErrCodeInvalidPassword, "Mật khẩu phải có ít nhất 8 ký tự", nil)
	}
	return nil
}

// ValidateRuleWindowAt kiểm tra một thời điểm có nằm trong khoảng hiệu lực không,
// dùng cho màn hình preview rule phía admin
func ValidateRuleWindowAt(rule *models.DiscountRule, at time.Time) bool {
	return rule.ActiveInWindow(at)
}
