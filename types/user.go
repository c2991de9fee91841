package types

// PaymentUserResponse là DTO cho thông tin user trong payment
type PaymentUserResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}
