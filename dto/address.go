package dto

// AddressResponse là DTO cho response của địa chỉ
type AddressResponse struct {
	ID          uint   `json:"id"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Street      string `json:"street"`
	Ward        string `json:"ward"`
	District    string `json:"district"`
	Province    string `json:"province"`
	IsDefault   bool   `json:"isDefault"`
}

// CreateAddressRequest là DTO cho yêu cầu thêm địa chỉ
type CreateAddressRequest struct {
	FullName    string `json:"fullName" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Street      string `json:"street" binding:"required"`
	Ward        string `json:"ward"`
	District    string `json:"district"`
	Province    string `json:"province" binding:"required"`
	IsDefault   bool   `json:"isDefault"`
}

// UpdateAddressRequest là DTO cho yêu cầu cập nhật địa chỉ
type UpdateAddressRequest struct {
	ID          uint   `json:"id" binding:"required"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Street      string `json:"street"`
	Ward        string `json:"ward"`
	District    string `json:"district"`
	Province    string `json:"province"`
	IsDefault   *bool  `json:"isDefault"`
}
