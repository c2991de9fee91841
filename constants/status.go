package constants

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// User roles
const (
	RoleCustomer = 0
	RoleStaff    = 1
	RoleAdmin    = 2
)

// Order status
const (
	OrderStatusPending   = 0
	OrderStatusConfirmed = 1
	OrderStatusCompleted = 2
	OrderStatusCancelled = 3
)

// Payment status
const (
	PaymentStatusUnpaid   = 0
	PaymentStatusPaid     = 1
	PaymentStatusFailed   = 2
	PaymentStatusRefunded = 3
)

// Product status
const (
	ProductStatusVisible = 1
	ProductStatusHidden  = 0
)
