package jobs

import (
	"log"
	"time"

	"shop/utils"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// PendingOrderExpirer định nghĩa interface cho việc hủy đơn pending quá hạn
type PendingOrderExpirer interface {
	ExpirePendingOrders(olderThan time.Duration) (int, error)
}

var pendingOrderExpirer PendingOrderExpirer

// SetPendingOrderExpirer thiết lập implementation cho PendingOrderExpirer
func SetPendingOrderExpirer(expirer PendingOrderExpirer) {
	pendingOrderExpirer = expirer
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Cron job chạy lúc 0h mỗi ngày, hủy các đơn chưa thanh toán quá 24h
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		utils.LogInfo("Đang chạy dọn đơn pending quá hạn lúc: %v", now)
		if pendingOrderExpirer == nil {
			utils.LogError("Lỗi: PendingOrderExpirer chưa được thiết lập")
			return
		}
		expired, err := pendingOrderExpirer.ExpirePendingOrders(24 * time.Hour)
		if err != nil {
			utils.LogError("Lỗi khi hủy đơn pending quá hạn: %v", err)
			return
		}
		utils.LogInfo("Đã hủy %d đơn pending quá hạn", expired)
		if expired > 0 && m != nil {
			_ = m.Broadcast([]byte("Đã hủy các đơn chưa thanh toán quá hạn"))
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
