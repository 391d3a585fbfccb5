package service

import (
	"log"
	"time"

	"fintrack/database"
	"fintrack/models"
)

// PurgeExpiredResetCodes 清理过期或已使用的密码重置验证码。
// 由 main 中的 cron 调度器每天执行一次。
func PurgeExpiredResetCodes() {
	if database.DB == nil {
		return
	}

	res := database.DB.Unscoped().
		Where("used = ? OR expires_at < ?", true, time.Now()).
		Delete(&models.PasswordReset{})
	if res.Error != nil {
		log.Printf("清理密码重置验证码失败: %v", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("已清理 %d 条过期密码重置验证码", res.RowsAffected)
	}
}
