package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// 账户类型常量
const (
	AccountTypeBank   = "bank"   // 银行卡
	AccountTypeWallet = "wallet" // 现金钱包
	AccountTypeAlipay = "alipay" // 支付宝
	AccountTypeWechat = "wechat" // 微信
)

// Account 账户模型，余额只由交易记录接口变动
type Account struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	UserID    uint            `json:"user_id" gorm:"index;not null"`
	Name      string          `json:"name" gorm:"size:255;not null"`
	Type      string          `json:"type" gorm:"size:20;not null"`
	Balance   decimal.Decimal `json:"balance" gorm:"type:decimal(15,2);not null;default:0.00"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `json:"-" gorm:"index"`
	User      User            `json:"-" gorm:"foreignKey:UserID"`
}

// TableName 设置表名
func (Account) TableName() string {
	return "accounts"
}

// AccountTypes 获取所有账户类型
func AccountTypes() []string {
	return []string{
		AccountTypeBank,
		AccountTypeWallet,
		AccountTypeAlipay,
		AccountTypeWechat,
	}
}

// IsValidAccountType 校验账户类型
func IsValidAccountType(t string) bool {
	switch t {
	case AccountTypeBank, AccountTypeWallet, AccountTypeAlipay, AccountTypeWechat:
		return true
	}
	return false
}
