package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// 预算类别常量，同时也是交易的支出类型集合
const (
	CategoryDining        = "Dining"        // 餐饮
	CategoryTransport     = "Transportation" // 交通
	CategoryShopping      = "Shopping"      // 购物
	CategoryEntertainment = "Entertainment" // 娱乐
	CategoryEducation     = "Education"     // 教育
	CategoryHealth        = "Health"        // 健康
	CategoryHousing       = "Housing"       // 住房
	CategoryCommunication = "Communication" // 通讯
	CategoryPersonalCare  = "Personal Care" // 个人护理
	CategoryInsurance     = "Insurance"     // 保险
	CategoryInvestments   = "Investments"   // 投资
	CategoryGifts         = "Gifts"         // 礼物
)

// Budget 预算模型，归属于单个账户。
// 预算余额是用户自行维护的记账数字，交易不会自动扣减它。
type Budget struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	AccountID uint            `json:"account_id" gorm:"index;not null"`
	Name      string          `json:"name" gorm:"size:255;not null"`
	Category  string          `json:"category" gorm:"size:20;not null"`
	Balance   decimal.Decimal `json:"balance" gorm:"type:decimal(15,2);not null;default:0.00"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `json:"-" gorm:"index"`
	Account   Account         `json:"-" gorm:"foreignKey:AccountID"`
}

// TableName 设置表名
func (Budget) TableName() string {
	return "budgets"
}

// BudgetCategories 获取全部 12 个预算类别
func BudgetCategories() []string {
	return []string{
		CategoryDining,
		CategoryTransport,
		CategoryShopping,
		CategoryEntertainment,
		CategoryEducation,
		CategoryHealth,
		CategoryHousing,
		CategoryCommunication,
		CategoryPersonalCare,
		CategoryInsurance,
		CategoryInvestments,
		CategoryGifts,
	}
}

// IsValidBudgetCategory 校验预算类别
func IsValidBudgetCategory(c string) bool {
	for _, v := range BudgetCategories() {
		if c == v {
			return true
		}
	}
	return false
}
