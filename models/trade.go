package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TradeTypeDeposit 充值类交易，入账而非支出
const TradeTypeDeposit = "Deposit"

// Trade 交易记录模型。记录创建即表示账户余额已按类型变动过，
// 金额始终保存为正数，方向由类型决定。
type Trade struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	AccountID uint            `json:"account_id" gorm:"index;not null"`
	BudgetID  uint            `json:"budget_id" gorm:"index;not null"`
	Remark    string          `json:"remark" gorm:"size:255"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:decimal(15,2);not null;default:0.00"`
	Type      string          `json:"type" gorm:"size:50;not null"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `json:"-" gorm:"index"`
	Account   Account         `json:"-" gorm:"foreignKey:AccountID"`
	Budget    Budget          `json:"-" gorm:"foreignKey:BudgetID"`
}

// TableName 设置表名
func (Trade) TableName() string {
	return "trades"
}

// IsSpendingType 判断交易类型是否属于 12 个支出类别。
// 支出扣减账户余额，其余类型（如 Deposit）增加账户余额。
func IsSpendingType(t string) bool {
	return IsValidBudgetCategory(t)
}
