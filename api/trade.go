package api

import (
	"errors"
	"strconv"

	"fintrack/database"
	"fintrack/middleware"
	"fintrack/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TradeHandler 交易记录处理器，唯一有权变动账户余额的入口
type TradeHandler struct{}

// NewTradeHandler 创建交易记录处理器
func NewTradeHandler() *TradeHandler {
	return &TradeHandler{}
}

// errInsufficientBalance 余额不足，事务内用它触发回滚
var errInsufficientBalance = errors.New("账户余额不足")

// CreateTradeRequest 创建交易请求
// 金额走字符串传输，按十进制精确解析
type CreateTradeRequest struct {
	AccountID uint   `json:"account_id" binding:"required" example:"1"`
	BudgetID  uint   `json:"budget_id" binding:"required" example:"1"`
	Amount    string `json:"amount" binding:"required" example:"30.00"`
	Type      string `json:"type" binding:"required" example:"Dining"`
	Remark    string `json:"remark" example:"午饭"`
}

// TradeListItem 交易列表项，带上账户与预算名称
type TradeListItem struct {
	ID          uint            `json:"id"`
	AccountName string          `json:"account_name"`
	BudgetName  *string         `json:"budget_name"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Remark      string          `json:"remark"`
}

// Create 创建交易记录
// @Summary 创建交易记录
// @Description 记录一笔交易并同步变动账户余额：类型属于 12 个消费类别时扣款（余额不足则拒绝），
// @Description 其余类型（如 Deposit）入账。余额校验与扣减在同一条带条件的 UPDATE 中完成，
// @Description 与交易落库处于同一事务，并发扣款不会把余额打穿。
// @Tags 交易记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTradeRequest true "交易信息"
// @Success 200 {object} Response "添加成功"
// @Failure 400 {object} Response "缺少必要参数、金额非法或余额不足"
// @Failure 401 {object} Response "未授权"
// @Failure 403 {object} Response "账户或预算不属于当前用户"
// @Router /api/v1/trades [post]
func (h *TradeHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "缺少必要参数")
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		BadRequest(c, "无效的交易金额")
		return
	}

	// 账户必须属于当前用户
	var account models.Account
	if err := database.DB.Where("id = ? AND user_id = ?", req.AccountID, userID).First(&account).Error; err != nil {
		Forbidden(c, "不是当前用户的账户")
		return
	}

	// 预算必须属于当前用户（经由其所属账户）
	var budget models.Budget
	err = database.DB.Model(&models.Budget{}).
		Joins("JOIN accounts ON accounts.id = budgets.account_id AND accounts.deleted_at IS NULL").
		Where("budgets.id = ? AND accounts.user_id = ?", req.BudgetID, userID).
		First(&budget).Error
	if err != nil {
		Forbidden(c, "不是当前用户的预算")
		return
	}

	trade := models.Trade{
		AccountID: account.ID,
		BudgetID:  budget.ID,
		Remark:    req.Remark,
		Amount:    amount,
		Type:      req.Type,
	}

	// 余额变动和交易落库必须同进同退
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if models.IsSpendingType(req.Type) {
			// 带余额条件的单条 UPDATE，余额不足时影响行数为 0
			res := tx.Model(&models.Account{}).
				Where("id = ? AND balance >= ?", account.ID, amount).
				Update("balance", gorm.Expr("balance - ?", amount))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return errInsufficientBalance
			}
		} else {
			// 充值等非支出类型直接入账，不做余额校验
			res := tx.Model(&models.Account{}).
				Where("id = ?", account.ID).
				Update("balance", gorm.Expr("balance + ?", amount))
			if res.Error != nil {
				return res.Error
			}
		}

		return tx.Create(&trade).Error
	})
	if err != nil {
		if errors.Is(err, errInsufficientBalance) {
			BadRequest(c, "账户余额不足")
			return
		}
		InternalError(c, SafeErrorMessage(err, "创建交易记录失败"))
		return
	}

	SuccessWithMessage(c, "交易记录添加成功", gin.H{
		"trade_id":     trade.ID,
		"account_name": account.Name,
		"budget_name":  budget.Name,
		"amount":       trade.Amount,
		"type":         trade.Type,
	})
}

// Delete 删除交易记录
// @Summary 删除交易记录
// @Description 删除交易记录；restore_balance=true 时先按原方向冲正账户余额
// @Description （消费类别回加金额，Deposit 扣回金额，其余类型不动余额），
// @Description 冲正与删除在同一事务内完成，记录无论是否冲正都会被删除。
// @Tags 交易记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "交易记录ID"
// @Param restore_balance query bool false "是否恢复账户余额" default(false)
// @Success 200 {object} Response "删除成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "交易记录不存在或不是当前用户的记录"
// @Router /api/v1/trades/{id} [delete]
func (h *TradeHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "缺少交易记录 ID")
		return
	}

	restoreBalance := false
	if v := c.Query("restore_balance"); v != "" {
		restoreBalance, err = strconv.ParseBool(v)
		if err != nil {
			BadRequest(c, "restore_balance 参数无效")
			return
		}
	}

	// 交易必须经由其账户归属当前用户
	var trade models.Trade
	err = database.DB.Model(&models.Trade{}).
		Joins("JOIN accounts ON accounts.id = trades.account_id AND accounts.deleted_at IS NULL").
		Where("trades.id = ? AND accounts.user_id = ?", id, userID).
		First(&trade).Error
	if err != nil {
		NotFound(c, "交易记录不存在或不是当前用户的记录")
		return
	}

	var account models.Account
	if err := database.DB.First(&account, trade.AccountID).Error; err != nil {
		NotFound(c, "交易记录不存在或不是当前用户的记录")
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if restoreBalance {
			switch {
			case models.IsSpendingType(trade.Type):
				// 冲正支出：把扣掉的金额加回去
				res := tx.Model(&models.Account{}).
					Where("id = ?", account.ID).
					Update("balance", gorm.Expr("balance + ?", trade.Amount))
				if res.Error != nil {
					return res.Error
				}
			case trade.Type == models.TradeTypeDeposit:
				// 冲正充值：把入账的金额扣回来
				res := tx.Model(&models.Account{}).
					Where("id = ?", account.ID).
					Update("balance", gorm.Expr("balance - ?", trade.Amount))
				if res.Error != nil {
					return res.Error
				}
			default:
				// 其余类型的冲正规则未定义，余额保持不动
			}
		}

		// 无论是否冲正，记录本身都删除
		return tx.Delete(&trade).Error
	})
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "删除交易记录失败"))
		return
	}

	SuccessWithMessage(c, "交易记录删除成功", gin.H{
		"trade_id":        trade.ID,
		"account_name":    account.Name,
		"restore_balance": restoreBalance,
	})
}

// List 获取交易记录列表
// @Summary 获取交易记录列表
// @Description 获取当前用户全部账户下的交易记录；没有记录时返回空列表（成功）
// @Tags 交易记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]TradeListItem} "查询成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/trades [get]
func (h *TradeHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	items := make([]TradeListItem, 0)
	err := database.DB.Model(&models.Trade{}).
		Select("trades.id, accounts.name AS account_name, budgets.name AS budget_name, trades.type, trades.amount, trades.remark").
		Joins("JOIN accounts ON accounts.id = trades.account_id AND accounts.deleted_at IS NULL").
		Joins("LEFT JOIN budgets ON budgets.id = trades.budget_id AND budgets.deleted_at IS NULL").
		Where("accounts.user_id = ?", userID).
		Order("trades.id ASC").
		Scan(&items).Error
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	// 和账户/预算列表不同，这里空结果是正常返回
	SuccessWithMessage(c, "交易记录查询成功", items)
}
