package api

import (
	"strconv"

	"fintrack/database"
	"fintrack/middleware"
	"fintrack/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetHandler 预算处理器
type BudgetHandler struct{}

// NewBudgetHandler 创建预算处理器
func NewBudgetHandler() *BudgetHandler {
	return &BudgetHandler{}
}

// CreateBudgetRequest 创建预算请求
// 金额走字符串传输，服务端按十进制精确解析
type CreateBudgetRequest struct {
	AccountID uint   `json:"account_id" binding:"required" example:"1"`
	Name      string `json:"name" binding:"required,max=255" example:"每月吃饭"`
	Category  string `json:"category" binding:"required" example:"Dining"`
	Balance   string `json:"balance" binding:"required" example:"800.00"`
}

// UpdateBudgetRequest 更新预算请求，字段均可选
type UpdateBudgetRequest struct {
	Name     string `json:"name" example:"每月吃饭"`
	Category string `json:"category" example:"Shopping"`
	Balance  string `json:"balance" example:"600.00"`
}

// BudgetListItem 预算列表项，带上父账户信息
type BudgetListItem struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Balance     decimal.Decimal `json:"balance"`
	AccountName string          `json:"account_name"`
	AccountType string          `json:"account_type"`
}

// Create 创建预算
// @Summary 创建预算
// @Description 在指定账户下创建预算，类别限 12 个消费类别，初始余额按十进制精确解析
// @Tags 预算
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateBudgetRequest true "预算信息"
// @Success 200 {object} Response{data=models.Budget} "添加成功"
// @Failure 400 {object} Response "无效的预算类型或余额"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "账户不存在或不属于当前用户"
// @Router /api/v1/budgets [post]
func (h *BudgetHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	// 账户必须属于当前用户
	var account models.Account
	if err := database.DB.Where("id = ? AND user_id = ?", req.AccountID, userID).First(&account).Error; err != nil {
		NotFound(c, "账户不存在或不属于当前用户")
		return
	}

	if !models.IsValidBudgetCategory(req.Category) {
		BadRequest(c, "无效的预算类型")
		return
	}

	balance, err := decimal.NewFromString(req.Balance)
	if err != nil {
		BadRequest(c, "无效的预算余额")
		return
	}

	budget := models.Budget{
		AccountID: account.ID,
		Name:      req.Name,
		Category:  req.Category,
		Balance:   balance,
	}

	if err := database.DB.Create(&budget).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建预算失败"))
		return
	}

	SuccessWithMessage(c, "预算添加成功", budget)
}

// Delete 删除预算
// @Summary 删除预算
// @Description 删除预算并级联删除其交易记录；预算属于他人时返回 403
// @Tags 预算
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "预算ID"
// @Success 200 {object} Response "删除成功"
// @Failure 401 {object} Response "未授权"
// @Failure 403 {object} Response "此预算不是当前用户的预算"
// @Failure 404 {object} Response "预算未找到"
// @Router /api/v1/budgets/{id} [delete]
func (h *BudgetHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	// 先查存在性，再查归属，两种失败给出不同状态码
	var budget models.Budget
	if err := database.DB.First(&budget, id).Error; err != nil {
		NotFound(c, "预算未找到")
		return
	}

	var account models.Account
	if err := database.DB.First(&account, budget.AccountID).Error; err != nil || account.UserID != userID {
		Forbidden(c, "此预算不是当前用户的预算")
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("budget_id = ?", budget.ID).Delete(&models.Trade{}).Error; err != nil {
			return err
		}
		return tx.Delete(&budget).Error
	})
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "删除预算失败"))
		return
	}

	SuccessWithMessage(c, "预算删除成功", nil)
}

// Update 更新预算
// @Summary 更新预算
// @Description 部分更新预算名称/类别/余额；预算属于他人时返回 403
// @Tags 预算
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "预算ID"
// @Param request body UpdateBudgetRequest true "预算信息"
// @Success 200 {object} Response{data=models.Budget} "修改成功"
// @Failure 400 {object} Response "无效的预算余额"
// @Failure 401 {object} Response "未授权"
// @Failure 403 {object} Response "此预算不是当前用户的预算"
// @Failure 404 {object} Response "预算未找到"
// @Router /api/v1/budgets/{id} [put]
func (h *BudgetHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var budget models.Budget
	if err := database.DB.First(&budget, id).Error; err != nil {
		NotFound(c, "预算未找到")
		return
	}

	var account models.Account
	if err := database.DB.First(&account, budget.AccountID).Error; err != nil || account.UserID != userID {
		Forbidden(c, "此预算不是当前用户的预算")
		return
	}

	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Category != "" {
		// 沿用线上行为：更新时类别不做枚举校验
		updates["category"] = req.Category
	}
	if req.Balance != "" {
		balance, err := decimal.NewFromString(req.Balance)
		if err != nil {
			BadRequest(c, "无效的预算余额")
			return
		}
		updates["balance"] = balance
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&budget).Updates(updates).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "更新失败"))
			return
		}
	}

	database.DB.First(&budget, budget.ID)
	SuccessWithMessage(c, "预算修改成功", budget)
}

// List 获取预算列表
// @Summary 获取预算列表
// @Description 获取当前用户所有账户下的预算，每条带上父账户名称与类型；没有任何预算时返回 404
// @Tags 预算
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]BudgetListItem} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "当前用户没有预算"
// @Router /api/v1/budgets [get]
func (h *BudgetHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var items []BudgetListItem
	err := database.DB.Model(&models.Budget{}).
		Select("budgets.id, budgets.name, budgets.category, budgets.balance, accounts.name AS account_name, accounts.type AS account_type").
		Joins("JOIN accounts ON accounts.id = budgets.account_id AND accounts.deleted_at IS NULL").
		Where("accounts.user_id = ?", userID).
		Order("budgets.id ASC").
		Scan(&items).Error
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	// 空列表按约定返回 404
	if len(items) == 0 {
		NotFound(c, "当前用户没有预算")
		return
	}

	SuccessWithMessage(c, "获取用户预算记录成功", items)
}

// GetDetail 获取预算详情
// @Summary 获取预算详情
// @Description 两步归属校验：账户须属于当前用户，预算须属于该账户
// @Tags 预算
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "账户ID"
// @Param budget_id path int true "预算ID"
// @Success 200 {object} Response{data=models.Budget} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "账户或预算不存在"
// @Router /api/v1/accounts/{id}/budgets/{budget_id} [get]
func (h *BudgetHandler) GetDetail(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	accountID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的账户ID")
		return
	}
	budgetID, err := strconv.ParseUint(c.Param("budget_id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的预算ID")
		return
	}

	var account models.Account
	if err := database.DB.Where("id = ? AND user_id = ?", accountID, userID).First(&account).Error; err != nil {
		NotFound(c, "账户不存在或不属于当前用户")
		return
	}

	var budget models.Budget
	if err := database.DB.Where("id = ? AND account_id = ?", budgetID, account.ID).First(&budget).Error; err != nil {
		NotFound(c, "预算不存在或不属于当前账户")
		return
	}

	SuccessWithMessage(c, "预算信息获取成功", budget)
}
