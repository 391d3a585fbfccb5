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

// AccountHandler 账户处理器
type AccountHandler struct{}

// NewAccountHandler 创建账户处理器
func NewAccountHandler() *AccountHandler {
	return &AccountHandler{}
}

// CreateAccountRequest 创建账户请求
// 不接受余额入参，新账户余额一律为 0.00
type CreateAccountRequest struct {
	Name string `json:"name" binding:"required,max=255" example:"工资卡"`
	Type string `json:"type" binding:"required" example:"bank"`
}

// UpdateAccountRequest 更新账户请求，字段均可选
type UpdateAccountRequest struct {
	Name string `json:"name" example:"工资卡"`
	Type string `json:"type" example:"wallet"`
}

// Create 创建账户
// @Summary 创建账户
// @Description 创建一个新账户，类型限 bank/wallet/alipay/wechat，初始余额固定为 0.00
// @Tags 账户
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateAccountRequest true "账户信息"
// @Success 200 {object} Response{data=models.Account} "创建成功"
// @Failure 400 {object} Response "无效的账户类型"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/accounts [post]
func (h *AccountHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	if !models.IsValidAccountType(req.Type) {
		BadRequest(c, "无效的账户类型")
		return
	}

	account := models.Account{
		UserID:  userID,
		Name:    req.Name,
		Type:    req.Type,
		Balance: decimal.Zero,
	}

	if err := database.DB.Create(&account).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建账户失败"))
		return
	}

	SuccessWithMessage(c, "账户创建成功", account)
}

// List 获取账户列表
// @Summary 获取账户列表
// @Description 获取当前用户的全部账户；没有任何账户时返回 404
// @Tags 账户
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.Account} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "当前用户没有账户"
// @Router /api/v1/accounts [get]
func (h *AccountHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var accounts []models.Account
	if err := database.DB.Where("user_id = ?", userID).Order("id ASC").Find(&accounts).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	// 空列表按约定返回 404
	if len(accounts) == 0 {
		NotFound(c, "当前用户没有账户")
		return
	}

	SuccessWithMessage(c, "获取用户账户信息成功", accounts)
}

// Get 获取账户详情
// @Summary 获取账户详情
// @Description 按 ID 获取当前用户的单个账户
// @Tags 账户
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "账户ID"
// @Success 200 {object} Response{data=models.Account} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "账户不存在或不属于当前用户"
// @Router /api/v1/accounts/{id} [get]
func (h *AccountHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var account models.Account
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&account).Error; err != nil {
		NotFound(c, "账户不存在或不属于当前用户")
		return
	}

	SuccessWithMessage(c, "账户信息获取成功", account)
}

// Update 更新账户
// @Summary 更新账户
// @Description 部分更新账户名称/类型，类型若提供则需在枚举内；余额不可经此接口修改
// @Tags 账户
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "账户ID"
// @Param request body UpdateAccountRequest true "账户信息"
// @Success 200 {object} Response{data=models.Account} "更新成功"
// @Failure 400 {object} Response "无效的账户类型"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "账户不存在或不属于当前用户"
// @Router /api/v1/accounts/{id} [put]
func (h *AccountHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var account models.Account
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&account).Error; err != nil {
		NotFound(c, "账户不存在或不属于当前用户")
		return
	}

	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Type != "" {
		if !models.IsValidAccountType(req.Type) {
			BadRequest(c, "无效的账户类型")
			return
		}
		updates["type"] = req.Type
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&account).Updates(updates).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "更新失败"))
			return
		}
	}

	database.DB.First(&account, account.ID)
	SuccessWithMessage(c, "账户信息更新成功", account)
}

// Delete 删除账户
// @Summary 删除账户
// @Description 删除账户并级联删除其全部预算与相关交易记录，整体在一个事务内完成
// @Tags 账户
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "账户ID"
// @Success 200 {object} Response "删除成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "账户不存在或不属于当前用户"
// @Router /api/v1/accounts/{id} [delete]
func (h *AccountHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var account models.Account
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&account).Error; err != nil {
		NotFound(c, "账户不存在或不属于当前用户")
		return
	}

	// 级联删除要么全部生效要么全部回滚
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var budgetIDs []uint
		if err := tx.Model(&models.Budget{}).Where("account_id = ?", account.ID).Pluck("id", &budgetIDs).Error; err != nil {
			return err
		}

		// 交易可能挂在账户上，也可能挂在该账户的预算上
		tradeQuery := tx.Where("account_id = ?", account.ID)
		if len(budgetIDs) > 0 {
			tradeQuery = tx.Where("account_id = ? OR budget_id IN ?", account.ID, budgetIDs)
		}
		if err := tradeQuery.Delete(&models.Trade{}).Error; err != nil {
			return err
		}

		if err := tx.Where("account_id = ?", account.ID).Delete(&models.Budget{}).Error; err != nil {
			return err
		}

		return tx.Delete(&account).Error
	})
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "删除账户失败"))
		return
	}

	SuccessWithMessage(c, "账户删除成功", nil)
}
