package api

import (
	"time"

	"fintrack/config"
	"fintrack/database"
	"fintrack/middleware"
	"fintrack/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	cfg *config.Config
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50" example:"testuser"`
	Password string `json:"password" binding:"required,min=6,max=50" example:"password123"`
	Email    string `json:"email" binding:"required,email" example:"test@example.com"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"testuser"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token    string      `json:"token"`
	UserInfo models.User `json:"user_info"`
}

// Register 用户注册
// @Summary 用户注册
// @Description 创建新用户账号，用户名和邮箱均不可重复
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "注册信息"
// @Success 200 {object} Response{data=models.User} "注册成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 409 {object} Response "用户名或邮箱已被占用"
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	// 检查用户名是否已存在
	var existingUser models.User
	if err := database.DB.Where("username = ?", req.Username).First(&existingUser).Error; err == nil {
		Conflict(c, "用户名已存在")
		return
	}

	// 检查邮箱是否已被注册
	if err := database.DB.Where("email = ?", req.Email).First(&existingUser).Error; err == nil {
		Conflict(c, "邮箱已被注册")
		return
	}

	// 加密密码
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		InternalError(c, "密码加密失败")
		return
	}

	// 创建用户
	user := models.User{
		Username: req.Username,
		Password: string(hashedPassword),
		Email:    req.Email,
		IsActive: true,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建用户失败"))
		return
	}

	SuccessWithMessage(c, "注册成功", gin.H{
		"username": user.Username,
		"email":    user.Email,
	})
}

// Login 用户登录
// @Summary 用户登录
// @Description 用户登录获取 JWT token，被冻结的账号不可登录
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录信息"
// @Success 200 {object} Response{data=LoginResponse} "登录成功"
// @Failure 401 {object} Response "用户不存在或密码错误"
// @Failure 403 {object} Response "账号已冻结"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	// 查找用户
	var user models.User
	if err := database.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		Unauthorized(c, "用户不存在")
		return
	}

	// 验证密码
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		Unauthorized(c, "密码错误")
		return
	}

	// 冻结账号不可登录
	if !user.IsActive {
		Forbidden(c, "资金异常，账号已冻结，请联系管理员")
		return
	}

	// 生成 token
	token, err := middleware.GenerateToken(user.ID, user.Username, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, "生成 token 失败")
		return
	}

	SuccessWithMessage(c, "登录成功", LoginResponse{
		Token:    token,
		UserInfo: user,
	})
}

// GetProfile 获取用户信息
// @Summary 获取当前用户信息
// @Description 获取当前登录用户的详细信息
// @Tags 认证
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=models.User} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/auth/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "用户不存在")
		return
	}

	SuccessWithMessage(c, "获取用户信息成功", user)
}

// UpdateProfileRequest 更新个人信息请求，字段均可选
type UpdateProfileRequest struct {
	Nickname string `json:"nickname" example:"小王"`
	Birthday string `json:"birthday" example:"1995-06-01"`
	Gender   string `json:"gender" example:"M"`
	Email    string `json:"email" binding:"omitempty,email" example:"new@example.com"`
}

// UpdateProfile 更新个人信息
// @Summary 更新个人信息
// @Description 部分更新昵称/生日/性别/邮箱，邮箱唯一性排除自身后重查
// @Tags 认证
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "个人信息"
// @Success 200 {object} Response{data=models.User} "更新成功"
// @Failure 400 {object} Response "性别或生日参数无效"
// @Failure 409 {object} Response "邮箱已被占用"
// @Router /api/v1/auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "用户不存在")
		return
	}

	updates := make(map[string]interface{})
	if req.Nickname != "" {
		updates["nickname"] = req.Nickname
	}
	if req.Birthday != "" {
		birthday, err := time.ParseInLocation("2006-01-02", req.Birthday, time.Local)
		if err != nil {
			BadRequest(c, "生日格式错误，应为: 2006-01-02")
			return
		}
		updates["birthday"] = birthday
	}
	if req.Gender != "" {
		if !models.IsValidGender(req.Gender) {
			BadRequest(c, "性别参数无效")
			return
		}
		updates["gender"] = req.Gender
	}
	if req.Email != "" {
		// 唯一性检查排除自己
		var other models.User
		if err := database.DB.Where("email = ? AND id <> ?", req.Email, user.ID).First(&other).Error; err == nil {
			Conflict(c, "该邮箱已被占用")
			return
		}
		updates["email"] = req.Email
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&user).Updates(updates).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "更新失败"))
			return
		}
	}

	database.DB.First(&user, user.ID)
	SuccessWithMessage(c, "个人信息更新成功", user)
}

// Logout 退出登录
// @Summary 退出登录
// @Description 退出当前登录状态；启用 Redis 时将 token 拉黑到其过期时刻
// @Tags 认证
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response "退出成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.GetCurrentToken(c)
	if token != "" && database.RedisEnabled() {
		if claims, err := middleware.ParseToken(token); err == nil && claims.ExpiresAt != nil {
			ttl := time.Until(claims.ExpiresAt.Time)
			if err := database.BlacklistToken(c.Request.Context(), token, ttl); err != nil {
				InternalError(c, SafeErrorMessage(err, "退出登录失败"))
				return
			}
		}
	}
	SuccessWithMessage(c, "退出登录成功", nil)
}
