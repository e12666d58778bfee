package controller

import (
	"net/http"
	"strings"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/service"
)

// AuthController 定义认证控制器的结构体
type AuthController struct {
	authService service.AuthService
}

// NewAuthController 构造函数，用于创建 AuthController 实例
func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// SignUp 处理用户注册的 HTTP 请求
// @Summary      用户注册
// @Description  校验邮箱、密码复杂度与显示名称后创建账号，成功时直接建立会话并返回令牌。
// @Tags         auth (认证)
// @Accept       json
// @Produce      json
// @Param        request body dto.SignUpRequest true "注册信息"
// @Success      200 {object} vo.SessionResponseWrapper "注册成功"
// @Failure      400 {object} vo.BaseResponseWrapper "字段校验失败"
// @Failure      409 {object} vo.BaseResponseWrapper "邮箱已被注册"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/auth/signup [post]
func (ctrl *AuthController) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}

	session, err := ctrl.authService.SignUp(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "注册失败")
		return
	}
	response.RespondSuccess(c, session, "注册成功")
}

// SignIn 处理用户登录的 HTTP 请求
// @Summary      用户登录
// @Description  校验邮箱与密码，成功时返回会话令牌与用户资料。
// @Tags         auth (认证)
// @Accept       json
// @Produce      json
// @Param        request body dto.SignInRequest true "登录信息"
// @Success      200 {object} vo.SessionResponseWrapper "登录成功"
// @Failure      400 {object} vo.BaseResponseWrapper "字段校验失败"
// @Failure      401 {object} vo.BaseResponseWrapper "邮箱或密码错误"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/auth/signin [post]
func (ctrl *AuthController) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}

	session, err := ctrl.authService.SignIn(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "登录失败")
		return
	}
	response.RespondSuccess(c, session, "登录成功")
}

// SignOut 处理用户登出的 HTTP 请求
// @Summary      用户登出
// @Description  删除当前请求携带的会话令牌。令牌不存在时同样返回成功。
// @Tags         auth (认证)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} vo.BaseResponseWrapper "登出成功"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/auth/signout [post]
func (ctrl *AuthController) SignOut(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	token = strings.TrimSpace(token)
	if token != "" {
		if err := ctrl.authService.SignOut(c.Request.Context(), token); err != nil {
			respondServiceError(c, err, "登出失败")
			return
		}
	}
	response.RespondSuccess[any](c, nil, "登出成功")
}

// GetCurrentUser 处理获取当前登录用户资料的 HTTP 请求
// @Summary      获取当前用户
// @Description  返回当前会话对应的用户资料。
// @Tags         auth (认证)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} vo.ProfileResponseWrapper "获取成功"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录或会话已过期"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/auth/me [get]
func (ctrl *AuthController) GetCurrentUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := ctrl.authService.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "获取当前用户失败")
		return
	}
	response.RespondSuccess(c, profile, "获取当前用户成功")
}

// RegisterRoutes 注册 AuthController 的路由
// - requireAuth 中间件只挂在需要登录态的路由上。
func (ctrl *AuthController) RegisterRoutes(group *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	auth := group.Group("/auth")
	{
		auth.POST("/signup", ctrl.SignUp)                       // POST /api/v1/blog/auth/signup
		auth.POST("/signin", ctrl.SignIn)                       // POST /api/v1/blog/auth/signin
		auth.POST("/signout", requireAuth, ctrl.SignOut)        // POST /api/v1/blog/auth/signout
		auth.GET("/me", requireAuth, ctrl.GetCurrentUser)       // GET  /api/v1/blog/auth/me
	}
}
