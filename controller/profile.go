package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/service"
)

// ProfileController 定义用户资料控制器的结构体
type ProfileController struct {
	profileService service.ProfileService
}

// NewProfileController 构造函数，用于创建 ProfileController 实例
func NewProfileController(profileService service.ProfileService) *ProfileController {
	return &ProfileController{profileService: profileService}
}

// GetProfile 处理获取公开资料的 HTTP 请求
// @Summary      获取用户资料
// @Description  返回用户的公开资料，含粉丝/关注计数；登录时附带当前用户是否已关注。
// @Tags         profiles (资料)
// @Produce      json
// @Param        user_id path string true "用户 ID"
// @Success      200 {object} vo.ProfileResponseWrapper "获取成功"
// @Failure      404 {object} vo.BaseResponseWrapper "用户不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/users/{user_id} [get]
func (ctrl *ProfileController) GetProfile(c *gin.Context) {
	targetID := c.Param("user_id")
	if targetID == "" {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "用户 ID 是必需的")
		return
	}

	profile, err := ctrl.profileService.GetProfile(c.Request.Context(), targetID, optionalUserID(c))
	if err != nil {
		respondServiceError(c, err, "获取用户资料失败")
		return
	}
	response.RespondSuccess(c, profile, "用户资料获取成功")
}

// UpdateProfile 处理资料编辑的 HTTP 请求
// @Summary      编辑资料
// @Description  更新当前用户的显示名称与简介。
// @Tags         profiles (资料)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.UpdateProfileRequest true "资料内容"
// @Success      200 {object} vo.ProfileResponseWrapper "更新成功"
// @Failure      400 {object} vo.BaseResponseWrapper "字段校验失败"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/profile [put]
func (ctrl *ProfileController) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}

	profile, err := ctrl.profileService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		respondServiceError(c, err, "更新资料失败")
		return
	}
	response.RespondSuccess(c, profile, "资料更新成功")
}

// UploadAvatar 处理头像上传的 HTTP 请求
// @Summary      上传头像
// @Description  上传头像到对象存储并写入用户资料，返回更新后的资料。
// @Tags         profiles (资料)
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        avatar formData file true "头像文件 (jpg/jpeg/png/webp)"
// @Success      200 {object} vo.ProfileResponseWrapper "上传成功"
// @Failure      400 {object} vo.BaseResponseWrapper "不支持的图片格式"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/profile/avatar [post]
func (ctrl *ProfileController) UploadAvatar(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "未能获取头像文件: "+err.Error())
		return
	}

	profile, err := ctrl.profileService.UploadAvatar(c.Request.Context(), userID, fileHeader)
	if err != nil {
		respondServiceError(c, err, "上传头像失败")
		return
	}
	response.RespondSuccess(c, profile, "头像上传成功")
}

// RegisterRoutes 注册 ProfileController 的路由
func (ctrl *ProfileController) RegisterRoutes(group *gin.RouterGroup, requireAuth gin.HandlerFunc, optionalAuth gin.HandlerFunc) {
	group.GET("/users/:user_id", optionalAuth, ctrl.GetProfile)     // GET  /api/v1/blog/users/:user_id
	profile := group.Group("/profile", requireAuth)
	{
		profile.PUT("", ctrl.UpdateProfile)                         // PUT  /api/v1/blog/profile
		profile.POST("/avatar", ctrl.UploadAvatar)                  // POST /api/v1/blog/profile/avatar
	}
}
