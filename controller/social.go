package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/blog_service/service"
)

// SocialController 定义点赞与关注控制器的结构体
type SocialController struct {
	socialService service.SocialService
}

// NewSocialController 构造函数，用于创建 SocialController 实例
func NewSocialController(socialService service.SocialService) *SocialController {
	return &SocialController{socialService: socialService}
}

// LikePost 处理点赞的 HTTP 请求
// @Summary      点赞帖子
// @Description  为帖子点赞，重复点赞不报错。返回最新的点赞状态与计数。
// @Tags         social (互动)
// @Produce      json
// @Security     BearerAuth
// @Param        post_id path uint64 true "帖子 ID" format(uint64)
// @Success      200 {object} vo.BaseResponseWrapper "点赞成功，data 为最新点赞状态"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/posts/{post_id}/like [post]
func (ctrl *SocialController) LikePost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	postID, ok := parsePathPostID(c)
	if !ok {
		return
	}

	status, err := ctrl.socialService.LikePost(c.Request.Context(), userID, postID)
	if err != nil {
		respondServiceError(c, err, "点赞失败")
		return
	}
	response.RespondSuccess(c, status, "点赞成功")
}

// UnlikePost 处理取消点赞的 HTTP 请求
// @Summary      取消点赞
// @Description  取消对帖子的点赞，未点赞过时同样返回成功。
// @Tags         social (互动)
// @Produce      json
// @Security     BearerAuth
// @Param        post_id path uint64 true "帖子 ID" format(uint64)
// @Success      200 {object} vo.BaseResponseWrapper "取消成功，data 为最新点赞状态"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/posts/{post_id}/like [delete]
func (ctrl *SocialController) UnlikePost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	postID, ok := parsePathPostID(c)
	if !ok {
		return
	}

	status, err := ctrl.socialService.UnlikePost(c.Request.Context(), userID, postID)
	if err != nil {
		respondServiceError(c, err, "取消点赞失败")
		return
	}
	response.RespondSuccess(c, status, "取消点赞成功")
}

// FollowUser 处理关注用户的 HTTP 请求
// @Summary      关注用户
// @Description  关注目标用户，重复关注不报错；不能关注自己。
// @Tags         social (互动)
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path string true "目标用户 ID"
// @Success      200 {object} vo.BaseResponseWrapper "关注成功，data 为最新关注状态"
// @Failure      400 {object} vo.BaseResponseWrapper "不能关注自己"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Failure      404 {object} vo.BaseResponseWrapper "目标用户不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/users/{user_id}/follow [post]
func (ctrl *SocialController) FollowUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	targetID := c.Param("user_id")
	if targetID == "" {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "目标用户 ID 是必需的")
		return
	}

	status, err := ctrl.socialService.FollowUser(c.Request.Context(), userID, targetID)
	if err != nil {
		respondServiceError(c, err, "关注失败")
		return
	}
	response.RespondSuccess(c, status, "关注成功")
}

// UnfollowUser 处理取消关注的 HTTP 请求
// @Summary      取消关注
// @Description  取消对目标用户的关注，未关注过时同样返回成功。
// @Tags         social (互动)
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path string true "目标用户 ID"
// @Success      200 {object} vo.BaseResponseWrapper "取消成功，data 为最新关注状态"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/users/{user_id}/follow [delete]
func (ctrl *SocialController) UnfollowUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	targetID := c.Param("user_id")
	if targetID == "" {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "目标用户 ID 是必需的")
		return
	}

	status, err := ctrl.socialService.UnfollowUser(c.Request.Context(), userID, targetID)
	if err != nil {
		respondServiceError(c, err, "取关失败")
		return
	}
	response.RespondSuccess(c, status, "取消关注成功")
}

// RegisterRoutes 注册 SocialController 的路由
func (ctrl *SocialController) RegisterRoutes(group *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	group.POST("/posts/:post_id/like", requireAuth, ctrl.LikePost)       // POST   /api/v1/blog/posts/:post_id/like
	group.DELETE("/posts/:post_id/like", requireAuth, ctrl.UnlikePost)   // DELETE /api/v1/blog/posts/:post_id/like
	group.POST("/users/:user_id/follow", requireAuth, ctrl.FollowUser)   // POST   /api/v1/blog/users/:user_id/follow
	group.DELETE("/users/:user_id/follow", requireAuth, ctrl.UnfollowUser) // DELETE /api/v1/blog/users/:user_id/follow
}
