package controller

import (
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/service"
)

// CommentController 定义评论控制器的结构体
type CommentController struct {
	commentService service.CommentService
}

// NewCommentController 构造函数，用于创建 CommentController 实例
func NewCommentController(commentService service.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// CreateComment 处理发表评论的 HTTP 请求
// @Summary      发表评论
// @Description  在已发布的帖子下发表评论。
// @Tags         comments (评论)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        post_id path uint64 true "帖子 ID" format(uint64)
// @Param        request body dto.CreateCommentRequest true "评论内容"
// @Success      200 {object} vo.BaseResponseWrapper "评论成功，data 为新评论"
// @Failure      400 {object} vo.BaseResponseWrapper "评论内容不合法"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/posts/{post_id}/comments [post]
func (ctrl *CommentController) CreateComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	postID, ok := parsePathPostID(c)
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}

	comment, err := ctrl.commentService.CreateComment(c.Request.Context(), userID, postID, &req)
	if err != nil {
		respondServiceError(c, err, "发表评论失败")
		return
	}
	response.RespondSuccess(c, comment, "评论成功")
}

// ListComments 处理获取评论列表的 HTTP 请求
// @Summary      获取评论列表
// @Description  返回帖子的评论列表，最新的排在最前，优先从缓存读取。
// @Tags         comments (评论)
// @Produce      json
// @Param        post_id path uint64 true "帖子 ID" format(uint64)
// @Success      200 {object} vo.CommentListResponseWrapper "获取成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的帖子 ID 格式"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/posts/{post_id}/comments [get]
func (ctrl *CommentController) ListComments(c *gin.Context) {
	postID, ok := parsePathPostID(c)
	if !ok {
		return
	}

	list, err := ctrl.commentService.ListComments(c.Request.Context(), postID)
	if err != nil {
		respondServiceError(c, err, "获取评论列表失败")
		return
	}
	response.RespondSuccess(c, list, "评论列表获取成功")
}

// DeleteComment 处理删除评论的 HTTP 请求
// @Summary      删除评论
// @Description  删除评论，仅评论作者本人可删。
// @Tags         comments (评论)
// @Produce      json
// @Security     BearerAuth
// @Param        post_id path uint64 true "帖子 ID" format(uint64)
// @Param        comment_id path uint64 true "评论 ID" format(uint64)
// @Success      200 {object} vo.BaseResponseWrapper "删除成功"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Failure      404 {object} vo.BaseResponseWrapper "评论不存在或非本人所有"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/posts/{post_id}/comments/{comment_id} [delete]
func (ctrl *CommentController) DeleteComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	postID, ok := parsePathPostID(c)
	if !ok {
		return
	}
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的评论 ID 格式")
		return
	}

	if err := ctrl.commentService.DeleteComment(c.Request.Context(), userID, postID, commentID); err != nil {
		respondServiceError(c, err, "删除评论失败")
		return
	}
	response.RespondSuccess[any](c, nil, "评论删除成功")
}

// RegisterRoutes 注册 CommentController 的路由
func (ctrl *CommentController) RegisterRoutes(group *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	comments := group.Group("/posts/:post_id/comments")
	{
		comments.GET("", ctrl.ListComments)                              // GET    /api/v1/blog/posts/:post_id/comments
		comments.POST("", requireAuth, ctrl.CreateComment)               // POST   /api/v1/blog/posts/:post_id/comments
		comments.DELETE("/:comment_id", requireAuth, ctrl.DeleteComment) // DELETE /api/v1/blog/posts/:post_id/comments/:comment_id
	}
}
