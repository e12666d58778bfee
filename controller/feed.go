package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/service"
)

// FeedController 定义信息流控制器的结构体
type FeedController struct {
	feedService service.FeedService
}

// NewFeedController 构造函数，用于创建 FeedController 实例
func NewFeedController(feedService service.FeedService) *FeedController {
	return &FeedController{feedService: feedService}
}

// GetFeed 处理信息流查询的 HTTP 请求
// @Summary      获取信息流
// @Description  返回全部已发布帖子（或当前用户的草稿），附带分类分面。搜索与分类筛选在服务端完成，分面从筛选前的全量帖子推导。
// @Tags         feed (信息流)
// @Produce      json
// @Param        search query string false "搜索关键词，大小写不敏感，命中标题/正文/作者名"
// @Param        category query string false "分类分面，All 或缺省表示不过滤"
// @Param        drafts query bool false "true 时返回当前登录用户的草稿列表"
// @Success      200 {object} vo.FeedPageResponseWrapper "获取成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      401 {object} vo.BaseResponseWrapper "查询草稿时未登录"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/feed [get]
func (ctrl *FeedController) GetFeed(c *gin.Context) {
	var query dto.FeedQueryRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	viewerID := optionalUserID(c)
	if query.Drafts && viewerID == "" {
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "查询草稿需要登录")
		return
	}

	page, err := ctrl.feedService.GetFeed(c.Request.Context(), viewerID, &query)
	if err != nil {
		respondServiceError(c, err, "获取信息流失败")
		return
	}
	response.RespondSuccess(c, page, "信息流获取成功")
}

// GetFollowingFeed 处理关注流查询的 HTTP 请求
// @Summary      获取关注流
// @Description  返回当前用户关注的作者们的已发布帖子，支持与信息流相同的搜索与分类筛选。
// @Tags         feed (信息流)
// @Produce      json
// @Security     BearerAuth
// @Param        search query string false "搜索关键词"
// @Param        category query string false "分类分面"
// @Success      200 {object} vo.FeedPageResponseWrapper "获取成功"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/feed/following [get]
func (ctrl *FeedController) GetFollowingFeed(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var query dto.FeedQueryRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	page, err := ctrl.feedService.GetFollowingFeed(c.Request.Context(), userID, &query)
	if err != nil {
		respondServiceError(c, err, "获取关注流失败")
		return
	}
	response.RespondSuccess(c, page, "关注流获取成功")
}

// GetTrendingFeed 处理热门帖子查询的 HTTP 请求
// @Summary      获取热门帖子
// @Description  返回后台任务按浏览量维护的热门帖子列表，数据来自缓存快照。
// @Tags         feed (信息流)
// @Produce      json
// @Success      200 {object} vo.FeedPageResponseWrapper "获取成功"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/feed/trending [get]
func (ctrl *FeedController) GetTrendingFeed(c *gin.Context) {
	posts, err := ctrl.feedService.GetTrendingFeed(c.Request.Context(), optionalUserID(c))
	if err != nil {
		respondServiceError(c, err, "获取热门帖子失败")
		return
	}
	response.RespondSuccess(c, posts, "热门帖子获取成功")
}

// RegisterRoutes 注册 FeedController 的路由
func (ctrl *FeedController) RegisterRoutes(group *gin.RouterGroup, requireAuth gin.HandlerFunc, optionalAuth gin.HandlerFunc) {
	feed := group.Group("/feed")
	{
		feed.GET("", optionalAuth, ctrl.GetFeed)                    // GET /api/v1/blog/feed
		feed.GET("/following", requireAuth, ctrl.GetFollowingFeed)  // GET /api/v1/blog/feed/following
		feed.GET("/trending", optionalAuth, ctrl.GetTrendingFeed)   // GET /api/v1/blog/feed/trending
	}
}
