package controller

import (
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/blog_service/service"
)

// AnalyticsController 定义数据面板控制器的结构体
type AnalyticsController struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsController 构造函数，用于创建 AnalyticsController 实例
func NewAnalyticsController(analyticsService service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analyticsService: analyticsService}
}

// GetAuthorAnalytics 处理获取作者数据面板的 HTTP 请求
// @Summary      获取数据面板
// @Description  返回当前用户全部帖子的浏览/点赞/评论汇总、单帖明细与按发布日聚合的互动曲线。
// @Tags         analytics (数据面板)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} vo.AnalyticsResponseWrapper "获取成功"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/analytics [get]
func (ctrl *AnalyticsController) GetAuthorAnalytics(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	analytics, err := ctrl.analyticsService.GetAuthorAnalytics(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "获取数据面板失败")
		return
	}
	response.RespondSuccess(c, analytics, "数据面板获取成功")
}

// RegisterRoutes 注册 AnalyticsController 的路由
func (ctrl *AnalyticsController) RegisterRoutes(group *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	group.GET("/analytics", requireAuth, ctrl.GetAuthorAnalytics) // GET /api/v1/blog/analytics
}
