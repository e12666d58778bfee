package controller

import (
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/service"
)

// PostController 定义帖子控制器的结构体
type PostController struct {
	postService service.PostService
}

// NewPostController 构造函数，用于创建 PostController 实例
func NewPostController(postService service.PostService) *PostController {
	return &PostController{postService: postService}
}

// parseOptionalPostID 解析查询参数中的帖子 ID，缺省表示新建。
func parseOptionalPostID(c *gin.Context) (*uint64, bool) {
	idStr := c.Query("id")
	if idStr == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的帖子 ID 格式")
		return nil, false
	}
	return &id, true
}

// parsePathPostID 解析路径参数中的帖子 ID。
func parsePathPostID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的帖子 ID 格式")
		return 0, false
	}
	return id, true
}

// PublishPost 处理发布帖子的 HTTP 请求
// @Summary      发布帖子
// @Description  新建并发布帖子，或把既有草稿转为已发布。任何字段不合法都直接拒绝，不产生写入。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id query uint64 false "既有草稿的帖子 ID，缺省表示新建" format(uint64)
// @Param        request body dto.SavePostRequest true "帖子内容"
// @Success      200 {object} vo.PostResponseWrapper "发布成功"
// @Failure      400 {object} vo.BaseResponseWrapper "字段校验失败"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在或非本人所有"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/posts/publish [post]
func (ctrl *PostController) PublishPost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	postID, ok := parseOptionalPostID(c)
	if !ok {
		return
	}

	var req dto.SavePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}

	postVO, err := ctrl.postService.PublishPost(c.Request.Context(), userID, postID, &req)
	if err != nil {
		respondServiceError(c, err, "发布帖子失败")
		return
	}
	response.RespondSuccess(c, postVO, "帖子发布成功")
}

// SaveDraft 处理显式保存草稿的 HTTP 请求
// @Summary      保存草稿
// @Description  宽松校验（标题、正文、至少一个分类非空）后落库。缺省 ID 表示新建草稿。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id query uint64 false "既有草稿的帖子 ID，缺省表示新建" format(uint64)
// @Param        request body dto.AutosaveDraftRequest true "草稿内容"
// @Success      200 {object} vo.DraftSaveResponseWrapper "保存成功"
// @Failure      400 {object} vo.BaseResponseWrapper "草稿不满足保存条件"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在或非本人所有"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/posts/draft [post]
func (ctrl *PostController) SaveDraft(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	postID, ok := parseOptionalPostID(c)
	if !ok {
		return
	}

	var req dto.AutosaveDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}

	result, err := ctrl.postService.SaveDraft(c.Request.Context(), userID, postID, &req)
	if err != nil {
		respondServiceError(c, err, "保存草稿失败")
		return
	}
	response.RespondSuccess(c, result, "草稿保存成功")
}

// AutosaveDraft 处理编辑器自动保存的 HTTP 请求
// @Summary      自动保存草稿
// @Description  编辑器周期性上报草稿快照，只要求标题与正文非空，分类可为空。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id query uint64 false "既有草稿的帖子 ID，缺省表示首次保存" format(uint64)
// @Param        request body dto.AutosaveDraftRequest true "草稿快照"
// @Success      200 {object} vo.DraftSaveResponseWrapper "保存成功"
// @Failure      400 {object} vo.BaseResponseWrapper "快照不满足保存条件"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/posts/autosave [post]
func (ctrl *PostController) AutosaveDraft(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	postID, ok := parseOptionalPostID(c)
	if !ok {
		return
	}

	var req dto.AutosaveDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}

	result, err := ctrl.postService.AutosaveDraft(c.Request.Context(), userID, postID, &req)
	if err != nil {
		respondServiceError(c, err, "自动保存失败")
		return
	}
	response.RespondSuccess(c, result, "自动保存成功")
}

// GetPostDetail 处理获取帖子详情的 HTTP 请求
// @Summary      获取帖子详情
// @Description  返回已发布帖子的详情；草稿只有作者本人可见。登录用户的访问会计入浏览量。
// @Tags         posts (帖子)
// @Produce      json
// @Param        post_id path uint64 true "帖子 ID" format(uint64)
// @Success      200 {object} vo.PostResponseWrapper "获取成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的帖子 ID 格式"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/posts/{post_id} [get]
func (ctrl *PostController) GetPostDetail(c *gin.Context) {
	postID, ok := parsePathPostID(c)
	if !ok {
		return
	}

	postVO, err := ctrl.postService.GetPostDetail(c.Request.Context(), postID, optionalUserID(c))
	if err != nil {
		respondServiceError(c, err, "获取帖子详情失败")
		return
	}
	response.RespondSuccess(c, postVO, "帖子详情获取成功")
}

// GetPostForEdit 处理编辑器回填的 HTTP 请求
// @Summary      获取帖子用于编辑
// @Description  返回帖子的当前内容供编辑器回填，仅作者本人可访问。
// @Tags         posts (帖子)
// @Produce      json
// @Security     BearerAuth
// @Param        post_id path uint64 true "帖子 ID" format(uint64)
// @Success      200 {object} vo.PostResponseWrapper "获取成功"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在或非本人所有"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/posts/{post_id}/edit [get]
func (ctrl *PostController) GetPostForEdit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	postID, ok := parsePathPostID(c)
	if !ok {
		return
	}

	postVO, err := ctrl.postService.GetPostForEdit(c.Request.Context(), userID, postID)
	if err != nil {
		respondServiceError(c, err, "获取帖子失败")
		return
	}
	response.RespondSuccess(c, postVO, "帖子获取成功")
}

// DeletePost 处理删除帖子的 HTTP 请求
// @Summary      删除帖子
// @Description  删除帖子及其评论与点赞，仅作者本人可删。
// @Tags         posts (帖子)
// @Produce      json
// @Security     BearerAuth
// @Param        post_id path uint64 true "帖子 ID" format(uint64)
// @Success      200 {object} vo.BaseResponseWrapper "删除成功"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在或非本人所有"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/posts/{post_id} [delete]
func (ctrl *PostController) DeletePost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	postID, ok := parsePathPostID(c)
	if !ok {
		return
	}

	if err := ctrl.postService.DeletePost(c.Request.Context(), userID, postID); err != nil {
		respondServiceError(c, err, "删除帖子失败")
		return
	}
	response.RespondSuccess[any](c, nil, "帖子删除成功")
}

// UploadCoverImage 处理封面图上传的 HTTP 请求
// @Summary      上传封面图
// @Description  上传封面图到对象存储，返回公开访问 URL，前端把该 URL 填入帖子表单。
// @Tags         posts (帖子)
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        cover formData file true "封面图文件 (jpg/jpeg/png/gif/webp)"
// @Success      200 {object} vo.BaseResponseWrapper "上传成功，data 为图片 URL"
// @Failure      400 {object} vo.BaseResponseWrapper "不支持的图片格式"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/posts/cover [post]
func (ctrl *PostController) UploadCoverImage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("cover")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "未能获取封面图文件: "+err.Error())
		return
	}

	imageURL, err := ctrl.postService.UploadCoverImage(c.Request.Context(), userID, fileHeader)
	if err != nil {
		respondServiceError(c, err, "上传封面图失败")
		return
	}
	response.RespondSuccess(c, imageURL, "封面图上传成功")
}

// RegisterRoutes 注册 PostController 的路由
func (ctrl *PostController) RegisterRoutes(group *gin.RouterGroup, requireAuth gin.HandlerFunc, optionalAuth gin.HandlerFunc) {
	posts := group.Group("/posts")
	{
		posts.POST("/publish", requireAuth, ctrl.PublishPost)         // POST   /api/v1/blog/posts/publish
		posts.POST("/draft", requireAuth, ctrl.SaveDraft)             // POST   /api/v1/blog/posts/draft
		posts.POST("/autosave", requireAuth, ctrl.AutosaveDraft)      // POST   /api/v1/blog/posts/autosave
		posts.POST("/cover", requireAuth, ctrl.UploadCoverImage)      // POST   /api/v1/blog/posts/cover
		posts.GET("/:post_id", optionalAuth, ctrl.GetPostDetail)      // GET    /api/v1/blog/posts/:post_id
		posts.GET("/:post_id/edit", requireAuth, ctrl.GetPostForEdit) // GET    /api/v1/blog/posts/:post_id/edit
		posts.DELETE("/:post_id", requireAuth, ctrl.DeletePost)       // DELETE /api/v1/blog/posts/:post_id
	}
}
