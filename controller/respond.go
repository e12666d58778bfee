package controller

import (
	"errors"
	"net/http"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/constants"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/validation"
)

// currentUserID 从请求上下文中取出认证中间件写入的用户 ID。
// - 需要登录的路由在中间件层已拦截未登录请求，这里的空值检查只是兜底。
func currentUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(string(constants.UserIDKey))
	if userID == "" {
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "无法获取有效的用户 ID")
		return "", false
	}
	return userID, true
}

// optionalUserID 返回用户 ID，匿名访问时为空串。
func optionalUserID(c *gin.Context) string {
	return c.GetString(string(constants.UserIDKey))
}

// respondServiceError 把服务层错误统一映射为 HTTP 响应。
// - 校验错误原样透出字段级的英文提示，供前端展示在表单上。
func respondServiceError(c *gin.Context, err error, fallbackMsg string) {
	var vErr *validation.ValidationError
	switch {
	case errors.As(err, &vErr):
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, vErr.Message)
	case errors.Is(err, commonerrors.ErrRepoNotFound):
		response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "资源未找到")
	case errors.Is(err, myErrors.ErrInvalidCredentials):
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "邮箱或密码错误")
	case errors.Is(err, myErrors.ErrSessionNotFound):
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "会话已过期，请重新登录")
	case errors.Is(err, myErrors.ErrEmailTaken):
		response.RespondError(c, http.StatusConflict, response.ErrCodeClientInvalidInput, "该邮箱已被注册")
	case errors.Is(err, myErrors.ErrSelfFollow):
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "不能关注自己")
	default:
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, fallbackMsg+": "+err.Error())
	}
}
