package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/constants"
	"github.com/Xushengqwer/go-common/core"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/myErrors"
	redisRepo "github.com/Xushengqwer/blog_service/repo/redis"
)

// SessionAuthMiddleware 从 Authorization 头解析会话令牌，验证后将用户 ID
// 写入 Gin 上下文 (constants.UserIDKey)，供控制器读取。
// - required 为 true 时，无效或缺失的令牌直接以 401 终止请求。
// - required 为 false 时放行匿名请求，上下文中没有用户 ID。
func SessionAuthMiddleware(sessionRepo redisRepo.SessionRepository, logger *core.ZapLogger, sessionTTL time.Duration, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			if required {
				response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "未登录或会话已过期")
				c.Abort()
				return
			}
			c.Next()
			return
		}

		userID, err := sessionRepo.GetUserIDByToken(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, myErrors.ErrSessionNotFound) {
				if required {
					response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "未登录或会话已过期")
					c.Abort()
					return
				}
				c.Next()
				return
			}
			logger.Error("会话校验失败", zap.Error(err))
			response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "服务内部错误")
			c.Abort()
			return
		}

		// 滑动续期失败不影响本次请求。
		if refreshErr := sessionRepo.RefreshSession(c.Request.Context(), token, sessionTTL); refreshErr != nil {
			logger.Warn("会话滑动续期失败", zap.Error(refreshErr))
		}

		c.Set(string(constants.UserIDKey), userID)
		c.Next()
	}
}

// extractBearerToken 从 "Authorization: Bearer <token>" 头中取出令牌。
func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
