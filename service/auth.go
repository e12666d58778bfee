package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Xushengqwer/blog_service/config"
	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/vo"
	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/repo/mysql"
	redisRepo "github.com/Xushengqwer/blog_service/repo/redis"
	"github.com/Xushengqwer/blog_service/validation"
)

// AuthService 定义了注册、登录与会话管理的业务逻辑接口。
type AuthService interface {
	// SignUp 处理用户注册。
	// - 校验字段，按邮箱查重，bcrypt 加密密码，写入用户并直接建立会话。
	// - 邮箱已存在时返回 myErrors.ErrEmailTaken。
	// - 校验失败时返回 *validation.ValidationError。
	SignUp(ctx context.Context, req *dto.SignUpRequest) (*vo.SessionVO, error)

	// SignIn 处理用户登录。
	// - 登录只要求密码非空，不做强度校验。
	// - 邮箱不存在与密码错误统一返回 myErrors.ErrInvalidCredentials。
	SignIn(ctx context.Context, req *dto.SignInRequest) (*vo.SessionVO, error)

	// SignOut 删除会话令牌。
	SignOut(ctx context.Context, token string) error

	// GetCurrentUser 按用户 ID 返回当前登录用户的资料。
	GetCurrentUser(ctx context.Context, userID string) (*vo.ProfileVO, error)
}

// authService 是 AuthService 接口的具体实现。
type authService struct {
	userRepo    mysql.UserRepository
	sessionRepo redisRepo.SessionRepository
	authCfg     config.AuthConfig
	logger      *core.ZapLogger
}

// NewAuthService 是 authService 的构造函数，通过依赖注入初始化服务实例。
func NewAuthService(userRepo mysql.UserRepository, sessionRepo redisRepo.SessionRepository, authCfg config.AuthConfig, logger *core.ZapLogger) AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		authCfg:     authCfg,
		logger:      logger,
	}
}

// sessionTTL 返回配置的会话有效期，配置缺失时退回 7 天。
func (s *authService) sessionTTL() time.Duration {
	minutes := s.authCfg.SessionTTLMinutes
	if minutes <= 0 {
		minutes = 7 * 24 * 60
	}
	return time.Duration(minutes) * time.Minute
}

// SignUp 实现注册流程。
func (s *authService) SignUp(ctx context.Context, req *dto.SignUpRequest) (*vo.SessionVO, error) {
	if vErr := validation.CheckSignUp(req); vErr != nil {
		return nil, vErr
	}

	// 先查重再插入。并发注册同一邮箱时由唯一索引兜底。
	_, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err == nil {
		return nil, myErrors.ErrEmailTaken
	}
	if !errors.Is(err, commonerrors.ErrRepoNotFound) {
		return nil, fmt.Errorf("注册时查询邮箱失败: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("生成密码哈希失败", zap.Error(err))
		return nil, fmt.Errorf("生成密码哈希失败: %w", err)
	}

	user := &entities.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		s.logger.Error("创建用户失败", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("创建用户失败: %w", err)
	}

	s.logger.Info("新用户注册成功", zap.String("userID", user.ID))
	return s.newSession(ctx, user)
}

// SignIn 实现登录流程。
func (s *authService) SignIn(ctx context.Context, req *dto.SignInRequest) (*vo.SessionVO, error) {
	if vErr := validation.CheckSignIn(req); vErr != nil {
		return nil, vErr
	}

	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, myErrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("登录时查询用户失败: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, myErrors.ErrInvalidCredentials
	}

	return s.newSession(ctx, user)
}

// newSession 生成 UUID 令牌并写入 Redis，返回会话视图。
func (s *authService) newSession(ctx context.Context, user *entities.User) (*vo.SessionVO, error) {
	token := uuid.NewString()
	if err := s.sessionRepo.CreateSession(ctx, token, user.ID, s.sessionTTL()); err != nil {
		return nil, fmt.Errorf("创建会话失败: %w", err)
	}

	return &vo.SessionVO{
		Token: token,
		User:  vo.NewProfileVO(user),
	}, nil
}

// SignOut 实现登出。
func (s *authService) SignOut(ctx context.Context, token string) error {
	return s.sessionRepo.DeleteSession(ctx, token)
}

// GetCurrentUser 实现获取当前用户资料。
func (s *authService) GetCurrentUser(ctx context.Context, userID string) (*vo.ProfileVO, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile := vo.NewProfileVO(user)
	return &profile, nil
}
