package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/constant"
	"github.com/Xushengqwer/blog_service/dependencies"
	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/vo"
	"github.com/Xushengqwer/blog_service/repo/mysql"
	"github.com/Xushengqwer/blog_service/validation"
)

// ProfileService 定义了用户资料的业务逻辑接口。
type ProfileService interface {
	// GetProfile 返回用户的公开资料，含粉丝/关注计数。
	// - viewerID 为空表示匿名访问，FollowedByViewer 恒为 false。
	GetProfile(ctx context.Context, userID string, viewerID string) (*vo.ProfileVO, error)

	// UpdateProfile 更新当前用户的显示名称与简介。
	// - 校验失败时返回 *validation.ValidationError。
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*vo.ProfileVO, error)

	// UploadAvatar 上传头像并把 URL 写入用户资料。
	UploadAvatar(ctx context.Context, userID string, fileHeader *multipart.FileHeader) (*vo.ProfileVO, error)
}

// profileService 是 ProfileService 接口的具体实现。
type profileService struct {
	userRepo   mysql.UserRepository
	followRepo mysql.FollowRepository
	cosClient  dependencies.COSClientInterface
	logger     *core.ZapLogger
}

// NewProfileService 是 profileService 的构造函数，通过依赖注入初始化服务实例。
func NewProfileService(
	userRepo mysql.UserRepository,
	followRepo mysql.FollowRepository,
	cosClient dependencies.COSClientInterface,
	logger *core.ZapLogger,
) ProfileService {
	return &profileService{
		userRepo:   userRepo,
		followRepo: followRepo,
		cosClient:  cosClient,
		logger:     logger,
	}
}

// GetProfile 实现公开资料查询。
func (s *profileService) GetProfile(ctx context.Context, userID string, viewerID string) (*vo.ProfileVO, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := vo.NewProfileVO(user)

	if profile.Followers, err = s.followRepo.CountFollowers(ctx, userID); err != nil {
		return nil, fmt.Errorf("统计粉丝数失败: %w", err)
	}
	if profile.Following, err = s.followRepo.CountFollowing(ctx, userID); err != nil {
		return nil, fmt.Errorf("统计关注数失败: %w", err)
	}

	if viewerID != "" && viewerID != userID {
		following, followErr := s.followRepo.IsFollowing(ctx, viewerID, userID)
		if followErr != nil {
			// 关注状态查询失败时降级为未关注，不阻塞资料页。
			s.logger.Warn("查询关注状态失败", zap.Error(followErr),
				zap.String("viewerID", viewerID), zap.String("userID", userID))
		}
		profile.FollowedByViewer = following
	}

	return &profile, nil
}

// UpdateProfile 实现资料编辑。
func (s *profileService) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*vo.ProfileVO, error) {
	if vErr := validation.CheckProfile(req); vErr != nil {
		return nil, vErr
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, req.Name, *req.Bio, user.AvatarURL); err != nil {
		s.logger.Error("更新用户资料失败", zap.Error(err), zap.String("userID", userID))
		return nil, fmt.Errorf("更新用户资料失败: %w", err)
	}

	return s.GetProfile(ctx, userID, userID)
}

// allowedAvatarExts 头像允许的扩展名。
var allowedAvatarExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true,
}

// UploadAvatar 实现头像上传。
func (s *profileService) UploadAvatar(ctx context.Context, userID string, fileHeader *multipart.FileHeader) (*vo.ProfileVO, error) {
	extension := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedAvatarExts[extension] {
		return nil, &validation.ValidationError{Field: "avatar", Message: "Unsupported image format"}
	}

	file, err := fileHeader.Open()
	if err != nil {
		s.logger.Error("打开头像文件失败", zap.String("filename", fileHeader.Filename), zap.Error(err))
		return nil, fmt.Errorf("打开头像文件失败: %w", err)
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	// 对象键规则: blog/avatars/YYYYMMDD/userID_uuid.ext
	objectKey := fmt.Sprintf("%s%s/%s_%s%s",
		constant.COSObjectKeyPrefixAvatars,
		time.Now().Format("20060102"),
		userID,
		uuid.NewString(),
		extension,
	)

	avatarURL, err := s.cosClient.UploadFile(ctx, objectKey, file, fileHeader.Size, contentType)
	if err != nil {
		s.logger.Error("上传头像到 COS 失败", zap.String("objectKey", objectKey), zap.Error(err))
		return nil, fmt.Errorf("上传头像失败: %w", err)
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.UpdateProfile(ctx, userID, user.Name, user.Bio, avatarURL); err != nil {
		s.logger.Error("写入头像 URL 失败", zap.Error(err), zap.String("userID", userID))
		return nil, fmt.Errorf("写入头像 URL 失败: %w", err)
	}

	return s.GetProfile(ctx, userID, userID)
}
