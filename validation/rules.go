package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Xushengqwer/blog_service/models/dto"
)

// ValidationError 描述单个字段的校验失败。校验函数在遇到第一个
// 非法字段时立即返回，Message 可直接透传给客户端展示。
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	upperRegex    = regexp.MustCompile(`[A-Z]`)
	lowerRegex    = regexp.MustCompile(`[a-z]`)
	digitRegex    = regexp.MustCompile(`[0-9]`)
	categoryRegex = regexp.MustCompile(`^[a-zA-Z0-9\s-]+$`)
)

// Email 校验并规范化邮箱地址：先去除首尾空白，再检查格式与长度。
// 返回规范化后的值。
func Email(s string) (string, *ValidationError) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return s, &ValidationError{Field: "email", Message: "Invalid email address"}
	}
	if utf8.RuneCountInString(s) > 255 {
		return s, &ValidationError{Field: "email", Message: "Email must be less than 255 characters"}
	}
	return s, nil
}

// Password 校验注册密码强度。密码不做 trim，空白字符算作有效内容。
func Password(s string) *ValidationError {
	if utf8.RuneCountInString(s) < 8 {
		return &ValidationError{Field: "password", Message: "Password must be at least 8 characters"}
	}
	if utf8.RuneCountInString(s) > 72 {
		return &ValidationError{Field: "password", Message: "Password must be less than 72 characters"}
	}
	if !upperRegex.MatchString(s) {
		return &ValidationError{Field: "password", Message: "Password must contain at least one uppercase letter"}
	}
	if !lowerRegex.MatchString(s) {
		return &ValidationError{Field: "password", Message: "Password must contain at least one lowercase letter"}
	}
	if !digitRegex.MatchString(s) {
		return &ValidationError{Field: "password", Message: "Password must contain at least one number"}
	}
	return nil
}

// Name 校验用户昵称，返回去除首尾空白后的值
func Name(s string) (string, *ValidationError) {
	s = strings.TrimSpace(s)
	if s == "" {
		return s, &ValidationError{Field: "name", Message: "Name cannot be empty"}
	}
	if utf8.RuneCountInString(s) > 100 {
		return s, &ValidationError{Field: "name", Message: "Name must be less than 100 characters"}
	}
	return s, nil
}

// PostTitle 校验帖子标题，返回去除首尾空白后的值
func PostTitle(s string) (string, *ValidationError) {
	s = strings.TrimSpace(s)
	if s == "" {
		return s, &ValidationError{Field: "title", Message: "Title cannot be empty"}
	}
	if utf8.RuneCountInString(s) > 200 {
		return s, &ValidationError{Field: "title", Message: "Title must be less than 200 characters"}
	}
	return s, nil
}

// PostContent 校验帖子正文，返回去除首尾空白后的值
func PostContent(s string) (string, *ValidationError) {
	s = strings.TrimSpace(s)
	if s == "" {
		return s, &ValidationError{Field: "content", Message: "Content cannot be empty"}
	}
	if utf8.RuneCountInString(s) > 50000 {
		return s, &ValidationError{Field: "content", Message: "Content must be less than 50,000 characters"}
	}
	return s, nil
}

// Category 校验单个分类名，返回去除首尾空白后的值。
// 仅允许字母、数字、空白与连字符。
func Category(s string) (string, *ValidationError) {
	s = strings.TrimSpace(s)
	if s == "" {
		return s, &ValidationError{Field: "categories", Message: "Category cannot be empty"}
	}
	if utf8.RuneCountInString(s) > 50 {
		return s, &ValidationError{Field: "categories", Message: "Category must be less than 50 characters"}
	}
	if !categoryRegex.MatchString(s) {
		return s, &ValidationError{Field: "categories", Message: "Category can only contain letters, numbers, spaces, and hyphens"}
	}
	return s, nil
}

// Categories 校验分类列表：先检查 1 到 5 个的数量边界，再逐个校验元素。
// 返回规范化后的新切片，不修改入参。
func Categories(in []string) ([]string, *ValidationError) {
	if len(in) < 1 {
		return nil, &ValidationError{Field: "categories", Message: "At least one category is required"}
	}
	if len(in) > 5 {
		return nil, &ValidationError{Field: "categories", Message: "Maximum 5 categories allowed"}
	}
	out := make([]string, 0, len(in))
	for _, c := range in {
		normalized, err := Category(c)
		if err != nil {
			return nil, err
		}
		out = append(out, normalized)
	}
	return out, nil
}

// Comment 校验评论内容，返回去除首尾空白后的值
func Comment(s string) (string, *ValidationError) {
	s = strings.TrimSpace(s)
	if s == "" {
		return s, &ValidationError{Field: "content", Message: "Comment cannot be empty"}
	}
	if utf8.RuneCountInString(s) > 5000 {
		return s, &ValidationError{Field: "content", Message: "Comment must be less than 5,000 characters"}
	}
	return s, nil
}

// Bio 校验个人简介。允许为 nil，nil 与纯空白都规范化为空字符串。
func Bio(s *string) (string, *ValidationError) {
	if s == nil {
		return "", nil
	}
	trimmed := strings.TrimSpace(*s)
	if utf8.RuneCountInString(trimmed) > 500 {
		return trimmed, &ValidationError{Field: "bio", Message: "Bio must be less than 500 characters"}
	}
	return trimmed, nil
}

// CheckSignUp 按 name、email、password 的顺序校验注册请求，
// 返回第一个失败字段的错误。通过时就地写回规范化后的值。
func CheckSignUp(req *dto.SignUpRequest) *ValidationError {
	name, err := Name(req.Name)
	if err != nil {
		return err
	}
	email, err := Email(req.Email)
	if err != nil {
		return err
	}
	if err := Password(req.Password); err != nil {
		return err
	}
	req.Name = name
	req.Email = email
	return nil
}

// CheckSignIn 校验登录请求。登录时不检查密码强度，只要求非空，
// 否则旧密码规则收紧后老用户将无法登录。
func CheckSignIn(req *dto.SignInRequest) *ValidationError {
	email, err := Email(req.Email)
	if err != nil {
		return err
	}
	if req.Password == "" {
		return &ValidationError{Field: "password", Message: "Password is required"}
	}
	req.Email = email
	return nil
}

// CheckPost 按 title、content、categories 的顺序校验发布请求，
// 返回第一个失败字段的错误。通过时就地写回规范化后的值。
func CheckPost(req *dto.SavePostRequest) *ValidationError {
	title, err := PostTitle(req.Title)
	if err != nil {
		return err
	}
	content, err := PostContent(req.Content)
	if err != nil {
		return err
	}
	categories, err := Categories(req.Categories)
	if err != nil {
		return err
	}
	req.Title = title
	req.Content = content
	req.Categories = categories
	return nil
}

// CheckComment 校验评论请求，通过时就地写回规范化后的内容
func CheckComment(req *dto.CreateCommentRequest) *ValidationError {
	content, err := Comment(req.Content)
	if err != nil {
		return err
	}
	req.Content = content
	return nil
}

// CheckProfile 校验资料更新请求。通过后 Bio 一定非 nil，
// 未提供或纯空白的简介统一写回空字符串。
func CheckProfile(req *dto.UpdateProfileRequest) *ValidationError {
	name, err := Name(req.Name)
	if err != nil {
		return err
	}
	bio, err := Bio(req.Bio)
	if err != nil {
		return err
	}
	req.Name = name
	req.Bio = &bio
	return nil
}
