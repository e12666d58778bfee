package myErrors

import "errors"

// ErrCacheMiss 表示在缓存层未找到对应的键值
var ErrCacheMiss = errors.New("cache: key not found (miss)")

// ErrSelfFollow 表示用户尝试关注自己，被服务层拒绝
var ErrSelfFollow = errors.New("follow: cannot follow yourself")

// ErrEmailTaken 表示注册邮箱已被占用
var ErrEmailTaken = errors.New("auth: email already registered")

// ErrInvalidCredentials 表示登录凭据不正确（不区分邮箱不存在与密码错误）
var ErrInvalidCredentials = errors.New("auth: invalid email or password")

// ErrSessionNotFound 表示会话令牌不存在或已过期
var ErrSessionNotFound = errors.New("auth: session not found or expired")
