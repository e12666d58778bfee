package config

// AutosaveConfig 草稿自动保存相关配置
type AutosaveConfig struct {
	// IntervalSeconds 自动保存的触发间隔（秒）。
	// 编辑器侧的约定是 30 秒；调低会增大数据库写入频率，调高会放大意外丢稿窗口。
	IntervalSeconds int `mapstructure:"intervalSeconds" json:"intervalSeconds" yaml:"intervalSeconds"`
}

// AuthConfig 认证会话相关配置
type AuthConfig struct {
	// SessionTTLMinutes 会话令牌在 Redis 中的存活时间（分钟）。
	SessionTTLMinutes int `mapstructure:"sessionTTLMinutes" json:"sessionTTLMinutes" yaml:"sessionTTLMinutes"`
}
