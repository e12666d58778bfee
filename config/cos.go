package config

// COSConfig 腾讯云对象存储配置，用于封面图与头像上传
type COSConfig struct {
	SecretID   string `mapstructure:"secretID" json:"secretID" yaml:"secretID"`
	SecretKey  string `mapstructure:"secretKey" json:"secretKey" yaml:"secretKey"`
	BucketName string `mapstructure:"bucketName" json:"bucketName" yaml:"bucketName"`
	AppID      string `mapstructure:"appID" json:"appID" yaml:"appID"`
	Region     string `mapstructure:"region" json:"region" yaml:"region"`
	// BaseURL 可选，配置 CDN 或自定义域名作为对象公开访问的基础 URL。
	// 留空时使用存储桶的标准访问域名。
	BaseURL string `mapstructure:"baseURL" json:"baseURL" yaml:"baseURL"`
}
