package config

type KafkaConfig struct {
	Brokers         []string `mapstructure:"brokers" json:"brokers" yaml:"brokers"`
	Topics          Topics   `mapstructure:"topics" json:"topics" yaml:"topics"`
	ConsumerGroupID string   `mapstructure:"consumer_group_id" json:"consumer_group_id" yaml:"consumer_group_id"`
}

type Topics struct {
	PostPublished  string `mapstructure:"postPublished" yaml:"postPublished"`   //  帖子发布主题
	PostDeleted    string `mapstructure:"postDeleted" yaml:"postDeleted"`       //  帖子删除主题
	CommentChanged string `mapstructure:"commentChanged" yaml:"commentChanged"` //  评论变更主题（新增评论后触发缓存刷新）
}
