package config

// SourceConfig 描述一个 MySQL 数据源（主库或某个只读副本）。
// 连接池字段使用指针：nil 表示未单独配置，回落到 MySQLConfig 的共享默认值。
type SourceConfig struct {
	DSN string `mapstructure:"dsn" yaml:"dsn"`

	MaxIdleConns    *int `mapstructure:"max_idle_conns,omitempty" yaml:"max_idle_conns,omitempty"`
	MaxOpenConns    *int `mapstructure:"max_open_conns,omitempty" yaml:"max_open_conns,omitempty"`
	ConnMaxLifetime *int `mapstructure:"conn_max_lifetime,omitempty" yaml:"conn_max_lifetime,omitempty"` // 秒
}

// MySQLConfig 聚合主库与只读副本的配置。
// 博客的流量以读为主（信息流、详情页），写入（发帖、评论、点赞）相对少，
// 所以通过 dbresolver 把读请求分摊到 Read 列表；Read 为空时不启用读写分离，
// 全部流量走主库。
type MySQLConfig struct {
	Write SourceConfig   `mapstructure:"write" yaml:"write"`
	Read  []SourceConfig `mapstructure:"read" yaml:"read"`

	// 共享连接池默认值，单个数据源未覆盖时生效。
	SharedMaxIdleConns    int `mapstructure:"max_idle_conns" yaml:"max_idle_conn"`
	SharedMaxOpenConns    int `mapstructure:"max_open_conn" yaml:"max_open_conn"`
	SharedConnMaxLifetime int `mapstructure:"conn_max_lifetime" yaml:"conn_max_lifetime"` // 秒
}
