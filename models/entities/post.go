package entities

import (
	"strings"

	"github.com/Xushengqwer/go-common/models/entities"

	"github.com/Xushengqwer/blog_service/models/enums"
)

// Post 帖子实体
// - 使用场景: 信息流列表页与详情页的数据，存储标题、正文、分类、作者引用、封面图、状态、浏览量
// - 表名: posts (GORM 默认使用结构体名复数形式)
type Post struct {
	entities.BaseModel // 嵌入自定义的 BaseModel ,包含 ID, CreatedAt, UpdatedAt, DeletedAt，支持软删除

	// 标题，必填，最大长度200个字符（与校验层约束一致）
	// - GORM 标签: type:varchar(255) 指定数据库类型，not null 表示非空
	Title string `gorm:"type:varchar(255);not null"`

	// 正文，支持多行文本，存储为 TEXT 类型
	// - 校验层约束最大 50,000 字符，MySQL TEXT (64KB) 足够容纳
	Content string `gorm:"type:text;not null"`

	// 主分类（旧版单分类字段，保留用于兼容）
	// - 新数据写入时恒等于 Categories[0]；旧数据可能只有这一个字段。
	// - 展示/筛选永远走 EffectiveCategories，不直接读这个字段。
	Category string `gorm:"type:varchar(50);not null"`

	// 分类列表（新版多分类字段，1~5 个）
	// - 以 JSON 数组形式落库；旧数据此字段为 NULL。
	Categories []string `gorm:"serializer:json;type:json"`

	// 作者ID，关联用户表，外键
	// - 类型: char(36)，用户ID为UUID格式（36个字符）
	AuthorID string `gorm:"type:char(36);not null;index"`

	// 封面图 URL，可选
	// - 数据来源于 COS 上传后返回的公开访问 URL
	CoverImageURL string `gorm:"type:varchar(1023)"`

	// 状态，枚举类型：0=草稿, 1=已发布
	// - GORM 标签: type:int 指定整数类型，default:0 设置默认值为草稿
	Status enums.PostStatus `gorm:"type:int;default:0;index"`

	// 浏览量，统计帖子的浏览次数
	// - 实时计数在 Redis 中累加，由定时任务批量回写到这里
	ViewCount int64 `gorm:"type:bigint;default:0"`
}

// EffectiveCategories 推导帖子的有效分类列表。
// - 新版 Categories 字段存在且非空时原样返回；否则把旧版单分类包装为单元素列表。
// - 旧数据中单分类为空白时返回空列表，这类帖子只能被 "All" 筛选命中。
// - 所有展示、筛选、分面逻辑必须统一经过这里，避免新旧两种数据形态产生分叉。
func (p *Post) EffectiveCategories() []string {
	if len(p.Categories) > 0 {
		return p.Categories
	}
	if strings.TrimSpace(p.Category) == "" {
		return []string{}
	}
	return []string{p.Category}
}
