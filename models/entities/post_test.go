package entities

import (
	"reflect"
	"testing"
)

func TestEffectiveCategories(t *testing.T) {
	tests := []struct {
		name       string
		category   string
		categories []string
		want       []string
	}{
		{"新版多分类原样返回", "Go", []string{"Go", "Redis"}, []string{"Go", "Redis"}},
		{"新版单分类原样返回", "", []string{"Design"}, []string{"Design"}},
		{"旧版单分类包装为列表", "Travel", nil, []string{"Travel"}},
		{"旧版单分类为空白时返回空列表", "   ", nil, []string{}},
		{"两个字段都为空时返回空列表", "", nil, []string{}},
		{"新版字段优先于旧版字段", "Legacy", []string{"Food"}, []string{"Food"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Post{Category: tt.category, Categories: tt.categories}
			got := p.EffectiveCategories()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("EffectiveCategories() = %v, 期望 %v", got, tt.want)
			}
		})
	}
}
