package service

import (
	"reflect"
	"testing"

	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/vo"
)

func postWithCategories(categories ...string) *entities.Post {
	return &entities.Post{Categories: categories}
}

func TestBuildFacets(t *testing.T) {
	testCases := []struct {
		name  string
		posts []*entities.Post
		want  []string
	}{
		{
			name:  "空列表只有All",
			posts: nil,
			want:  []string{"All"},
		},
		{
			name: "按首次出现顺序去重",
			posts: []*entities.Post{
				postWithCategories("Go", "Redis"),
				postWithCategories("Redis", "MySQL"),
				postWithCategories("Go"),
			},
			want: []string{"All", "Go", "Redis", "MySQL"},
		},
		{
			name: "旧版单分类字段参与分面",
			posts: []*entities.Post{
				{Category: "Legacy"},
				postWithCategories("Go"),
			},
			want: []string{"All", "Legacy", "Go"},
		},
		{
			name: "旧数据分类为空白时不产生分面",
			posts: []*entities.Post{
				{Category: "   "},
				postWithCategories("Go"),
			},
			want: []string{"All", "Go"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := BuildFacets(tc.posts)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("BuildFacets() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFilterPostVOs(t *testing.T) {
	posts := []*vo.PostVO{
		{ID: 1, Title: "Go 并发模式", Content: "channel 与 goroutine", AuthorName: "Alice", Categories: []string{"Go"}},
		{ID: 2, Title: "Redis 缓存实践", Content: "热点数据", AuthorName: "Bob", Categories: []string{"Redis", "Go"}},
		{ID: 3, Title: "随笔", Content: "没有分类的旧帖子", AuthorName: "Carol", Categories: []string{}},
	}

	testCases := []struct {
		name             string
		searchText       string
		selectedCategory string
		wantIDs          []uint64
	}{
		{name: "无条件返回全部", searchText: "", selectedCategory: "", wantIDs: []uint64{1, 2, 3}},
		{name: "All等同于不过滤分类", searchText: "", selectedCategory: "All", wantIDs: []uint64{1, 2, 3}},
		{name: "标题命中", searchText: "并发", selectedCategory: "", wantIDs: []uint64{1}},
		{name: "正文命中", searchText: "热点", selectedCategory: "", wantIDs: []uint64{2}},
		{name: "作者名大小写不敏感", searchText: "ALICE", selectedCategory: "", wantIDs: []uint64{1}},
		{name: "搜索词前后空白被忽略", searchText: "  redis  ", selectedCategory: "", wantIDs: []uint64{2}},
		{name: "分类筛选", searchText: "", selectedCategory: "Go", wantIDs: []uint64{1, 2}},
		{name: "搜索与分类同时生效", searchText: "缓存", selectedCategory: "Go", wantIDs: []uint64{2}},
		{name: "无分类帖子只在All下可见", searchText: "", selectedCategory: "Redis", wantIDs: []uint64{2}},
		{name: "无匹配返回空列表", searchText: "kubernetes", selectedCategory: "", wantIDs: []uint64{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterPostVOs(posts, tc.searchText, tc.selectedCategory)
			gotIDs := make([]uint64, 0, len(got))
			for _, p := range got {
				gotIDs = append(gotIDs, p.ID)
			}
			if !reflect.DeepEqual(gotIDs, tc.wantIDs) {
				t.Errorf("FilterPostVOs(%q, %q) = %v, want %v",
					tc.searchText, tc.selectedCategory, gotIDs, tc.wantIDs)
			}
		})
	}
}

func TestFilterPostVOsPreservesOrder(t *testing.T) {
	posts := []*vo.PostVO{
		{ID: 5, Title: "go part one", Categories: []string{"Go"}},
		{ID: 3, Title: "go part two", Categories: []string{"Go"}},
		{ID: 9, Title: "go part three", Categories: []string{"Go"}},
	}

	got := FilterPostVOs(posts, "go", "Go")
	wantIDs := []uint64{5, 3, 9}
	gotIDs := make([]uint64, 0, len(got))
	for _, p := range got {
		gotIDs = append(gotIDs, p.ID)
	}
	if !reflect.DeepEqual(gotIDs, wantIDs) {
		t.Errorf("过滤后顺序 = %v, want %v", gotIDs, wantIDs)
	}
}
