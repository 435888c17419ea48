package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func sampleBooks() []*Book {
	return []*Book{
		{Title: "Things Fall Apart", Author: "Chinua Achebe", Year: 1958, Language: "English", Country: "Nigeria", Genres: []string{"Fiction", "Historical"}},
		{Title: "Pride and Prejudice", Author: "Jane Austen", Year: 1813, Language: "English", Country: "United Kingdom", Genres: []string{"Romance", "Fiction"}},
		{Title: "Le Père Goriot", Author: "Honoré de Balzac", Year: 1835, Language: "French", Country: "France", Genres: []string{"Fiction", "Drama"}},
		{Title: "Emma", Author: "Jane Austen", Year: 1815, Language: "English", Country: "United Kingdom"},
		{Title: "Don Quijote De La Mancha", Author: "Miguel de Cervantes", Year: 1610, Language: "Spanish", Country: "Spain", Genres: []string{"Adventure", "Fiction", "Fiction"}},
	}
}

func titles(books []*Book) []string {
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.Title)
	}
	return out
}

func TestFilterApply(t *testing.T) {
	books := sampleBooks()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"无条件返回全部", Filter{}, titles(books)},
		{"作者不区分大小写", Filter{Author: "AUSTEN"}, []string{"Pride and Prejudice", "Emma"}},
		{"类型匹配任意元素", Filter{Genre: "drama"}, []string{"Le Père Goriot"}},
		{"类型子串匹配", Filter{Genre: "fic"}, []string{"Things Fall Apart", "Pride and Prejudice", "Le Père Goriot", "Don Quijote De La Mancha"}},
		{"语言", Filter{Language: "english"}, []string{"Things Fall Apart", "Pride and Prejudice", "Emma"}},
		{"年份下限含边界", Filter{YearFrom: intPtr(1815)}, []string{"Things Fall Apart", "Le Père Goriot", "Emma"}},
		{"年份上限含边界", Filter{YearTo: intPtr(1815)}, []string{"Pride and Prejudice", "Emma", "Don Quijote De La Mancha"}},
		{"年份区间", Filter{YearFrom: intPtr(1800), YearTo: intPtr(1850)}, []string{"Pride and Prejudice", "Le Père Goriot", "Emma"}},
		{"搜索书名", Filter{Search: "emma"}, []string{"Emma"}},
		{"搜索作者", Filter{Search: "cervantes"}, []string{"Don Quijote De La Mancha"}},
		{"多条件AND", Filter{Author: "austen", Genre: "romance"}, []string{"Pride and Prejudice"}},
		{"没有结果", Filter{Language: "klingon"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(books)
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestFilterApplyDoesNotMutateInput(t *testing.T) {
	books := sampleBooks()
	before := titles(books)

	_ = Filter{Author: "austen"}.Apply(books)

	assert.Equal(t, before, titles(books))
}

func TestGroupBooks(t *testing.T) {
	books := sampleBooks()

	t.Run("按作者分组并排序", func(t *testing.T) {
		groups := GroupBooks(books, GroupByAuthor)
		require.Len(t, groups, 4)

		assert.Equal(t, "Chinua Achebe", groups[0].Key)
		assert.Equal(t, "Honoré de Balzac", groups[1].Key)
		assert.Equal(t, "Jane Austen", groups[2].Key)
		assert.Equal(t, 2, groups[2].Count)
		assert.Equal(t, []string{"Pride and Prejudice", "Emma"}, titles(groups[2].Books), "组内保持目录顺序")
		assert.Equal(t, "Miguel de Cervantes", groups[3].Key)
	})

	t.Run("按类型分组一本书出现在多个组", func(t *testing.T) {
		groups := GroupBooks(books, GroupByGenre)

		keys := make([]string, 0, len(groups))
		byKey := make(map[string]Group)
		for _, g := range groups {
			keys = append(keys, g.Key)
			byKey[g.Key] = g
		}
		assert.Equal(t, []string{"Adventure", "Drama", "Fiction", "Historical", "Romance"}, keys)

		assert.Contains(t, titles(byKey["Fiction"].Books), "Le Père Goriot")
		assert.Contains(t, titles(byKey["Drama"].Books), "Le Père Goriot")
	})

	t.Run("同一组内按书名去重", func(t *testing.T) {
		groups := GroupBooks(books, GroupByGenre)
		for _, g := range groups {
			seen := map[string]bool{}
			for _, b := range g.Books {
				assert.False(t, seen[b.Title], "%s 在 %s 中重复", b.Title, g.Key)
				seen[b.Title] = true
			}
			assert.Equal(t, len(g.Books), g.Count)
		}

		fiction := groups[2]
		require.Equal(t, "Fiction", fiction.Key)
		assert.Equal(t, 4, fiction.Count)
	})

	t.Run("重复书名的记录只保留第一条", func(t *testing.T) {
		dup := append(sampleBooks(), &Book{Title: "Emma", Author: "Jane Austen", Language: "English"})
		groups := GroupBooks(dup, GroupByLanguage)
		for _, g := range groups {
			if g.Key == "English" {
				assert.Equal(t, 3, g.Count)
			}
		}
	})

	t.Run("没有类型的书不出现在类型分组", func(t *testing.T) {
		groups := GroupBooks(books, GroupByGenre)
		for _, g := range groups {
			assert.NotContains(t, titles(g.Books), "Emma")
		}
	})

	t.Run("空输入返回空切片", func(t *testing.T) {
		groups := GroupBooks(nil, GroupByLanguage)
		assert.NotNil(t, groups)
		assert.Empty(t, groups)
	})
}

func TestTruncate(t *testing.T) {
	items := []int{1, 2, 3}

	assert.Equal(t, []int{1, 2, 3}, Truncate(items, nil))
	assert.Equal(t, []int{1, 2}, Truncate(items, intPtr(2)))
	assert.Equal(t, []int{1, 2, 3}, Truncate(items, intPtr(10)))

	empty := Truncate(items, intPtr(0))
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
