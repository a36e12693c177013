// 包 model 定义导出的数据模型（文章记录/构建统计）。
package model

// 保留分类：
// - DefaultCategory 为未分类文章的占位分类
// - CategoryMicro（说说）正文随索引下发，不生成独立页面与站点地图条目
const (
	DefaultCategory = "默认"
	CategoryMicro   = "说说"
)

// PostRecord 为一篇文章在索引（data.json）中的条目。
// file 在集合内唯一且不可变；url 仅在聚合阶段赋值一次；
// 说说类文章不带 url，裁剪后的原始正文内联到 content。
type PostRecord struct {
	File      string   `json:"file"`
	Title     string   `json:"title"`
	Date      string   `json:"date"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
	WordCount int      `json:"word_count"`
	Content   string   `json:"content"`
	Summary   string   `json:"summary"`
	Top       int      `json:"top"`
	URL       string   `json:"url,omitempty"`
}

// IsMicro 判断是否为说说类文章。
func (p PostRecord) IsMicro() bool { return p.Category == CategoryMicro }

// Stats 为一轮构建的统计信息。
type Stats struct {
	PostsTotal int `json:"posts_total"`
	MicroTotal int `json:"micro_total"`
	Skipped    int `json:"skipped"`
	PagesMade  int `json:"pages_made"`
}
