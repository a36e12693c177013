// 包 post 负责单篇文章的解析：
// - front matter 解析与逐字段软性类型兜底
// - 文件名模式推导默认标题/日期
// - 摘要生成、字数统计与 slug 推导
package post

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/adrg/frontmatter"

	"go-blog-builder/internal/model"
)

// 文件名约定：YYYY-MM-DD-标题.md 提供默认日期与标题。
var reDatedName = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})-(.+)\.md$`)

// 无任何日期来源时的兜底日期。
const defaultDate = "2020-01-01"

// frontMeta 为 front matter 的受控字段集合。
// 每个字段独立做软性类型兜底：单字段类型不符只回退默认值，
// 不会使整篇解析失败；只有块本身格式错误才报错。
type frontMeta struct {
	Title    softString `yaml:"title"`
	Date     softString `yaml:"date"`
	Category softString `yaml:"category"`
	Tags     tagList    `yaml:"tags"`
	Top      softInt    `yaml:"top"`
}

// softString 接受任意标量并转为字符串；null 与非标量视为未设置。
type softString struct {
	val string
	set bool
}

func (s *softString) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v interface{}
	if err := unmarshal(&v); err != nil || v == nil {
		return nil
	}
	switch t := v.(type) {
	case string:
		s.val, s.set = t, true
	case int, int64, uint64, float64, bool:
		s.val, s.set = fmt.Sprint(t), true
	}
	return nil
}

// softInt 把无法按整数解析的值静默归零（不告警）。
type softInt struct{ val int }

func (s *softInt) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var n int
	if err := unmarshal(&n); err != nil {
		s.val = 0
		return nil
	}
	s.val = n
	return nil
}

// tagList 兼容三种写法：标量（单元素）、序列（原样）、null/缺省（空）。
type tagList struct{ val []string }

func (t *tagList) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var seq []interface{}
	if err := unmarshal(&seq); err == nil {
		for _, it := range seq {
			if it == nil {
				continue
			}
			t.val = append(t.val, fmt.Sprint(it))
		}
		return nil
	}
	var one interface{}
	if err := unmarshal(&one); err != nil || one == nil {
		return nil
	}
	t.val = append(t.val, fmt.Sprint(one))
	return nil
}

// Extract 将一篇源文件解析为索引记录（纯转换，不做 I/O）。
// 返回去除 front matter 的正文供页面渲染使用。
// 默认值优先级：front matter > 文件名模式 > 兜底常量。
// front matter 块格式错误会使该文件整体解析失败，由调用方跳过并告警。
func Extract(filename string, raw []byte) (model.PostRecord, string, error) {
	var fm frontMeta
	rest, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		return model.PostRecord{}, "", fmt.Errorf("parse front matter %s: %w", filename, err)
	}
	body := string(rest)

	rec := model.PostRecord{
		File:     filename,
		Title:    strings.TrimSuffix(filename, ".md"),
		Date:     defaultDate,
		Category: model.DefaultCategory,
		Tags:     []string{},
	}
	if m := reDatedName.FindStringSubmatch(filename); m != nil {
		rec.Date = m[1]
		rec.Title = m[2]
	}
	if fm.Title.set {
		rec.Title = fm.Title.val
	}
	if fm.Date.set {
		rec.Date = fm.Date.val
	}
	if fm.Category.set {
		rec.Category = fm.Category.val
	}
	if len(fm.Tags.val) > 0 {
		rec.Tags = fm.Tags.val
	}
	rec.Top = fm.Top.val
	rec.WordCount = CountWords(body)
	rec.Summary = Summarize(body)
	if rec.IsMicro() {
		// 说说不生成独立页面，正文直接随索引下发
		rec.Content = strings.TrimSpace(body)
	}
	return rec, body, nil
}
