// 包 page 负责页面输出：
// - 从参考页（前端 index.html）抽取内联样式与页脚
// - goldmark 渲染正文并写出独立页面
// - 旧式 slug 的跳转页
package page

import (
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Theme 为从参考页提取出的样式与页脚片段，直接嵌入每个独立页面。
type Theme struct {
	CSS    string
	Footer string
}

// ExtractTheme 解析参考页并提取全部 <style> 内容与首个 <footer> 片段。
// 参考页缺失是致命错误，由调用方终止本轮构建；
// 页内没有 style/footer 不算错误，对应片段为空。
func ExtractTheme(path string) (Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return Theme{}, fmt.Errorf("open template page %s: %w", path, err)
	}
	defer f.Close()
	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return Theme{}, fmt.Errorf("parse template page %s: %w", path, err)
	}
	var css strings.Builder
	doc.Find("style").Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			css.WriteString(t)
			css.WriteByte('\n')
		}
	})
	var footer string
	if sel := doc.Find("footer").First(); sel.Length() > 0 {
		if h, herr := goquery.OuterHtml(sel); herr == nil {
			footer = strings.TrimSpace(h)
		}
	}
	return Theme{CSS: strings.TrimSpace(css.String()), Footer: footer}, nil
}
