package post

import (
	"regexp"
	"strings"
	"unicode"
)

// SummaryLimit 为摘要的最大字符数（按 rune 计，硬截断，不加省略号）。
const SummaryLimit = 180

// 摘要的文本重写规则。顺序敏感：后面的规则假设前面的语法已被剥离，
// 例如先整体移除围栏代码块，行内代码规则才不会命中块内的反引号。
var (
	reFence     = regexp.MustCompile("(?s)```.*?```")
	reInline    = regexp.MustCompile("`([^`]*)`")
	reImage     = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	reLink      = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	reBlockMark = regexp.MustCompile(`(?m)^[ \t]*(?:>[ \t]*|#{1,6}[ \t]*|[-*+][ \t]+|\d+\.[ \t]+)+`)
	reSpaces    = regexp.MustCompile(`\s+`)
)

// Summarize 从 markdown 正文生成纯文本摘要。
// 这是尽力而为的近似而非完整渲染：仅处理代码块/行内代码/图片/链接/
// 行首块级标记，加粗斜体等行内强调原样保留，嵌套或残缺语法可能漏出。
func Summarize(body string) string {
	s := reFence.ReplaceAllString(body, " ")
	s = reInline.ReplaceAllString(s, "$1")
	s = reImage.ReplaceAllString(s, "")
	s = reLink.ReplaceAllString(s, "$1")
	s = reBlockMark.ReplaceAllString(s, "")
	s = strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
	r := []rune(s)
	if len(r) > SummaryLimit {
		r = r[:SummaryLimit]
	}
	return string(r)
}

// CountWords 统计正文的非空白字符数。
// 面向中英混排取字符计数而非英文词数，对语言中立。
func CountWords(body string) int {
	n := 0
	for _, r := range body {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}
