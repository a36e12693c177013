package post

import "strings"

// 路径分隔符统一替换为 '-'，防止 slug 逃出目标目录。
var sepReplacer = strings.NewReplacer("/", "-", "\\", "-")

// Slugs 由源文件名推导主 slug 与旧式 slug（纯函数，无 I/O）。
// 主 slug 去掉 .md 后缀并替换路径分隔符，中文与空格原样保留——
// 为保持链接可读性放弃 URL 安全性纯度。
// 旧式 slug 为同一 stem 的百分号编码形式，兼容历史已发布链接；
// 调用方仅在两者不同时生成跳转页。
func Slugs(filename string) (primary, legacy string) {
	stem := strings.TrimSuffix(filename, ".md")
	return sepReplacer.Replace(stem), escapeAll(stem)
}

const upperhex = "0123456789ABCDEF"

// escapeAll 对 stem 做百分号编码：除 RFC 3986 非保留字符
//（字母/数字/-_.~）外全部转义，保留字符与空格、非 ASCII 均不例外，
// 十六进制使用大写，与旧构建脚本的输出逐字节一致。
func escapeAll(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0F])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '_', c == '.', c == '~':
		return true
	}
	return false
}
