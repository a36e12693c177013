package page

import (
	"bytes"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"go-blog-builder/internal/site"
)

// 文章为站长自己的可信输入，允许正文内嵌 HTML。
var md = goldmark.New(goldmark.WithRendererOptions(gmhtml.WithUnsafe()))

const pageShell = `<!DOCTYPE html>
<html lang="zh-CN">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<link rel="canonical" href="%s">
<style>
%s
</style>
</head>
<body>
<article class="post">
<h1>%s</h1>
<p class="post-meta">%s</p>
%s</article>
%s
</body>
</html>
`

const redirectShell = `<!DOCTYPE html>
<html lang="zh-CN">
<head>
<meta charset="utf-8">
<title>%s</title>
<link rel="canonical" href="%s">
<meta http-equiv="refresh" content="0; url=%s">
<script>location.replace(%q);</script>
</head>
<body><a href="%s">%s</a></body>
</html>
`

// RenderAll 清空并重建 <outDir>/p，为每篇非说说文章生成独立页面
//（含指向 <base>/p/<主 slug>/ 的 canonical）；当旧式 slug 与主 slug
// 不同时，额外在旧路径生成立即跳转页。返回写出的页面数。
// 每轮全量重建，对上一轮输出幂等。
func RenderAll(outDir string, entries []site.Entry, theme Theme, baseURL string) (int, error) {
	pdir := filepath.Join(outDir, "p")
	if err := os.RemoveAll(pdir); err != nil {
		return 0, fmt.Errorf("clean pages dir %s: %w", pdir, err)
	}
	if err := os.MkdirAll(pdir, 0o755); err != nil {
		return 0, fmt.Errorf("make pages dir %s: %w", pdir, err)
	}
	base := strings.TrimSuffix(baseURL, "/")
	made := 0
	for _, e := range entries {
		if e.Record.IsMicro() {
			continue
		}
		canonical := base + "/p/" + e.Primary + "/"
		var body bytes.Buffer
		if err := md.Convert([]byte(e.Body), &body); err != nil {
			return made, fmt.Errorf("render markdown %s: %w", e.Record.File, err)
		}
		title := html.EscapeString(e.Record.Title)
		doc := fmt.Sprintf(pageShell,
			title, canonical, theme.CSS,
			title, html.EscapeString(e.Record.Date), body.String(), theme.Footer)
		if err := writePage(filepath.Join(pdir, e.Primary), doc); err != nil {
			return made, err
		}
		made++
		if e.Legacy != e.Primary {
			target := "/p/" + e.Primary + "/"
			shim := fmt.Sprintf(redirectShell, title, canonical, target, target, target, title)
			if err := writePage(filepath.Join(pdir, e.Legacy), shim); err != nil {
				return made, err
			}
			made++
		}
	}
	return made, nil
}

// writePage 在 dir 下写出 index.html。
func writePage(dir, content string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("make page dir %s: %w", dir, err)
	}
	p := filepath.Join(dir, "index.html")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write page %s: %w", p, err)
	}
	return nil
}
