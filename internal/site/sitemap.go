package site

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"
)

// XML 文本转义（& < > " '），loc 与 lastmod 均经过。
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// WriteSitemap 生成 sitemap.xml：站点根条目在前（lastmod 取当天），
// 之后按集合顺序每篇一条（lastmod 取文章日期）。
// 说说类文章没有独立页面，不进入站点地图。
func WriteSitemap(path string, entries []Entry, baseURL string, now time.Time) error {
	base := strings.TrimSuffix(baseURL, "/")
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	buf.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	writeURLEntry(&buf, base+"/", now.Format("2006-01-02"))
	for _, e := range entries {
		if e.Record.IsMicro() {
			continue
		}
		writeURLEntry(&buf, base+e.Record.URL, e.Record.Date)
	}
	buf.WriteString("</urlset>\n")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write sitemap %s: %w", path, err)
	}
	return nil
}

func writeURLEntry(buf *bytes.Buffer, loc, lastmod string) {
	buf.WriteString("  <url>\n")
	fmt.Fprintf(buf, "    <loc>%s</loc>\n", xmlEscaper.Replace(loc))
	fmt.Fprintf(buf, "    <lastmod>%s</lastmod>\n", xmlEscaper.Replace(lastmod))
	buf.WriteString("  </url>\n")
}
