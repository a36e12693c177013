package site

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"
)

// WriteFeed 生成 RSS 2.0 订阅（feed.xml）：与索引同序，最多 max 条，
// 描述取文章摘要。说说类不进入订阅。
func WriteFeed(path string, entries []Entry, baseURL, title string, max int) error {
	base := strings.TrimSuffix(baseURL, "/")
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	buf.WriteString(`<rss version="2.0">` + "\n")
	buf.WriteString("<channel>\n")
	fmt.Fprintf(&buf, "  <title>%s</title>\n", xmlEscaper.Replace(title))
	fmt.Fprintf(&buf, "  <link>%s/</link>\n", xmlEscaper.Replace(base))
	fmt.Fprintf(&buf, "  <description>%s</description>\n", xmlEscaper.Replace(title))
	n := 0
	for _, e := range entries {
		if e.Record.IsMicro() {
			continue
		}
		if max > 0 && n >= max {
			break
		}
		link := xmlEscaper.Replace(base + e.Record.URL)
		buf.WriteString("  <item>\n")
		fmt.Fprintf(&buf, "    <title>%s</title>\n", xmlEscaper.Replace(e.Record.Title))
		fmt.Fprintf(&buf, "    <link>%s</link>\n", link)
		fmt.Fprintf(&buf, "    <guid>%s</guid>\n", link)
		fmt.Fprintf(&buf, "    <pubDate>%s</pubDate>\n", xmlEscaper.Replace(pubDate(e.Record.Date)))
		fmt.Fprintf(&buf, "    <description>%s</description>\n", xmlEscaper.Replace(e.Record.Summary))
		buf.WriteString("  </item>\n")
		n++
	}
	buf.WriteString("</channel>\n")
	buf.WriteString("</rss>\n")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write feed %s: %w", path, err)
	}
	return nil
}

// pubDate 将 YYYY-MM-DD 转为 RFC1123Z（RSS 要求的日期格式）；
// 无法解析的日期原样输出，交给订阅端容错。
func pubDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format(time.RFC1123Z)
}
