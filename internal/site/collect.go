// 包 site 负责集合构建与站点级输出：
// - 扫描文章目录并逐篇抽取元数据（单篇失败告警跳过）
// - 排序、赋 URL、slug 冲突检测
// - sitemap.xml 与 feed.xml 序列化
package site

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go-blog-builder/internal/logx"
	"go-blog-builder/internal/model"
	"go-blog-builder/internal/post"
)

// Entry 为集合中的一篇文章：索引记录 + 页面渲染所需的正文与 slug。
// 记录在此之后不再变更（url 在本包内一次性赋值）。
type Entry struct {
	Record  model.PostRecord
	Body    string
	Primary string
	Legacy  string
}

// 留言板数据由前端单独处理，文件名含该子串（不区分大小写）的
// 文件不进入任何输出。
const guestbookMark = "guestbook"

// Collect 扫描 dir 下的 *.md，构建排序并赋好 URL 的文章集合。
// 单篇读取或解析失败不致命：告警并跳过，skipped 为跳过数。
// 目录本身不可读是致命错误，交由调用方终止本轮构建。
func Collect(dir string) (entries []Entry, skipped int, err error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, 0, fmt.Errorf("read posts dir %s: %w", dir, err)
	}
	seen := map[string]string{} // 主 slug -> 文件名
	for _, de := range des {
		name := de.Name()
		if de.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}
		if strings.Contains(strings.ToLower(name), guestbookMark) {
			continue
		}
		raw, rerr := os.ReadFile(filepath.Join(dir, name))
		if rerr != nil {
			logx.Warnf("读取文章失败，已跳过：%s 错误=%v", name, rerr)
			skipped++
			continue
		}
		rec, body, perr := post.Extract(name, raw)
		if perr != nil {
			logx.Warnf("解析文章失败，已跳过：%s 错误=%v", name, perr)
			skipped++
			continue
		}
		e := Entry{Record: rec, Body: body}
		e.Primary, e.Legacy = post.Slugs(name)
		if !rec.IsMicro() {
			e.Record.URL = "/p/" + e.Primary + "/"
			if prev, ok := seen[e.Primary]; ok {
				// 不同文件名归并到同一 slug 会相互覆盖页面；仅告警，不去重
				logx.Warnf("slug 冲突：%s 与 %s 均映射到 %s", name, prev, e.Primary)
			}
			seen[e.Primary] = name
		}
		entries = append(entries, e)
	}
	sortEntries(entries)
	return entries, skipped, nil
}

// sortEntries 按 (top, date, file) 整体降序。
// date 为固定 YYYY-MM-DD 格式，字符串比较即时间序；
// 完整三元键保证任意输入（含重复日期）下排序完全确定。
func sortEntries(es []Entry) {
	sort.Slice(es, func(i, j int) bool {
		a, b := es[i].Record, es[j].Record
		if a.Top != b.Top {
			return a.Top > b.Top
		}
		if a.Date != b.Date {
			return a.Date > b.Date
		}
		return a.File > b.File
	})
}

// Records 提取索引导出所需的记录切片（保持集合顺序）。
func Records(es []Entry) []model.PostRecord {
	out := make([]model.PostRecord, 0, len(es))
	for _, e := range es {
		out = append(out, e.Record)
	}
	return out
}
