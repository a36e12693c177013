// 命令行入口：
// - 解析 flags 与 settings.yaml / .env
// - 初始化日志，校验文章目录与参考模板页（缺失均致命）
// - 扫描文章目录并生成 data.json / sitemap.xml / feed.xml / 独立页面
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"go-blog-builder/internal/config"
	"go-blog-builder/internal/export"
	"go-blog-builder/internal/logx"
	"go-blog-builder/internal/model"
	"go-blog-builder/internal/page"
	"go-blog-builder/internal/site"
)

func main() {
	var (
		configPath = flag.String("config", "settings.yaml", "path to settings.yaml")
		postsDir   = flag.String("posts", "", "posts directory (overrides config)")
		outDir     = flag.String("out", "", "output directory (overrides config)")
	)
	flag.Parse()

	// 1) 加载 .env 与配置（默认值 + BLOG_SITE_URL 覆盖）
	_ = godotenv.Load()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *postsDir != "" {
		cfg.PostsDir = *postsDir
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}

	// 2) 初始化日志：级别/格式/语言/颜色
	logx.Init(cfg.LogLevel, cfg.LogFormat, cfg.LogLocale, cfg.LogColor)

	// 3) 启动前置检查：任何输出写出之前先失败
	if fi, err := os.Stat(cfg.PostsDir); err != nil || !fi.IsDir() {
		log.Fatalf("posts dir missing: %s", cfg.PostsDir)
	}
	theme, err := page.ExtractTheme(cfg.TemplatePage)
	if err != nil {
		log.Fatalf("load template page: %v", err)
	}

	// 4) 构建集合：单篇失败仅告警跳过
	entries, skipped, err := site.Collect(cfg.PostsDir)
	if err != nil {
		log.Fatalf("collect posts: %v", err)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		log.Fatalf("make output dir: %v", err)
	}

	// 5) 索引 / 站点地图 / 订阅
	if err := export.WriteIndex(filepath.Join(cfg.OutputDir, "data.json"), site.Records(entries)); err != nil {
		log.Fatalf("export index: %v", err)
	}
	if err := site.WriteSitemap(filepath.Join(cfg.OutputDir, "sitemap.xml"), entries, cfg.SiteURL, time.Now()); err != nil {
		log.Fatalf("write sitemap: %v", err)
	}
	if err := site.WriteFeed(filepath.Join(cfg.OutputDir, "feed.xml"), entries, cfg.SiteURL, cfg.SiteTitle, cfg.MaxFeedPosts); err != nil {
		log.Fatalf("write feed: %v", err)
	}

	// 6) 独立页面与旧链接跳转页（全量清空重建）
	pages, err := page.RenderAll(cfg.OutputDir, entries, theme, cfg.SiteURL)
	if err != nil {
		log.Fatalf("render pages: %v", err)
	}

	st := model.Stats{PostsTotal: len(entries), Skipped: skipped, PagesMade: pages}
	for _, e := range entries {
		if e.Record.IsMicro() {
			st.MicroTotal++
		}
	}
	logx.Infof("构建完成：文章=%d（说说=%d）跳过=%d 页面=%d", st.PostsTotal, st.MicroTotal, st.Skipped, st.PagesMade)
}
