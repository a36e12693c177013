// 包 config 负责加载与校验构建配置（settings.yaml），
// 对外提供结构体 Config 及默认值/合法性校验；
// 站点地址可被环境变量 BLOG_SITE_URL 覆盖。
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// 仅保留当前需要的字段，避免过度设计（KISS/YAGNI）。
type Config struct {
	PostsDir     string `yaml:"POSTS_DIR"`     // 文章目录
	OutputDir    string `yaml:"OUTPUT_DIR"`    // 输出目录
	TemplatePage string `yaml:"TEMPLATE_PAGE"` // 参考页（抽取样式与页脚）
	SiteURL      string `yaml:"SITE_URL"`
	SiteTitle    string `yaml:"SITE_TITLE"`
	MaxFeedPosts int    `yaml:"MAX_FEED_POSTS"`
	LogLevel     string `yaml:"LOG_LEVEL"`
	LogFormat    string `yaml:"LOG_FORMAT"` // text|json|pretty
	LogLocale    string `yaml:"LOG_LOCALE"` // zh-CN|en
	LogColor     string `yaml:"LOG_COLOR"`  // auto|always|never
}

// EnvSiteURL 为站点地址的环境变量覆盖项（优先于配置文件）。
const EnvSiteURL = "BLOG_SITE_URL"

// Load 读取 YAML 配置并应用默认值与环境覆盖。
// 配置文件不存在不算错误——所有字段都有默认值，保持零配置可用；
// 文件存在但无法解析才报错。
func Load(path string) (*Config, error) {
	var c Config
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if uerr := yaml.Unmarshal(b, &c); uerr != nil {
			return nil, fmt.Errorf("unmarshal config %s: %w", path, uerr)
		}
	case os.IsNotExist(err):
		// 零配置运行：仅靠默认值与环境变量
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	if v := os.Getenv(EnvSiteURL); v != "" {
		c.SiteURL = v
	}
	return &c, nil
}

// Validate 负责合法性检查与默认值设置，避免在业务层分散判空逻辑。
func (c *Config) Validate() error {
	if c.MaxFeedPosts < 0 {
		return errors.New("MAX_FEED_POSTS must be >= 0")
	}
	if c.PostsDir == "" {
		c.PostsDir = "./posts"
	}
	if c.OutputDir == "" {
		c.OutputDir = "./dist"
	}
	if c.TemplatePage == "" {
		c.TemplatePage = "./index.html"
	}
	if c.SiteURL == "" {
		c.SiteURL = "https://blog.example.com"
	}
	if c.SiteTitle == "" {
		c.SiteTitle = "我的博客"
	}
	if c.MaxFeedPosts == 0 {
		c.MaxFeedPosts = 20
	}
	if c.LogFormat == "" {
		c.LogFormat = "pretty"
	}
	if c.LogLocale == "" {
		c.LogLocale = "zh-CN"
	}
	if c.LogColor == "" {
		c.LogColor = "auto"
	}
	return nil
}
