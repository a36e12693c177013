package post_test

import (
	"strings"
	"testing"

	"go-blog-builder/internal/post"
)

func TestSlugs_NoSeparators(t *testing.T) {
	for _, name := range []string{"a/b.md", `a\b.md`, "x/y/z.md", "普通.md"} {
		p, _ := post.Slugs(name)
		if strings.ContainsAny(p, `/\`) {
			t.Fatalf("primary slug %q contains separator", p)
		}
	}
}

func TestSlugs_AsciiSafeStemEqual(t *testing.T) {
	// 仅含非保留字符的 stem：两种 slug 必须一致，不生成跳转页
	p, l := post.Slugs("hello-world_1.2~x.md")
	if p != l {
		t.Fatalf("expect equal slugs, primary=%q legacy=%q", p, l)
	}
	if p != "hello-world_1.2~x" {
		t.Fatalf("primary=%q", p)
	}
}

func TestSlugs_UnicodeAndSpace(t *testing.T) {
	p, l := post.Slugs("Hello World.md")
	if p != "Hello World" {
		t.Fatalf("primary must keep space verbatim: %q", p)
	}
	if l != "Hello%20World" {
		t.Fatalf("legacy=%q want=Hello%%20World", l)
	}

	p, l = post.Slugs("你好.md")
	if p != "你好" {
		t.Fatalf("primary must keep unicode verbatim: %q", p)
	}
	// UTF-8 逐字节大写十六进制转义
	if l != "%E4%BD%A0%E5%A5%BD" {
		t.Fatalf("legacy=%q", l)
	}
}

func TestSlugs_ReservedChars(t *testing.T) {
	_, l := post.Slugs("a&b?.md")
	if l != "a%26b%3F" {
		t.Fatalf("reserved chars must be escaped: %q", l)
	}
}

func TestSlugs_Deterministic(t *testing.T) {
	p1, l1 := post.Slugs("2024-01-01-文章.md")
	p2, l2 := post.Slugs("2024-01-01-文章.md")
	if p1 != p2 || l1 != l2 {
		t.Fatalf("slug resolution must be pure: %q/%q vs %q/%q", p1, l1, p2, l2)
	}
}
