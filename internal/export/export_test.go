package export_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go-blog-builder/internal/export"
	"go-blog-builder/internal/model"
)

func sample() []model.PostRecord {
	return []model.PostRecord{
		{File: "a.md", Title: "甲", Date: "2024-01-02", Category: "默认", Tags: []string{}, Summary: "s", URL: "/p/a/"},
		{File: "m.md", Title: "乙", Date: "2024-01-01", Category: model.CategoryMicro, Tags: []string{"碎碎念"}, Content: "正文"},
	}
}

func TestWriteIndex_RoundTrip(t *testing.T) {
	out := filepath.Join(t.TempDir(), "data.json")
	if err := export.WriteIndex(out, sample()); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, _ := os.ReadFile(out)
	var got []model.PostRecord
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 || got[0].File != "a.md" || got[1].File != "m.md" {
		t.Fatalf("order not preserved: %+v", got)
	}
}

func TestWriteIndex_FieldShape(t *testing.T) {
	out := filepath.Join(t.TempDir(), "data.json")
	if err := export.WriteIndex(out, sample()); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, _ := os.ReadFile(out)
	var raw []map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// 空 tags 序列化为 []，不是 null
	if tags, ok := raw[0]["tags"].([]any); !ok || tags == nil {
		t.Fatalf("tags should be [] not null: %v", raw[0]["tags"])
	}
	if _, ok := raw[0]["url"]; !ok {
		t.Fatalf("normal post should carry url")
	}
	// 说说条目不携带 url 字段
	if _, ok := raw[1]["url"]; ok {
		t.Fatalf("micro post must not carry url: %v", raw[1])
	}
	if raw[1]["content"] != "正文" {
		t.Fatalf("micro content missing: %v", raw[1])
	}
}

func TestWriteIndex_Idempotent(t *testing.T) {
	dir := t.TempDir()
	p1 := filepath.Join(dir, "one.json")
	p2 := filepath.Join(dir, "two.json")
	if err := export.WriteIndex(p1, sample()); err != nil {
		t.Fatalf("write1: %v", err)
	}
	if err := export.WriteIndex(p2, sample()); err != nil {
		t.Fatalf("write2: %v", err)
	}
	b1, _ := os.ReadFile(p1)
	b2, _ := os.ReadFile(p2)
	if !bytes.Equal(b1, b2) {
		t.Fatalf("index output must be byte-identical for unchanged input")
	}
}

func TestWriteIndex_EmptyCollection(t *testing.T) {
	out := filepath.Join(t.TempDir(), "data.json")
	if err := export.WriteIndex(out, nil); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, _ := os.ReadFile(out)
	if string(bytes.TrimSpace(b)) != "[]" {
		t.Fatalf("empty collection should export []: %q", b)
	}
}
