// 包 export 负责索引导出：将文章集合写为 data.json。
package export

import (
	"encoding/json"
	"fmt"
	"os"

	"go-blog-builder/internal/model"
)

// WriteIndex 将记录按集合顺序写为 JSON 数组（带缩进格式）。
// 输入不变时输出逐字节一致，供前端直接消费。
func WriteIndex(path string, records []model.PostRecord) error {
	if records == nil {
		// 空目录也输出 []，前端不必处理 null
		records = []model.PostRecord{}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode json to %s: %w", path, err)
	}
	return nil
}
