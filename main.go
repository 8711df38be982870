package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ByLCY/scribe/flow"
	"github.com/ByLCY/scribe/merge"
	"github.com/ByLCY/scribe/meta"
	"github.com/ByLCY/scribe/style"
	"github.com/ByLCY/scribe/typeset"
)

func main() {
	input := flag.String("in", "", "文本缓冲区文件路径（UTF-8）")
	metaPath := flag.String("meta", "", "元数据 JSON 文件路径（字符/段落格式、数据域、对象）")
	width := flag.String("width", "160mm", "版面宽度（如 160mm、450pt）")
	height := flag.String("height", "240mm", "版面高度")
	fontDir := flag.String("fonts", "", "字体目录（按 <family>.ttf/.otf 查找），缺省时按字符数估算")
	dataJSON := flag.String("data", "", "填充数据域的 JSON 数据")
	output := flag.String("out", "output/pages.json", "分页调试 JSON 输出路径")
	flag.Parse()

	if *input == "" {
		log.Fatal("必须用 -in 指定输入文本")
	}
	if err := run(*input, *metaPath, *width, *height, *fontDir, *dataJSON, *output); err != nil {
		log.Fatalf("排版失败: %v", err)
	}
	fmt.Printf("已输出分页结果：%s\n", *output)
}

// run 串联元数据装载、数据填充与排版。
func run(inputPath, metaPath, widthStr, heightStr, fontDir, dataJSON, outputPath string) error {
	buf, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("无法读取输入文件 %s: %w", inputPath, err)
	}

	maps := meta.NewMaps()
	if metaPath != "" {
		raw, err := os.ReadFile(metaPath)
		if err != nil {
			return fmt.Errorf("无法读取元数据文件 %s: %w", metaPath, err)
		}
		var doc meta.Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			return fmt.Errorf("解析元数据 JSON 失败: %w", err)
		}
		maps = meta.Import(doc)
	}

	if dataJSON != "" {
		var data any
		if err := json.Unmarshal([]byte(dataJSON), &data); err != nil {
			return fmt.Errorf("解析 data JSON 失败: %w", err)
		}
		filled := merge.Apply(maps, data)
		log.Printf("已填充 %d 个数据域", filled)
	}

	wl := style.ParseLength(widthStr)
	hl := style.ParseLength(heightStr)
	if wl.IsZero() || hl.IsZero() {
		return fmt.Errorf("版面尺寸无法解析: width=%q height=%q", widthStr, heightStr)
	}
	w, h := wl.ToPT(), hl.ToPT()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("版面尺寸必须为正: width=%g%s height=%g%s",
			wl.Value, style.UnitToString(wl.Unit), hl.Value, style.UnitToString(hl.Unit))
	}

	var m flow.Measurer = typeset.Fixed{}
	if fontDir != "" {
		m = typeset.NewCanvasMeasurer(typeset.Options{BaseDir: fontDir})
	}

	pages, err := flow.Flow(string(buf), w, h, maps, m)
	if err != nil {
		return fmt.Errorf("排版计算失败: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}
	if err := flow.WriteDebugJSON(pages, outputPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}
