// Package merge 将外部数据源套入文档的数据域。数据域的 Name 是
// path.to.value[0] 形式的取值路径，命中后写入该域的 Default 值，
// 排版阶段即按新值量度与显示。
package merge

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ByLCY/scribe/field"
	"github.com/ByLCY/scribe/meta"
)

// Apply 用 data 中的值填充 maps 里的所有数据域，返回成功填充的数量。
// 路径不存在的域保持原 Default 不变。
func Apply(maps *meta.Maps, data any) int {
	if maps == nil || data == nil {
		return 0
	}
	filled := 0
	for _, pos := range maps.Fields.Positions() {
		fd, _ := maps.Fields.At(pos)
		if fd.Kind != field.Data || fd.Name == "" {
			continue
		}
		val, ok := Resolve(data, fd.Name)
		if !ok {
			continue
		}
		fd.Default = fmt.Sprint(val)
		maps.Fields.Set(pos, fd)
		filled++
	}
	return filled
}

// Resolve 按 a.b[0].c 形式的路径在 data 中取值。data 期望是
// encoding/json 解码出的 map[string]interface{} / []interface{} 结构。
func Resolve(data any, path string) (any, bool) {
	current := data
	for _, segment := range strings.Split(path, ".") {
		name, indexes := parseSegment(segment)
		if name != "" {
			var ok bool
			current, ok = descendMap(current, name)
			if !ok {
				return nil, false
			}
		}
		for _, idxStr := range indexes {
			idx, err := strconv.Atoi(idxStr)
			if err != nil {
				return nil, false
			}
			var ok bool
			current, ok = descendArray(current, idx)
			if !ok {
				return nil, false
			}
		}
	}
	return current, true
}

func parseSegment(segment string) (string, []string) {
	name := segment
	indexes := []string{}
	if i := strings.Index(segment, "["); i != -1 {
		name = segment[:i]
		rest := segment[i:]
		for len(rest) > 0 {
			if rest[0] != '[' {
				break
			}
			end := strings.IndexByte(rest, ']')
			if end == -1 {
				break
			}
			indexes = append(indexes, rest[1:end])
			rest = rest[end+1:]
		}
	}
	return name, indexes
}

func descendMap(current any, key string) (any, bool) {
	switch c := current.(type) {
	case map[string]interface{}:
		val, ok := c[key]
		return val, ok
	default:
		return nil, false
	}
}

func descendArray(current any, idx int) (any, bool) {
	switch c := current.(type) {
	case []interface{}:
		if idx < 0 || idx >= len(c) {
			return nil, false
		}
		return c[idx], true
	default:
		return nil, false
	}
}
