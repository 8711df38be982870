// Package flow 将带位置元数据的逻辑字符缓冲区排成分页后的可视行。
//
// 入口是 Flow / FlowWithOptions：按换行符与分页符把缓冲区切成逻辑行，
// 逐行分词、量度并折行，最后按页面高度分页。排版是 (缓冲区, 四张元数据表,
// 版面尺寸, 量度后端) 的纯函数：不做 I/O，不保留任何跨调用状态，可在每次
// 编辑或缩放后重复调用。结果缓存属于宿主，缓冲区或元数据一旦变化必须失效。
package flow

import "github.com/npillmayer/schuko/tracing"

// tracer 返回本包的调试追踪通道。
func tracer() tracing.Trace {
	return tracing.Select("scribe.flow")
}
