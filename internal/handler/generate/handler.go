// Package generate 生成接口的 HTTP 处理器
// 每个请求都是无状态的一次性计算：校验请求 → 解析 Key → 解析参考图 → 委托流水线
package generate

import (
	"github.com/AC215-TarAIntino/Video-Generator/internal/pkg/output"
	"github.com/AC215-TarAIntino/Video-Generator/internal/pkg/pipeline"
	"github.com/AC215-TarAIntino/Video-Generator/internal/pkg/secrets"
)

// Handler 生成接口处理器
type Handler struct {
	pipeline pipeline.Pipeline
	resolver *secrets.Resolver
	layout   *output.Layout
}

// NewHandler 创建生成接口处理器
func NewHandler(p pipeline.Pipeline, resolver *secrets.Resolver, layout *output.Layout) *Handler {
	return &Handler{
		pipeline: p,
		resolver: resolver,
		layout:   layout,
	}
}
