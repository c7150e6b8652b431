// Package pipeline 定义并实现视频生成流水线
//
// Pipeline 是 HTTP 层依赖的唯一入口：三个生成操作对应三个委托函数，
// Handler 不关心底层提供者。输入校验失败返回 ValidationError（HTTP 400），
// 其余错误原样向上传递（HTTP 500）
package pipeline

import (
	"context"

	"github.com/AC215-TarAIntino/Video-Generator/internal/model/trailer"
)

// Pipeline 视频生成流水线接口
type Pipeline interface {
	// GenerateCharacterReferences 为每个角色设定生成参考图
	// 返回角色名到参考图路径的映射；角色设定不合法返回 ValidationError
	GenerateCharacterReferences(ctx context.Context, imageAPIKey string, designs []trailer.CharacterDesign) (trailer.CharacterRefMap, error)

	// GenerateSceneVideos 按输入顺序为每个分镜生成视频
	// 分镜引用了映射外的角色或字段不合法返回 ValidationError
	GenerateSceneVideos(ctx context.Context, imageAPIKey, veoAPIKey string, scenes []trailer.Scene, characterRefs trailer.CharacterRefMap) ([]string, error)

	// StitchVideos 按给定顺序拼接视频，返回成片路径
	// 列表为空或路径不可读返回 ValidationError
	StitchVideos(ctx context.Context, videoPaths []string) (string, error)
}

// ImageProvider 图片生成提供者接口
// 统一抽象 Gemini 和 Ark 两种图片生成方式；API Key 按调用传入
type ImageProvider interface {
	// GenerateImage 根据提示词生成图片
	// referenceImages 为条件图数据（可为空），不支持条件图的提供者可以忽略
	GenerateImage(ctx context.Context, apiKey, prompt string, referenceImages [][]byte) ([]byte, error)
}

// VideoProvider 视频生成提供者接口
type VideoProvider interface {
	// GenerateVideo 从首帧图片和提示词生成视频（同步等待）
	GenerateVideo(ctx context.Context, apiKey string, startImage []byte, prompt string, durationSeconds int) ([]byte, error)
}

// Stitcher 视频拼接接口
type Stitcher interface {
	// ConcatVideos 按顺序拼接视频到 outputPath
	ConcatVideos(ctx context.Context, videoPaths []string, outputPath string) error
}
