// Package providers 把具体的生成客户端适配成 pipeline 的提供者接口
package providers

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/AC215-TarAIntino/Video-Generator/internal/config"
	"github.com/AC215-TarAIntino/Video-Generator/internal/pkg/ark"
	"github.com/AC215-TarAIntino/Video-Generator/internal/pkg/gemini"
	"github.com/AC215-TarAIntino/Video-Generator/internal/pkg/pipeline"
)

// GeminiImageProvider Gemini 图片生成提供者
// 适配层，调用 gemini.Client
type GeminiImageProvider struct {
	client *gemini.Client
}

// NewGeminiImageProvider 创建 Gemini 图片生成提供者
func NewGeminiImageProvider(cfg *config.GeminiConfig) pipeline.ImageProvider {
	return &GeminiImageProvider{
		client: gemini.NewClient(cfg),
	}
}

// GenerateImage 生成图片
func (p *GeminiImageProvider) GenerateImage(ctx context.Context, apiKey, prompt string, referenceImages [][]byte) ([]byte, error) {
	imageData, err := p.client.GenerateImage(ctx, apiKey, prompt, referenceImages)
	if err != nil {
		return nil, fmt.Errorf("Gemini generate image: %w", err)
	}
	return imageData, nil
}

// ArkImageProvider Ark 图片生成提供者
// 适配层，调用 ark.ArkImageClient；Ark 是纯 text-to-image，条件图会被忽略
type ArkImageProvider struct {
	client *ark.ArkImageClient
}

// NewArkImageProvider 创建 Ark 图片生成提供者
func NewArkImageProvider(cfg *config.ArkConfig) pipeline.ImageProvider {
	return &ArkImageProvider{
		client: ark.NewArkImageClient(cfg),
	}
}

// GenerateImage 生成图片
func (p *ArkImageProvider) GenerateImage(ctx context.Context, apiKey, prompt string, referenceImages [][]byte) ([]byte, error) {
	if len(referenceImages) > 0 {
		log.Warn().
			Int("reference_count", len(referenceImages)).
			Msg("Ark 不支持条件图，参考图将被忽略")
	}

	imageData, err := p.client.GenerateImage(ctx, apiKey, prompt)
	if err != nil {
		return nil, fmt.Errorf("Ark generate image: %w", err)
	}
	return imageData, nil
}

// NewImageProvider 按配置创建图片提供者
func NewImageProvider(cfg *config.ProvidersConfig) (pipeline.ImageProvider, error) {
	switch cfg.Image {
	case "gemini":
		return NewGeminiImageProvider(&cfg.Gemini), nil
	case "ark":
		return NewArkImageProvider(&cfg.Ark), nil
	default:
		return nil, fmt.Errorf("unsupported image provider: %s", cfg.Image)
	}
}
