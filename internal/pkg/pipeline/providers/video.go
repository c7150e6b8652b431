package providers

import (
	"context"
	"fmt"

	"github.com/AC215-TarAIntino/Video-Generator/internal/config"
	"github.com/AC215-TarAIntino/Video-Generator/internal/pkg/pipeline"
	"github.com/AC215-TarAIntino/Video-Generator/internal/pkg/veo"
)

// VeoVideoProvider Veo 视频生成提供者
// 适配层，调用 veo.Client
type VeoVideoProvider struct {
	client *veo.Client
}

// NewVeoVideoProvider 创建 Veo 视频生成提供者
func NewVeoVideoProvider(cfg *config.VeoConfig) pipeline.VideoProvider {
	return &VeoVideoProvider{
		client: veo.NewClient(cfg),
	}
}

// GenerateVideo 从首帧图片生成视频
func (p *VeoVideoProvider) GenerateVideo(ctx context.Context, apiKey string, startImage []byte, prompt string, durationSeconds int) ([]byte, error) {
	videoData, err := p.client.GenerateVideo(ctx, apiKey, startImage, prompt, durationSeconds)
	if err != nil {
		return nil, fmt.Errorf("Veo generate video: %w", err)
	}
	return videoData, nil
}

// NewVideoProvider 按配置创建视频提供者
func NewVideoProvider(cfg *config.ProvidersConfig) (pipeline.VideoProvider, error) {
	switch cfg.Video {
	case "veo":
		return NewVeoVideoProvider(&cfg.Veo), nil
	default:
		return nil, fmt.Errorf("unsupported video provider: %s", cfg.Video)
	}
}
