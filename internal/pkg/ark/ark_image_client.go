package ark

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/volcengine/volcengine-go-sdk/service/arkruntime"
	"github.com/volcengine/volcengine-go-sdk/service/arkruntime/model"

	"github.com/AC215-TarAIntino/Video-Generator/internal/config"
)

// ArkImageClient Ark 图片生成客户端
// 调用火山引擎 Ark API 生成图片（text-to-image）
// API Key 按调用传入，SDK 客户端按 Key 现场创建（创建只是组装配置，开销可忽略）
type ArkImageClient struct {
	baseURL string
	model   string
}

// NewArkImageClient 创建 Ark 图片生成客户端
func NewArkImageClient(cfg *config.ArkConfig) *ArkImageClient {
	return &ArkImageClient{
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
	}
}

// GenerateImage 生成图片（同步接口）
// 对应 Python SDK: client.images.generate()
func (c *ArkImageClient) GenerateImage(ctx context.Context, apiKey, prompt string) ([]byte, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("ark api key is required")
	}

	var opts []arkruntime.ConfigOption
	if c.baseURL != "" {
		opts = append(opts, arkruntime.WithBaseUrl(c.baseURL))
	}
	arkClient := arkruntime.NewClientWithApiKey(apiKey, opts...)

	size := "1024x1024"
	responseFormat := "b64_json"
	watermark := false

	input := model.GenerateImagesRequest{
		Model:          c.model,
		Prompt:         prompt,
		Size:           &size,
		ResponseFormat: &responseFormat,
		Watermark:      &watermark,
	}

	output, err := arkClient.GenerateImages(ctx, input)
	if err != nil {
		log.Error().Err(err).Msg("failed to call Ark GenerateImages API")
		return nil, fmt.Errorf("Ark GenerateImages API call failed: %w", err)
	}

	if len(output.Data) == 0 {
		return nil, fmt.Errorf("no image data in response")
	}

	firstImage := output.Data[0]
	if firstImage.B64Json == nil {
		return nil, fmt.Errorf("no b64_json in response data")
	}

	imageData, err := base64.StdEncoding.DecodeString(*firstImage.B64Json)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 image data: %w", err)
	}

	log.Info().
		Str("model", c.model).
		Int("size", len(imageData)).
		Msg("Ark 图片生成成功")

	return imageData, nil
}
