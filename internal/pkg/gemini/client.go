package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/AC215-TarAIntino/Video-Generator/internal/config"
)

// Client Gemini 图片生成客户端
// 直接调用 generativelanguage REST API（models/{model}:generateContent）
// API Key 按调用传入：Key 来自请求体或 secret 文件，按请求解析
type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewClient 创建 Gemini 客户端
func NewClient(cfg *config.GeminiConfig) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: 300 * time.Second},
	}
}

// generateContentRequest generateContent 请求体
type generateContentRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"` // base64
}

type generationConfig struct {
	ResponseModalities []string `json:"responseModalities,omitempty"`
}

// generateContentResponse generateContent 响应体（只解析用到的字段）
type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				InlineData *inlineData `json:"inlineData"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// GenerateImage 生成图片
// referenceImages 为条件图（PNG 数据），作为 inlineData part 随提示词一起发送；可为空
func (c *Client) GenerateImage(ctx context.Context, apiKey, prompt string, referenceImages [][]byte) ([]byte, error) {
	parts := []part{{Text: prompt}}
	for _, refData := range referenceImages {
		parts = append(parts, part{
			InlineData: &inlineData{
				MimeType: "image/png",
				Data:     base64.StdEncoding.EncodeToString(refData),
			},
		})
	}

	reqBody := generateContentRequest{
		Contents: []content{{Parts: parts}},
		GenerationConfig: &generationConfig{
			ResponseModalities: []string{"IMAGE"},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}

	apiURL := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call Gemini generateContent API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	var result generateContentResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("unmarshal response (status %d): %w", resp.StatusCode, err)
	}

	if result.Error != nil {
		return nil, fmt.Errorf("Gemini API error %d (%s): %s",
			result.Error.Code, result.Error.Status, result.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Gemini API returned status %d: %s", resp.StatusCode, string(body))
	}

	// 取第一个 inlineData part 作为生成结果
	for _, candidate := range result.Candidates {
		for _, p := range candidate.Content.Parts {
			if p.InlineData == nil || p.InlineData.Data == "" {
				continue
			}
			imageData, err := base64.StdEncoding.DecodeString(p.InlineData.Data)
			if err != nil {
				return nil, fmt.Errorf("decode base64 image data: %w", err)
			}

			log.Info().
				Str("model", c.model).
				Int("size", len(imageData)).
				Msg("Gemini 图片生成成功")

			return imageData, nil
		}
	}

	return nil, fmt.Errorf("no image data in Gemini response")
}
