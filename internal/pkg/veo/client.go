package veo

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

// Client Veo 视频生成客户端
// 视频生成是异步 API：先 predictLongRunning 提交任务，再轮询 operation 直到完成，
// 最后下载生成的视频。轮询间隔与最大等待时长来自配置
type Client struct {
	baseURL      string
	model        string
	pollInterval time.Duration
	maxWait      time.Duration
	httpClient   *http.Client
}

// NewClient 创建 Veo 客户端
func NewClient(cfg *config.VeoConfig) *Client {
	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = 10 * time.Second
	}
	maxWait := cfg.MaxWait
	if maxWait <= 0 {
		maxWait = 30 * time.Minute
	}

	return &Client{
		baseURL:      strings.TrimSuffix(cfg.BaseURL, "/"),
		model:        cfg.Model,
		pollInterval: pollInterval,
		maxWait:      maxWait,
		httpClient:   &http.Client{Timeout: 300 * time.Second},
	}
}

// GenerateVideo 从首帧图片生成视频（同步等待）
//
// 实现流程：
//  1. predictLongRunning 提交任务（返回 operation name）
//  2. 轮询 operation 直到 done
//  3. 下载视频数据并返回
//
// Args:
//   - ctx: 上下文
//   - apiKey: Veo API Key（按请求解析）
//   - startImage: 首帧图片数据（PNG，可为 nil，纯文本生成）
//   - prompt: 视频生成提示词
//   - durationSeconds: 视频时长（秒）
func (c *Client) GenerateVideo(ctx context.Context, apiKey string, startImage []byte, prompt string, durationSeconds int) ([]byte, error) {
	operationName, err := c.createVideoTask(ctx, apiKey, startImage, prompt, durationSeconds)
	if err != nil {
		return nil, fmt.Errorf("create video task: %w", err)
	}

	log.Info().Str("operation", operationName).Msg("视频生成任务提交成功")

	startTime := time.Now()
	for {
		if time.Since(startTime) > c.maxWait {
			return nil, fmt.Errorf("video generation timeout after %v", c.maxWait)
		}

		done, videoURI, err := c.getOperation(ctx, apiKey, operationName)
		if err != nil {
			return nil, fmt.Errorf("get operation status: %w", err)
		}

		if done {
			if videoURI == "" {
				return nil, fmt.Errorf("operation finished without video URI")
			}
			videoData, err := c.downloadVideo(ctx, apiKey, videoURI)
			if err != nil {
				return nil, fmt.Errorf("download video: %w", err)
			}
			log.Info().
				Str("operation", operationName).
				Int("size", len(videoData)).
				Msg("视频生成成功并下载完成")
			return videoData, nil
		}

		log.Debug().Str("operation", operationName).Msg("视频生成中，继续等待...")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.pollInterval):
		}
	}
}

// predictRequest predictLongRunning 请求体
type predictRequest struct {
	Instances  []predictInstance `json:"instances"`
	Parameters predictParameters `json:"parameters"`
}

type predictInstance struct {
	Prompt string        `json:"prompt"`
	Image  *predictImage `json:"image,omitempty"`
}

type predictImage struct {
	BytesBase64Encoded string `json:"bytesBase64Encoded"`
	MimeType           string `json:"mimeType"`
}

type predictParameters struct {
	DurationSeconds int `json:"durationSeconds,omitempty"`
}

// operationResponse operation 响应体（只解析用到的字段）
type operationResponse struct {
	Name     string   `json:"name"`
	Done     bool     `json:"done"`
	Error    *opError `json:"error"`
	Response *struct {
		GenerateVideoResponse struct {
			GeneratedSamples []struct {
				Video struct {
					URI string `json:"uri"`
				} `json:"video"`
			} `json:"generatedSamples"`
		} `json:"generateVideoResponse"`
	} `json:"response"`
}

type opError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// createVideoTask 提交视频生成任务，返回 operation name
func (c *Client) createVideoTask(ctx context.Context, apiKey string, startImage []byte, prompt string, durationSeconds int) (string, error) {
	instance := predictInstance{Prompt: prompt}
	if len(startImage) > 0 {
		instance.Image = &predictImage{
			BytesBase64Encoded: base64.StdEncoding.EncodeToString(startImage),
			MimeType:           "image/png",
		}
	}

	reqBody := predictRequest{
		Instances:  []predictInstance{instance},
		Parameters: predictParameters{DurationSeconds: durationSeconds},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request body: %w", err)
	}

	apiURL := fmt.Sprintf("%s/models/%s:predictLongRunning", c.baseURL, c.model)
	body, status, err := c.doJSON(ctx, apiKey, http.MethodPost, apiURL, jsonData)
	if err != nil {
		return "", err
	}

	var result operationResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("unmarshal response (status %d): %w", status, err)
	}
	if result.Error != nil {
		return "", fmt.Errorf("Veo API error %d: %s", result.Error.Code, result.Error.Message)
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("Veo API returned status %d: %s", status, string(body))
	}
	if result.Name == "" {
		return "", fmt.Errorf("no operation name in response")
	}

	return result.Name, nil
}

// getOperation 查询任务状态，完成时返回视频 URI
func (c *Client) getOperation(ctx context.Context, apiKey, operationName string) (bool, string, error) {
	apiURL := fmt.Sprintf("%s/%s", c.baseURL, operationName)
	body, status, err := c.doJSON(ctx, apiKey, http.MethodGet, apiURL, nil)
	if err != nil {
		return false, "", err
	}

	var result operationResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return false, "", fmt.Errorf("unmarshal operation (status %d): %w", status, err)
	}
	if result.Error != nil {
		return false, "", fmt.Errorf("video generation failed: %s", result.Error.Message)
	}
	if status != http.StatusOK {
		return false, "", fmt.Errorf("Veo API returned status %d: %s", status, string(body))
	}

	if !result.Done {
		return false, "", nil
	}

	if result.Response != nil {
		samples := result.Response.GenerateVideoResponse.GeneratedSamples
		if len(samples) > 0 {
			return true, samples[0].Video.URI, nil
		}
	}
	return true, "", nil
}

// downloadVideo 下载生成的视频
func (c *Client) downloadVideo(ctx context.Context, apiKey, videoURI string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, videoURI, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("x-goog-api-key", apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download returned status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// doJSON 发送 JSON 请求并返回响应体
func (c *Client) doJSON(ctx context.Context, apiKey, method, url string, jsonData []byte) ([]byte, int, error) {
	var reqBody io.Reader
	if jsonData != nil {
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("call Veo API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read response body: %w", err)
	}

	return body, resp.StatusCode, nil
}
