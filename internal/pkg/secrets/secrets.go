// Package secrets 解析生成提供者的 API Key
// 默认 Key 来自本地 secret 文件（JSON: {"project_api_key": "..."}）
package secrets

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/AC215-TarAIntino/Video-Generator/internal/pkg/pipeline"
)

// secretFile secret 文件结构
type secretFile struct {
	ProjectAPIKey string `json:"project_api_key"`
}

// Resolver API Key 解析器
// 每次解析都重新读取 secret 文件，容忍进程外编辑，不做缓存
type Resolver struct {
	path string
}

// NewResolver 创建解析器
func NewResolver(path string) *Resolver {
	return &Resolver{path: path}
}

// LoadDefaultKey 读取 secret 文件中的默认 Key
// 文件不存在不算错误，返回空串；文件存在但无法解析按服务器内部错误处理
func (r *Resolver) LoadDefaultKey() (string, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read %s: %w", r.path, err)
	}

	var payload secretFile
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", fmt.Errorf("invalid %s format: %w", r.path, err)
	}

	return payload.ProjectAPIKey, nil
}

// Resolve 解析 API Key
// 优先级：请求携带的 Key > secret 文件默认 Key；两者都缺失返回 ValidationError
func (r *Resolver) Resolve(provided, keyName string) (string, error) {
	if provided != "" {
		return provided, nil
	}

	apiKey, err := r.LoadDefaultKey()
	if err != nil {
		return "", err
	}
	if apiKey == "" {
		return "", pipeline.Invalidf(
			"%s is required. Provide it in the request body or %s.", keyName, r.path)
	}

	return apiKey, nil
}
