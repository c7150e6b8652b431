package pipeline

import (
	"errors"
	"fmt"
)

// ValidationError 调用方可修复的输入错误
// 对应 HTTP 400；其余错误一律按服务器内部错误（HTTP 500）处理
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Invalidf 创建格式化的 ValidationError
func Invalidf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation 判断错误链上是否存在 ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
