package cfgdir

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lwmacct/251207-go-pkg-cfgdir/pkg/cfgschema"
)

var (
	// ErrMissingDirectory 配置目录不存在且被要求必须存在。
	ErrMissingDirectory = errors.New("config directory does not exist")
	// ErrUnreadableDirectory 配置目录存在但不可读。
	ErrUnreadableDirectory = errors.New("config directory is not readable")
	// ErrUnknownKeys 合并后的配置包含 schema 未声明的 key。
	ErrUnknownKeys = errors.New("unknown configuration keys")
	// ErrValidation 合并后的配置不满足 schema。
	ErrValidation = errors.New("configuration validation failed")
	// ErrInvalidOptions [New] 收到的选项不合法。
	ErrInvalidOptions = errors.New("invalid options")
)

// DirectoryError 配置目录前置检查失败。
type DirectoryError struct {
	Path string
	Err  error // ErrMissingDirectory 或 ErrUnreadableDirectory
}

func (e *DirectoryError) Error() string {
	if errors.Is(e.Err, ErrUnreadableDirectory) {
		return "Config directory exists but is not readable: " + e.Path
	}

	return "Config directory does not exist and is required: " + e.Path
}

func (e *DirectoryError) Unwrap() error { return e.Err }

// UnknownKeysError 列出所有未声明的 key。
//
// 完整的允许列表只写入日志，错误信息保持单行。
type UnknownKeysError struct {
	Keys    []string // 已排序
	Allowed []string
}

func (e *UnknownKeysError) Error() string {
	return fmt.Sprintf("Configuration validation failed: Unknown keys found (%s). Check logs for details.",
		strings.Join(e.Keys, ", "))
}

func (e *UnknownKeysError) Unwrap() error { return ErrUnknownKeys }

// ValidationError schema 校验失败，字段明细见 Fields 与日志。
type ValidationError struct {
	Fields []cfgschema.FieldError
	cause  error
}

func (e *ValidationError) Error() string {
	return "Configuration validation failed. Check logs for details."
}

func (e *ValidationError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrValidation}
	}

	return []error{ErrValidation, e.cause}
}
