package cfgdir

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"golang.org/x/text/encoding/htmlindex"
)

// FileSystem 解析器依赖的文件系统能力。
//
// ReadFile 在文件不存在时必须返回可识别的错误：
// 满足 errors.Is(err, fs.ErrNotExist)，或消息包含 "not found" / "no such file"。
type FileSystem interface {
	ReadFile(path, encoding string) (string, error)
	Exists(path string) bool
	IsDirectoryReadable(path string) bool
}

// OSFileSystem 返回基于本地磁盘的 [FileSystem]。
func OSFileSystem() FileSystem {
	return osFS{}
}

type osFS struct{}

func (osFS) ReadFile(path, encoding string) (string, error) {
	content, err := os.ReadFile(path) //nolint:gosec // path is built from the resolved config directory
	if err != nil {
		return "", err
	}

	return decodeText(content, encoding)
}

func (osFS) Exists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}

func (osFS) IsDirectoryReadable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return false
	}

	return canRead(path)
}

// decodeText 按 WHATWG 编码标签（utf-8、latin1、shift_jis 等）解码。
func decodeText(content []byte, encoding string) (string, error) {
	enc, err := htmlindex.Get(encoding)
	if err != nil {
		return "", fmt.Errorf("unsupported encoding %q: %w", encoding, err)
	}

	decoded, err := enc.NewDecoder().Bytes(content)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", encoding, err)
	}

	return string(decoded), nil
}

var notFoundPattern = regexp.MustCompile(`(?i)not found|no such file`)

// isNotFound 判断读取失败是否仅因为文件不存在。
func isNotFound(err error) bool {
	if errors.Is(err, fs.ErrNotExist) {
		return true
	}

	return notFoundPattern.MatchString(err.Error())
}
