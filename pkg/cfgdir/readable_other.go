//go:build !unix

package cfgdir

import (
	"errors"
	"io"
	"os"
)

// canRead 通过实际打开并读取目录项判断可读性。
func canRead(path string) bool {
	f, err := os.Open(path) //nolint:gosec // probing the resolved config directory
	if err != nil {
		return false
	}
	defer func() { _ = f.Close() }()

	_, err = f.Readdirnames(1)

	return err == nil || errors.Is(err, io.EOF)
}
