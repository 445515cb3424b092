package cfgdir_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockFS 模拟文件系统，用于构造权限与读取错误。
type mockFS struct {
	mock.Mock
}

func (m *mockFS) ReadFile(path, encoding string) (string, error) {
	args := m.Called(path, encoding)

	return args.String(0), args.Error(1)
}

func (m *mockFS) Exists(path string) bool {
	return m.Called(path).Bool(0)
}

func (m *mockFS) IsDirectoryReadable(path string) bool {
	return m.Called(path).Bool(0)
}

// newDirFS 返回一个目录存在且可读、config.yaml 内容为 content 的 mockFS。
func newDirFS(dir, content string) *mockFS {
	fsys := &mockFS{}
	fsys.On("Exists", dir).Return(true)
	fsys.On("IsDirectoryReadable", dir).Return(true)
	fsys.On("ReadFile", filepath.Join(dir, "config.yaml"), "utf-8").Return(content, nil)

	return fsys
}

// newTestLogger 返回写入 buffer 的 debug 级别 slog 日志。
func newTestLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	return slog.New(handler), buf
}

// writeConfig 在 dir 下写入 config.yaml。
func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))
}
