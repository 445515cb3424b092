//go:build unix

package cfgdir

import "golang.org/x/sys/unix"

// canRead 使用 access(2) 检查当前进程对目录的读权限。
func canRead(path string) bool {
	return unix.Access(path, unix.R_OK) == nil
}
