package cfgdir

import (
	"fmt"
	"path/filepath"
)

// loadFile 读取并解析 <dir>/<ConfigFile>。
//
// 任何失败都不会中断解析流程，只是文件不贡献任何 key：
//   - 文件不存在 → debug 日志
//   - 根节点不是映射 → warn 日志（null 文档除外）
//   - 权限、编码或 YAML 语法错误 → error 日志
func (r *Resolver) loadFile(dir string) map[string]any {
	log := r.logger()
	path := filepath.Join(dir, r.opts.defaults.ConfigFile)
	log.Debug("Attempting to load config file", "path", path, "encoding", r.opts.defaults.Encoding)

	content, err := r.opts.fsys.ReadFile(path, r.opts.defaults.Encoding)
	if err != nil {
		if isNotFound(err) {
			log.Debug("Configuration file not found, skipping", "path", path)

			return map[string]any{}
		}
		log.Error("Failed to load or parse configuration", "path", path, "error", err.Error())

		return map[string]any{}
	}

	parsed, err := parseYAML(content)
	if err != nil {
		log.Error("Failed to load or parse configuration", "path", path, "error", err.Error())

		return map[string]any{}
	}

	switch typed := parsed.(type) {
	case nil:
		return map[string]any{}
	case map[string]any:
		log.Debug("Loaded config from file", "path", path, "config", typed)

		return typed
	default:
		log.Warn("Ignoring invalid configuration format, expected a mapping",
			"path", path, "got", fmt.Sprintf("%T", typed))

		return map[string]any{}
	}
}
