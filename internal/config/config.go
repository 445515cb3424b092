// Package config 提供演示应用的配置定义。
//
// 配置解析优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义，并决定默认配置目录
//  2. 配置文件 - <configDirectory>/config.yaml
//  3. CLI flags - 例如 --server-addr、--log-level
//
// Schema() 声明允许出现的 key，配置文件中的任何其他 key 都会导致解析失败。
package config

import (
	"time"

	"github.com/lwmacct/251207-go-pkg-cfgdir/pkg/cfgschema"
)

// Config 应用配置。
type Config struct {
	ConfigDirectory string       `json:"configDirectory" desc:"配置目录"`
	Server          ServerConfig `json:"server"          desc:"服务端配置"`
	Log             LogConfig    `json:"log"             desc:"日志配置"`
}

// ServerConfig 服务端配置。
type ServerConfig struct {
	Addr     string        `json:"addr"     desc:"服务器监听地址"`
	Docs     string        `json:"docs"     desc:"VitePress 文档目录路径"`
	Timeout  time.Duration `json:"timeout"  desc:"HTTP 读写超时"`
	Idletime time.Duration `json:"idletime" desc:"HTTP 空闲超时"`
}

// LogConfig 日志配置。
type LogConfig struct {
	Level string `json:"level" desc:"日志级别 (debug, info, warn, error)"`
}

// DefaultConfigDirectory 演示应用的默认配置目录。
const DefaultConfigDirectory = ".cfgdir"

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		ConfigDirectory: DefaultConfigDirectory,
		Server: ServerConfig{
			Addr:     ":40117",
			Docs:     "docs/.vitepress/dist",
			Timeout:  15 * time.Second,
			Idletime: 60 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Schema 返回配置文件与 CLI 允许出现的 key。
//
// 所有字段均可缺省，缺省值由 DefaultConfig 提供；时长使用 "15s" 形式的字符串。
func Schema() *cfgschema.Schema {
	return cfgschema.Object(
		cfgschema.Key("server", cfgschema.Optional(cfgschema.Object(
			cfgschema.Key("addr", cfgschema.Optional(cfgschema.String())),
			cfgschema.Key("docs", cfgschema.Optional(cfgschema.String())),
			cfgschema.Key("timeout", cfgschema.Optional(cfgschema.String())),
			cfgschema.Key("idletime", cfgschema.Optional(cfgschema.String())),
		))),
		cfgschema.Key("log", cfgschema.Optional(cfgschema.Object(
			cfgschema.Key("level", cfgschema.Optional(cfgschema.String())),
		))),
	)
}
