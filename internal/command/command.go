// Package command 提供演示应用各子命令共享的配置与 flags。
package command

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-cfgdir/internal/config"
	"github.com/lwmacct/251207-go-pkg-cfgdir/pkg/cfgdir"
)

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()

// NewResolver 创建演示应用使用的配置解析器。
func NewResolver() *cfgdir.Resolver {
	r, err := cfgdir.New(config.Schema(),
		cfgdir.WithConfigDirectory(Defaults.ConfigDirectory),
		cfgdir.WithLogger(slog.Default()),
	)
	if err != nil {
		// 只有内置选项非法时才会发生
		panic(err)
	}

	return r
}

// Flags 返回与 config.Schema 对应的 CLI flags。
//
// flag 名称由 key 路径的 "." 替换为 "-" 得到，只有显式设置的 flag 会覆盖配置文件。
//
// 注意合并只在顶层进行：设置任一 --server-* flag 会整体替换配置文件中的 server 段，
// 文件里其余 server 字段不再生效，解码时回落到 DefaultConfig 的值。
// 需要同时保留文件中的值时，请在 CLI 上一并给出全部 --server-* flags。
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "server-addr",
			Aliases: []string{"a"},
			Value:   Defaults.Server.Addr,
			Usage:   "服务器监听地址",
		},
		&cli.StringFlag{
			Name:  "server-docs",
			Value: Defaults.Server.Docs,
			Usage: "VitePress 文档目录路径",
		},
		&cli.DurationFlag{
			Name:  "server-timeout",
			Value: Defaults.Server.Timeout,
			Usage: "HTTP 读写超时",
		},
		&cli.DurationFlag{
			Name:  "server-idletime",
			Value: Defaults.Server.Idletime,
			Usage: "HTTP 空闲超时",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Value: Defaults.Log.Level,
			Usage: "日志级别 (debug, info, warn, error)",
		},
	}
}
