// Package server 提供 HTTP 服务器命令。
package server

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-cfgdir/internal/command"
)

var resolver = command.NewResolver()

// Command 服务器命令
var Command = resolver.Configure(&cli.Command{
	Name:   "server",
	Usage:  "启动 HTTP 服务器",
	Action: action,
	Flags:  command.Flags(),
})
