package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-cfgdir/internal/command/check"
	"github.com/lwmacct/251207-go-pkg-cfgdir/internal/command/server"
)

// version 由构建时 -ldflags "-X main.version=..." 注入。
var version = "dev"

func main() {
	app := &cli.Command{
		Name:    "cfgdir",
		Usage:   "基于配置目录的分层配置工具",
		Version: version,
		Commands: []*cli.Command{
			check.Command,
			server.Command,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
