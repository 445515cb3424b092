package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/lwmacct/251207-go-pkg-cfgdir/internal/command"
	app "github.com/lwmacct/251207-go-pkg-cfgdir/internal/command/server"
)

func main() {
	slog.Debug("Starting server", "defaultConfigDirectory", command.Defaults.ConfigDirectory)

	if err := app.Command.Run(context.Background(), os.Args); err != nil {
		slog.Error("应用程序运行失败", "error", err)
		os.Exit(1)
	}
}
