package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-cfgdir/internal/command"
	"github.com/lwmacct/251207-go-pkg-cfgdir/internal/config"
	"github.com/lwmacct/251207-go-pkg-cfgdir/pkg/cfgdir"
)

func action(ctx context.Context, cmd *cli.Command) error {
	// 解析配置：默认值 → 配置文件 → CLI flags
	args := resolver.ArgsFromCommand(cmd)
	cfg, err := cfgdir.Load(resolver, args, command.Defaults)
	if err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	slog.SetLogLoggerLevel(level)

	server := &http.Server{
		Addr: cfg.Server.Addr,
		Handler: newMux(cfg, func() (map[string]any, error) {
			return resolver.Resolve(args)
		}),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  cfg.Server.Idletime,
	}

	// 启动服务器（非阻塞）
	go func() {
		slog.Info("Server starting", "addr", cfg.Server.Addr, "configDirectory", cfg.ConfigDirectory)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	// 等待中断信号
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	slog.Info("Shutting down")

	// 使用 WithoutCancel 保持 context 链，同时防止父 context 取消影响 shutdown
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.Timeout)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		slog.Error("Server shutdown failed", "error", err)

		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("Server stopped gracefully")

	return nil
}

// newMux 注册路由。resolve 在每次请求 /config 时重新读取配置目录。
func newMux(cfg *config.Config, resolve func() (map[string]any, error)) *http.ServeMux {
	mux := http.NewServeMux()
	// 健康检查端点
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprint(w, `{"status":"ok"}`)
	})

	// 当前生效的配置
	mux.HandleFunc("GET /config", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		data, err := resolve()
		if err != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})

			return
		}
		_ = json.NewEncoder(w).Encode(data)
	})

	// VitePress 文档静态文件服务
	docsFS := http.FileServer(http.Dir(cfg.Server.Docs))
	mux.Handle("/docs/", http.StripPrefix("/docs/", docsFS))

	return mux
}
