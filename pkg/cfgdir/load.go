package cfgdir

import (
	"fmt"

	"github.com/urfave/cli/v3"
)

// Load 解析配置并解码到 T。
//
// defaultConfig 作为解码起点：解析结果中不存在的字段保留默认值，
// 默认值本身不会参与未知 key 检查或 schema 校验。
// 字段通过 json tag 与配置 key 对应，支持 "15s" 形式的 time.Duration。
func Load[T any](r *Resolver, args Args, defaultConfig T) (*T, error) {
	data, err := r.Resolve(args)
	if err != nil {
		return nil, err
	}

	cfg := defaultConfig
	if err := decodeConfigMap(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadCmd 是 [Load] 的便捷版本，CLI 参数取自 [Resolver.ArgsFromCommand]。
//
// 示例：
//
//	cfg, err := cfgdir.LoadCmd(cmd, resolver, config.DefaultConfig())
func LoadCmd[T any](cmd *cli.Command, r *Resolver, defaultConfig T) (*T, error) {
	return Load(r, r.ArgsFromCommand(cmd), defaultConfig)
}

// MustLoad 调用 [Load] 并在失败时 panic，适合启动阶段。
func MustLoad[T any](r *Resolver, args Args, defaultConfig T) *T {
	cfg, err := Load(r, args, defaultConfig)
	if err != nil {
		panic(fmt.Sprintf("cfgdir: failed to load config: %v", err))
	}

	return cfg
}

// MustLoadCmd 调用 [LoadCmd] 并在失败时 panic，适合启动阶段。
func MustLoadCmd[T any](cmd *cli.Command, r *Resolver, defaultConfig T) *T {
	cfg, err := LoadCmd(cmd, r, defaultConfig)
	if err != nil {
		panic(fmt.Sprintf("cfgdir: failed to load config: %v", err))
	}

	return cfg
}
