package cfgdir

import (
	"strings"

	"github.com/urfave/cli/v3"
)

// FlagConfigDirectory 配置目录的 CLI flag 名称，短名为 -c。
const FlagConfigDirectory = "config-directory"

// flagName 返回配置 key 对应的 CLI flag 名称，仅替换 "." 为 "-"。
//
// 映射示例：
//   - configDirectory → --config-directory
//   - server.addr → --server-addr
func flagName(key string) string {
	if key == KeyConfigDirectory {
		return FlagConfigDirectory
	}

	return strings.ReplaceAll(key, ".", "-")
}

// Configure 在 cmd 上注册 -c, --config-directory 并返回 cmd。
//
// flag 默认值为 [Defaults].ConfigDirectory，未设置时为 [DefaultConfigDirectory]。
func (r *Resolver) Configure(cmd *cli.Command) *cli.Command {
	cmd.Flags = append(cmd.Flags, &cli.StringFlag{
		Name:    FlagConfigDirectory,
		Aliases: []string{"c"},
		Value:   r.Directory(nil),
		Usage:   "Config Directory",
	})

	return cmd
}

// ArgsFromCommand 收集用户显式设置的 flags。
//
// 只读取与允许 key 对应的 flag（见 flagName），未设置的 flag 不会出现在结果中。
// 嵌套 key 写入嵌套 map，例如 --server-addr → {"server": {"addr": ...}}，
// 合并时该对象会整体替换配置文件中的 server。
func (r *Resolver) ArgsFromCommand(cmd *cli.Command) Args {
	args := Args{}
	for _, key := range r.allowed {
		name := flagName(key)
		if !cmd.IsSet(name) {
			continue
		}
		setByPath(args, key, flagValue(cmd.Value(name)))
	}

	return args
}
