// Package check 提供配置校验命令。
package check

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/251207-go-pkg-cfgdir/internal/command"
	"github.com/lwmacct/251207-go-pkg-cfgdir/pkg/cfgdir"
	"github.com/lwmacct/251207-go-pkg-cfgdir/pkg/cfgschema"
)

// Command 校验命令
var Command = NewCommand()

// NewCommand 创建 check 命令，每个实例持有独立的解析器。
func NewCommand() *cli.Command {
	r := command.NewResolver()

	return r.Configure(&cli.Command{
		Name:  "check",
		Usage: "解析并校验配置，以 YAML 输出最终结果",
		Flags: append(command.Flags(), &cli.BoolFlag{
			Name:  "json-schema",
			Usage: "输出生成的 JSON Schema 后退出",
		}),
		Action: func(_ context.Context, cmd *cli.Command) error {
			return run(cmd, r)
		},
	})
}

func run(cmd *cli.Command, r *cfgdir.Resolver) error {
	w := cmd.Root().Writer

	if cmd.Bool("json-schema") {
		v, err := cfgschema.Compile(r.Schema())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(v.JSONSchema()))

		return err
	}

	data, err := r.Resolve(r.ArgsFromCommand(cmd))
	if err != nil {
		return err
	}

	out, err := yamlv3.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	_, err = fmt.Fprint(w, string(out))

	return err
}
