package cfgdir

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ConfigureCobra 是 [Resolver.Configure] 的 cobra 版本。
func (r *Resolver) ConfigureCobra(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().StringP(FlagConfigDirectory, "c", r.Directory(nil), "Config Directory")

	return cmd
}

// ArgsFromCobra 是 [Resolver.ArgsFromCommand] 的 cobra 版本。
func (r *Resolver) ArgsFromCobra(cmd *cobra.Command) Args {
	flags := cmd.Flags()
	args := Args{}
	for _, key := range r.allowed {
		flag := flags.Lookup(flagName(key))
		if flag == nil || !flag.Changed {
			continue
		}
		setByPath(args, key, pflagValue(flags, flag))
	}

	return args
}

// pflagValue 按 flag 类型取值，未知类型退回字符串形式。
func pflagValue(flags *pflag.FlagSet, flag *pflag.Flag) any {
	var (
		v   any
		err error
	)
	switch flag.Value.Type() {
	case "bool":
		v, err = flags.GetBool(flag.Name)
	case "int":
		v, err = flags.GetInt(flag.Name)
	case "int64":
		v, err = flags.GetInt64(flag.Name)
	case "uint":
		v, err = flags.GetUint(flag.Name)
	case "float64":
		v, err = flags.GetFloat64(flag.Name)
	case "duration":
		v, err = flags.GetDuration(flag.Name)
	case "stringSlice":
		v, err = flags.GetStringSlice(flag.Name)
	default:
		return flag.Value.String()
	}
	if err != nil {
		return flag.Value.String()
	}

	return flagValue(v)
}
