package cfgdir

import (
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	yamlv3 "go.yaml.in/yaml/v3"
)

func parseTagName(tag string) string {
	if tag == "" {
		return ""
	}
	parts := strings.Split(tag, ",")
	if len(parts) == 0 || parts[0] == "" || parts[0] == "-" {
		return ""
	}

	return parts[0]
}

// parseYAML 解析 YAML 文档，map key 统一为字符串。
//
// 空文档与 null 文档返回 nil。
func parseYAML(content string) (any, error) {
	var raw any
	if err := yamlv3.Unmarshal([]byte(content), &raw); err != nil {
		return nil, err
	}

	return normalizeMapKeys(raw), nil
}

func normalizeMapKeys(val any) any {
	switch typed := val.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[key] = normalizeMapKeys(value)
		}

		return out
	case Args:
		return normalizeMapKeys(map[string]any(typed))
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[fmt.Sprintf("%v", key)] = normalizeMapKeys(value)
		}

		return out
	case []any:
		out := make([]any, len(typed))
		for i := range typed {
			out[i] = normalizeMapKeys(typed[i])
		}

		return out
	default:
		return val
	}
}

// mergeSources 以 file 为底，覆盖 args 中已定义（非 nil）的顶层 key。
//
// 只做顶层浅合并：args 中的嵌套对象整体替换 file 中的同名对象，不做逐字段合并。
func mergeSources(file map[string]any, args Args) map[string]any {
	out := make(map[string]any, len(file)+len(args))
	maps.Copy(out, file)
	for key, value := range args {
		if value == nil {
			continue
		}
		out[key] = normalizeMapKeys(value)
	}

	return out
}

func setByPath(dst map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := dst
	for i, part := range parts {
		if i == len(parts)-1 {
			current[part] = value

			return
		}

		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
}

// flagValue 将 CLI 值转换为 YAML 中的等价写法。
func flagValue(v any) any {
	switch typed := v.(type) {
	case time.Duration:
		return typed.String()
	case time.Time:
		return typed.Format(time.RFC3339)
	default:
		return v
	}
}

func decodeConfigMap(data map[string]any, out any) error {
	conf := &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
		Metadata:         nil,
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "json",
	}
	decoder, err := mapstructure.NewDecoder(conf)
	if err != nil {
		return err
	}

	return decoder.Decode(data)
}
