package cfgdir

import (
	"maps"
	"slices"
)

// Keys 收集配置数据中实际出现的 key 路径，写法与 cfgschema.Keys 一致。
//
// 规则：
//   - 标量、nil 与无法识别的值 → prefix.key
//   - 嵌套对象 → 递归，空对象不产生路径
//   - 数组 → 以第一个对象元素为样本递归；没有对象元素时 → prefix.key
//
// 数组只按样本检查结构，不逐个元素校验。返回结果去重并排序。
// 含点号的 key 与嵌套路径无法区分，交由 schema 校验（不允许额外属性）拒绝。
func Keys(data map[string]any) []string {
	set := make(map[string]struct{})
	collectKeys(data, "", set)

	return slices.Sorted(maps.Keys(set))
}

func collectKeys(data map[string]any, prefix string, set map[string]struct{}) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch typed := value.(type) {
		case map[string]any:
			collectKeys(typed, fullKey, set)
		case []any:
			if sample, ok := firstObject(typed); ok {
				collectKeys(sample, fullKey, set)

				continue
			}
			set[fullKey] = struct{}{}
		default:
			set[fullKey] = struct{}{}
		}
	}
}

func firstObject(items []any) (map[string]any, bool) {
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			return obj, true
		}
	}

	return nil, false
}

// unknownKeys 返回 actual 中不在 allowed 内的 key，保持 actual 的顺序。
func unknownKeys(actual, allowed []string) []string {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, key := range allowed {
		allowedSet[key] = struct{}{}
	}

	var extra []string
	for _, key := range actual {
		if _, ok := allowedSet[key]; !ok {
			extra = append(extra, key)
		}
	}

	return extra
}
