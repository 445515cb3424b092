package cfgschema

// Keys 递归收集 schema 允许的 key 列表。
//
// 返回叶子路径（如 server.port），顺序与字段声明一致且去重。
// Optional/Nullable 透明展开，Array 以元素 schema 展开在同一前缀下；
// 根节点不是对象时返回空列表。
func Keys(s *Schema) []string {
	if s == nil {
		return nil
	}

	keys := Walk[[]string](s, keyCollector{})
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}

	return out
}

// keyCollector 携带当前路径前缀遍历 schema。
type keyCollector struct {
	prefix string
}

func (c keyCollector) VisitLeaf(Type) []string { return nil }

func (c keyCollector) VisitOptional(inner *Schema) []string { return Walk[[]string](inner, c) }

func (c keyCollector) VisitNullable(inner *Schema) []string { return Walk[[]string](inner, c) }

func (c keyCollector) VisitArray(elem *Schema) []string { return Walk[[]string](elem, c) }

func (c keyCollector) VisitObject(fields []Field) []string {
	var keys []string
	for _, f := range fields {
		fullKey := f.Name
		if c.prefix != "" {
			fullKey = c.prefix + "." + f.Name
		}

		nested := Walk[[]string](f.Schema, keyCollector{prefix: fullKey})
		if len(nested) == 0 {
			keys = append(keys, fullKey)

			continue
		}
		keys = append(keys, nested...)
	}

	return keys
}
