// Package cfgschema 提供声明式配置 schema。
//
// schema 由封闭的节点集合组成：
//   - Leaf - 叶子值 ([String] / [Number] / [Integer] / [Bool] / [Any])
//   - Optional - 可缺省包装
//   - Nullable - 可为 null 的包装
//   - Array - 数组，元素为另一个 schema
//   - Object - 对象，字段有序
//
// 所有遍历都通过 [Visitor] + [Walk] 完成，不依赖具体校验库的内部类型。
//
// # 允许的 key
//
// [Keys] 将 schema 展平为点号路径集合，供未知 key 检测使用：
//
//	s := cfgschema.Object(
//	    cfgschema.Key("port", cfgschema.Number()),
//	    cfgschema.Key("server", cfgschema.Object(
//	        cfgschema.Key("host", cfgschema.String()),
//	    )),
//	)
//	cfgschema.Keys(s) // [port server.host]
//
// # 类型校验
//
// [Compile] 将 schema 转为 JSON Schema 并交给 jsonschema 校验：
//
//	v, err := cfgschema.Compile(s)
//	err = v.Validate(map[string]any{"port": "8080"}) // *ValidationError
package cfgschema
