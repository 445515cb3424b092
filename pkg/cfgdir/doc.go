// Package cfgdir 提供基于配置目录的分层配置解析。
//
// 按默认值、YAML 配置文件与 CLI 参数逐层覆盖，
// 并根据调用方提供的 [cfgschema.Schema] 拒绝任何未声明的 key。
//
// # 解析优先级 (从低到高)
//
//  1. 默认值 - 只决定配置目录 ([WithConfigDirectory] / [WithDefaults])
//  2. 配置文件 - <configDirectory>/config.yaml
//  3. CLI flags - 通过 [Resolver.Configure] 注册，[Resolver.ArgsFromCommand] 收集
//
// 最终结果中的 configDirectory 总是实际读取的目录，覆盖文件与 CLI 中的同名值。
//
// # 快速开始
//
// 定义 schema 并创建解析器：
//
//	shape := cfgschema.Object(
//	    cfgschema.Key("port", cfgschema.Number()),
//	)
//	resolver, err := cfgdir.New(shape,
//	    cfgdir.WithConfigDirectory(".myapp"),
//	    cfgdir.WithLogger(slog.Default()),
//	)
//
// 在 CLI 命令上注册 -c, --config-directory：
//
//	cmd := resolver.Configure(&cli.Command{Name: "myapp", Action: action})
//
// 在 Action 中解析：
//
//	cfg, err := resolver.Resolve(resolver.ArgsFromCommand(cmd))
//	// 或解码到结构体
//	cfg, err := cfgdir.LoadCmd(cmd, resolver, DefaultConfig())
//
// # 合并语义
//
// 文件与 CLI 之间只做顶层浅合并：CLI 中的嵌套对象会整体替换文件中的同名对象，
// 不会逐字段合并。例如文件为 {server: {host: a, port: 1}}，
// CLI 提供 {server: {port: 2}}，结果为 {server: {port: 2}}。
//
// # key 路径
//
// 未知 key 检查按数据中实际出现的点号路径进行：
//   - 值为 null 的对象字段（包括 YAML 中只写了 "server:" 的空段）记为叶子路径 server，
//     即使 schema 声明为 Nullable(Object) 也会被当作未知 key 拒绝；
//   - 空数组或只含标量的数组记为 prefix.key，对 Array(Object) 字段同样会被拒绝；
//   - 含点号的 key（如 "server.port"）与嵌套路径写法相同，由 schema 校验拒绝。
//
// # 配置文件容错
//
// 配置文件的问题不会中断解析，文件只是不贡献任何 key：
//   - 文件不存在 - debug 日志
//   - 根节点不是映射 - warn 日志（空文档与 null 文档静默忽略）
//   - 权限错误、编码错误、YAML 语法错误 - error 日志
//
// # 错误
//
// 以下情况返回错误，可用 errors.Is 判断：
//   - [ErrMissingDirectory] - 目录不存在且 [WithRequired](true)
//   - [ErrUnreadableDirectory] - 目录存在但不可读
//   - [ErrUnknownKeys] - 出现未声明的 key，详见 [UnknownKeysError]
//   - [ErrValidation] - 类型/结构校验失败，字段明细写入日志
//
// # 日志
//
// 任何实现 [Logger] 的类型都可使用，*slog.Logger 与 hclog.Logger 可直接传入，
// zap 使用 [NewZapLogger]。默认不输出日志。
package cfgdir
