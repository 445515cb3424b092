package cfgdir

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/lwmacct/251207-go-pkg-cfgdir/pkg/cfgschema"
)

// KeyConfigDirectory 基础 schema 中始终存在的字段。
const KeyConfigDirectory = "configDirectory"

// Args CLI 来源的配置，值为 nil 表示未提供。
type Args map[string]any

// BaseSchema 返回所有配置都包含的基础 schema。
func BaseSchema() *cfgschema.Schema {
	return cfgschema.Object(
		cfgschema.Key(KeyConfigDirectory, cfgschema.String()),
	)
}

// Resolver 按 默认值 → 配置文件 → CLI 的顺序解析配置。
//
// 构造后除日志实现外不可变，可并发调用；每次解析都会重新读取文件。
type Resolver struct {
	opts      *options
	schema    *cfgschema.Schema
	allowed   []string
	validator *cfgschema.Validator

	mu  sync.RWMutex
	log Logger
}

// New 以调用方 schema 创建解析器。
//
// shape 会与 [BaseSchema] 合并，shape 为 nil 时只允许 configDirectory。
func New(shape *cfgschema.Schema, opts ...Option) (*Resolver, error) {
	o := newOptions(opts...)
	if err := o.validate(); err != nil {
		return nil, err
	}

	full := cfgschema.Merge(BaseSchema(), shape)
	v, err := cfgschema.Compile(full)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	return &Resolver{
		opts:      o,
		schema:    full,
		allowed:   cfgschema.Keys(full),
		validator: v,
		log:       o.logger,
	}, nil
}

// SetLogger 替换日志实现，nil 表示丢弃日志。
func (r *Resolver) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger()
	}
	r.mu.Lock()
	r.log = l
	r.mu.Unlock()
}

func (r *Resolver) logger() Logger {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.log
}

// Schema 返回合并后的完整 schema。
func (r *Resolver) Schema() *cfgschema.Schema { return r.schema }

// AllowedKeys 返回允许的 key 路径副本。
func (r *Resolver) AllowedKeys() []string {
	out := make([]string, len(r.allowed))
	copy(out, r.allowed)

	return out
}

// Defaults 返回生效的默认值。
func (r *Resolver) Defaults() Defaults { return r.opts.defaults }

// Directory 返回 args 对应的配置目录。
//
// 优先级 (从高到低)：CLI → [Defaults].ConfigDirectory → [DefaultConfigDirectory]。
func (r *Resolver) Directory(args Args) string {
	if dir, ok := args[KeyConfigDirectory].(string); ok && dir != "" {
		return dir
	}
	if r.opts.defaults.ConfigDirectory != "" {
		return r.opts.defaults.ConfigDirectory
	}

	return DefaultConfigDirectory
}

// Resolve 执行完整的解析流程并返回校验后的配置。
//
// 流程：
//  1. 确定配置目录 (见 [Resolver.Directory])
//  2. 检查目录存在性与可读性
//  3. 读取配置文件，失败时不贡献任何 key
//  4. 合并：文件 < CLI，仅顶层浅合并；configDirectory 强制为实际读取的目录
//  5. 未知 key 检查与 schema 校验（两者都会执行，未知 key 错误优先返回）
func (r *Resolver) Resolve(args Args) (map[string]any, error) {
	log := r.logger()
	log.Debug("Resolving configuration", "args", map[string]any(args))

	dir := r.Directory(args)
	log.Debug("Resolved config directory", "dir", dir)

	if err := r.checkDirectory(dir); err != nil {
		return nil, err
	}

	merged := r.merge(dir, args)
	log.Debug("Merged sources (file < cli)", "config", merged)

	if err := r.check(merged); err != nil {
		return nil, err
	}
	log.Debug("Final validated config", "config", merged)

	return merged, nil
}

// Read 只合并文件与 CLI 来源，不做任何检查。
func (r *Resolver) Read(args Args) map[string]any {
	dir := r.Directory(args)
	r.logger().Debug("Resolved config directory", "dir", dir)

	return r.merge(dir, args)
}

// Validate 对已合并的配置执行目录检查、未知 key 检查与 schema 校验。
//
// configDirectory 为空时跳过目录检查。
func (r *Resolver) Validate(config map[string]any) error {
	if dir, ok := config[KeyConfigDirectory].(string); ok && dir != "" {
		if err := r.checkDirectory(dir); err != nil {
			return err
		}
	}

	normalized, _ := normalizeMapKeys(config).(map[string]any)

	return r.check(normalized)
}

func (r *Resolver) merge(dir string, args Args) map[string]any {
	merged := mergeSources(r.loadFile(dir), args)
	merged[KeyConfigDirectory] = dir

	return merged
}

// check 依次计算 schema 校验与未知 key，两项都执行后再返回错误。
func (r *Resolver) check(config map[string]any) error {
	log := r.logger()

	validationErr := r.validator.Validate(config)
	if validationErr != nil {
		log.Error("Configuration validation failed", "errors", validationErr.Error())
	}

	actual := Keys(config)
	if extra := unknownKeys(actual, r.allowed); len(extra) > 0 {
		log.Error(fmt.Sprintf("Unknown configuration keys found: %s. Allowed keys are: %s",
			strings.Join(extra, ", "), strings.Join(r.allowed, ", ")))

		return &UnknownKeysError{Keys: extra, Allowed: r.AllowedKeys()}
	}

	if validationErr != nil {
		out := &ValidationError{cause: validationErr}
		var schemaErr *cfgschema.ValidationError
		if errors.As(validationErr, &schemaErr) {
			out.Fields = schemaErr.Fields
		}

		return out
	}

	return nil
}
