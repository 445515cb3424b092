package cfgdir

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/encoding/htmlindex"
)

const (
	// DefaultConfigDirectory 未通过 CLI 或 [Defaults] 指定时使用的配置目录。
	DefaultConfigDirectory = ".cfgdir"
	// DefaultConfigFile 配置目录下的文件名。
	DefaultConfigFile = "config.yaml"
	// DefaultEncoding 配置文件编码。
	DefaultEncoding = "utf-8"
)

// Feature 可开关的功能。
type Feature string

// FeatureConfig 启用配置目录检查。
const FeatureConfig Feature = "config"

// Defaults 调用方提供的默认值与策略。
//
// 只有 ConfigDirectory 会参与配置数据（决定读取哪个目录），其余字段仅影响行为。
type Defaults struct {
	ConfigDirectory string `json:"configDirectory" validate:"required"`
	ConfigFile      string `json:"configFile"      validate:"required,filename"`
	IsRequired      bool   `json:"isRequired"`
	Encoding        string `json:"encoding"        validate:"required,encoding"`
}

// DefaultDefaults 返回内置默认值。
func DefaultDefaults() Defaults {
	return Defaults{
		ConfigDirectory: DefaultConfigDirectory,
		ConfigFile:      DefaultConfigFile,
		IsRequired:      false,
		Encoding:        DefaultEncoding,
	}
}

// options 解析器选项。
type options struct {
	defaults Defaults
	features []Feature
	logger   Logger
	fsys     FileSystem
}

// Option 解析器选项函数。
type Option func(*options)

// WithDefaults 整体替换默认值，空字段回落到内置默认值。
func WithDefaults(d Defaults) Option {
	return func(o *options) {
		builtin := DefaultDefaults()
		if d.ConfigDirectory == "" {
			d.ConfigDirectory = builtin.ConfigDirectory
		}
		if d.ConfigFile == "" {
			d.ConfigFile = builtin.ConfigFile
		}
		if d.Encoding == "" {
			d.Encoding = builtin.Encoding
		}
		o.defaults = d
	}
}

// WithConfigDirectory 设置默认配置目录（CLI 未指定时生效）。
func WithConfigDirectory(dir string) Option {
	return func(o *options) {
		o.defaults.ConfigDirectory = dir
	}
}

// WithConfigFile 设置配置文件名，必须是不含路径分隔符的文件名。
func WithConfigFile(name string) Option {
	return func(o *options) {
		o.defaults.ConfigFile = name
	}
}

// WithRequired 配置目录不存在时是否报错。
func WithRequired(required bool) Option {
	return func(o *options) {
		o.defaults.IsRequired = required
	}
}

// WithEncoding 设置配置文件编码（WHATWG 标签，如 utf-8、latin1）。
func WithEncoding(encoding string) Option {
	return func(o *options) {
		o.defaults.Encoding = encoding
	}
}

// WithFeatures 设置启用的功能列表，替换默认的 [FeatureConfig]。
//
// 不传参数表示全部关闭。
func WithFeatures(features ...Feature) Option {
	return func(o *options) {
		o.features = features
	}
}

// WithLogger 注入日志实现，默认为 [NopLogger]。
func WithLogger(l Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithFileSystem 替换文件系统实现，默认为 [OSFileSystem]。
func WithFileSystem(fsys FileSystem) Option {
	return func(o *options) {
		o.fsys = fsys
	}
}

func newOptions(opts ...Option) *options {
	o := &options{
		defaults: DefaultDefaults(),
		features: []Feature{FeatureConfig},
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = NopLogger()
	}
	if o.fsys == nil {
		o.fsys = OSFileSystem()
	}

	return o
}

func (o *options) isFeatureEnabled(f Feature) bool {
	return slices.Contains(o.features, f)
}

// validate 校验默认值，错误信息使用 json 字段名。
func (o *options) validate() error {
	v := validator.New()
	_ = v.RegisterValidation("filename", isValidFilename)
	_ = v.RegisterValidation("encoding", isKnownEncoding)
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return parseTagName(fld.Tag.Get("json"))
	})

	if err := v.Struct(o.defaults); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	return nil
}

func isValidFilename(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) {
		return false
	}

	return len(name) <= 255
}

func isKnownEncoding(fl validator.FieldLevel) bool {
	_, err := htmlindex.Get(fl.Field().String())

	return err == nil
}
