package cfgschema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const resourceURL = "cfgschema.json"

// FieldError 单个字段的校验错误。
type FieldError struct {
	Path    string `json:"path"`    // 点号路径，根节点为空
	Message string `json:"message"` // 校验器给出的原因
}

// ValidationError 数据不满足 schema。
type ValidationError struct {
	Fields []FieldError
	cause  error
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if f.Path == "" {
			parts = append(parts, f.Message)
			continue
		}
		parts = append(parts, f.Path+": "+f.Message)
	}

	return "schema validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return e.cause }

// Validator 由 [Schema] 编译得到的校验器，可并发使用。
type Validator struct {
	compiled *jsonschema.Schema
	document []byte
}

// Compile 将 schema 转为 JSON Schema (Draft 2020-12) 并编译。
func Compile(s *Schema) (*Validator, error) {
	if s == nil {
		return nil, errors.New("cfgschema: nil schema")
	}

	document, err := json.Marshal(Walk[map[string]any](s, jsonSchemaBuilder{}))
	if err != nil {
		return nil, fmt.Errorf("marshal json schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(resourceURL, bytes.NewReader(document)); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := compiler.Compile(resourceURL)
	if err != nil {
		return nil, fmt.Errorf("compile json schema: %w", err)
	}

	return &Validator{compiled: compiled, document: document}, nil
}

// JSONSchema 返回生成的 JSON Schema 文档。
func (v *Validator) JSONSchema() []byte {
	out := make([]byte, len(v.document))
	copy(out, v.document)

	return out
}

// Validate 校验 data，失败时返回 *[ValidationError]。
//
// data 会先经过一次 JSON 往返，统一 YAML/CLI 产生的各种数值与时间类型。
func (v *Validator) Validate(data any) error {
	normalized, err := toJSONValue(data)
	if err != nil {
		return &ValidationError{
			Fields: []FieldError{{Message: err.Error()}},
			cause:  err,
		}
	}

	err = v.compiled.Validate(normalized)
	if err == nil {
		return nil
	}

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return &ValidationError{Fields: []FieldError{{Message: err.Error()}}, cause: err}
	}

	out := &ValidationError{cause: err}
	collectFieldErrors(verr, &out.Fields)

	return out
}

func toJSONValue(data any) (any, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("convert to json: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("convert to json: %w", err)
	}

	return out, nil
}

// collectFieldErrors 展开错误树，只保留叶子原因。
func collectFieldErrors(err *jsonschema.ValidationError, fields *[]FieldError) {
	if len(err.Causes) == 0 {
		*fields = append(*fields, FieldError{
			Path:    pointerToPath(err.InstanceLocation),
			Message: err.Message,
		})

		return
	}

	for _, cause := range err.Causes {
		collectFieldErrors(cause, fields)
	}
}

// pointerToPath 将 JSON Pointer 转为点号路径。
func pointerToPath(pointer string) string {
	pointer = strings.TrimPrefix(pointer, "/")
	if pointer == "" {
		return ""
	}
	parts := strings.Split(pointer, "/")
	for i, p := range parts {
		parts[i] = strings.NewReplacer("~1", "/", "~0", "~").Replace(p)
	}

	return strings.Join(parts, ".")
}

// jsonSchemaBuilder 将节点翻译为 JSON Schema 片段。
type jsonSchemaBuilder struct{}

func (b jsonSchemaBuilder) VisitLeaf(t Type) map[string]any {
	if t == TypeAny || t == "" {
		return map[string]any{}
	}

	return map[string]any{"type": string(t)}
}

// VisitOptional 可缺省由父对象的 required 列表表达。
func (b jsonSchemaBuilder) VisitOptional(inner *Schema) map[string]any {
	return Walk[map[string]any](inner, b)
}

func (b jsonSchemaBuilder) VisitNullable(inner *Schema) map[string]any {
	return map[string]any{
		"anyOf": []any{
			Walk[map[string]any](inner, b),
			map[string]any{"type": "null"},
		},
	}
}

func (b jsonSchemaBuilder) VisitArray(elem *Schema) map[string]any {
	return map[string]any{
		"type":  "array",
		"items": Walk[map[string]any](elem, b),
	}
}

func (b jsonSchemaBuilder) VisitObject(fields []Field) map[string]any {
	properties := make(map[string]any, len(fields))
	required := make([]string, 0, len(fields))
	for _, f := range fields {
		properties[f.Name] = Walk[map[string]any](f.Schema, b)
		if !isOptional(f.Schema) {
			required = append(required, f.Name)
		}
	}

	// 未声明的属性一律拒绝，包括 "server.port" 这类含点号的 key
	out := map[string]any{
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": false,
	}
	if len(required) > 0 {
		out["required"] = required
	}

	return out
}

// isOptional 判断包装链上是否存在 Optional。
func isOptional(s *Schema) bool {
	for s != nil {
		switch s.kind {
		case KindOptional:
			return true
		case KindNullable:
			s = s.inner
		default:
			return false
		}
	}

	return false
}
