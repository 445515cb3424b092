package cfgschema

// Kind 节点种类，集合封闭。
type Kind int

const (
	KindLeaf Kind = iota
	KindOptional
	KindNullable
	KindArray
	KindObject
)

// String 返回节点种类名称，便于日志输出。
func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindOptional:
		return "optional"
	case KindNullable:
		return "nullable"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Type 叶子节点的值类型。
type Type string

const (
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeInteger Type = "integer"
	TypeBoolean Type = "boolean"
	TypeAny     Type = "any"
)

// Schema 声明式配置结构描述，构造后不可变。
//
// 通过 [String]、[Number]、[Object] 等构造函数创建，不要直接填充字段。
type Schema struct {
	kind   Kind
	typ    Type
	inner  *Schema
	fields []Field
}

// Field 对象字段声明。
type Field struct {
	Name   string
	Schema *Schema
}

// Key 声明一个对象字段，s 为 nil 时等同于 [Any]。
func Key(name string, s *Schema) Field {
	return Field{Name: name, Schema: s}
}

func leaf(t Type) *Schema { return &Schema{kind: KindLeaf, typ: t} }

// String 字符串叶子。
func String() *Schema { return leaf(TypeString) }

// Number 数值叶子（整数与浮点数均可）。
func Number() *Schema { return leaf(TypeNumber) }

// Integer 整数叶子。
func Integer() *Schema { return leaf(TypeInteger) }

// Bool 布尔叶子。
func Bool() *Schema { return leaf(TypeBoolean) }

// Any 不限制类型的叶子。
func Any() *Schema { return leaf(TypeAny) }

// Optional 字段可缺省。
func Optional(inner *Schema) *Schema {
	return &Schema{kind: KindOptional, inner: inner}
}

// Nullable 字段可为 null。
func Nullable(inner *Schema) *Schema {
	return &Schema{kind: KindNullable, inner: inner}
}

// Array 元素为 elem 的数组。
func Array(elem *Schema) *Schema {
	return &Schema{kind: KindArray, inner: elem}
}

// Object 对象节点。
//
// 字段保持声明顺序；同名字段保留首次出现的位置，取最后一次声明的 schema。
func Object(fields ...Field) *Schema {
	out := make([]Field, 0, len(fields))
	index := make(map[string]int, len(fields))
	for _, f := range fields {
		if f.Schema == nil {
			f.Schema = Any()
		}
		if i, ok := index[f.Name]; ok {
			out[i].Schema = f.Schema
			continue
		}
		index[f.Name] = len(out)
		out = append(out, f)
	}

	return &Schema{kind: KindObject, fields: out}
}

// Merge 合并多个对象 schema 的字段，后者覆盖前者的同名字段。
//
// 非对象参数会被忽略。
func Merge(schemas ...*Schema) *Schema {
	var fields []Field
	for _, s := range schemas {
		if s == nil || s.kind != KindObject {
			continue
		}
		fields = append(fields, s.fields...)
	}

	return Object(fields...)
}

// Kind 返回节点种类。
func (s *Schema) Kind() Kind { return s.kind }

// Type 返回叶子类型，非叶子节点返回空字符串。
func (s *Schema) Type() Type { return s.typ }

// Fields 返回对象字段副本。
func (s *Schema) Fields() []Field {
	if s.kind != KindObject {
		return nil
	}
	out := make([]Field, len(s.fields))
	copy(out, s.fields)

	return out
}

// Visitor 按节点种类分派。
type Visitor[R any] interface {
	VisitLeaf(t Type) R
	VisitOptional(inner *Schema) R
	VisitNullable(inner *Schema) R
	VisitArray(elem *Schema) R
	VisitObject(fields []Field) R
}

// Walk 以 v 访问 s，返回对应分支的结果。nil 按 [Any] 叶子处理。
func Walk[R any](s *Schema, v Visitor[R]) R {
	if s == nil {
		return v.VisitLeaf(TypeAny)
	}

	switch s.kind {
	case KindOptional:
		return v.VisitOptional(s.inner)
	case KindNullable:
		return v.VisitNullable(s.inner)
	case KindArray:
		return v.VisitArray(s.inner)
	case KindObject:
		return v.VisitObject(s.fields)
	default:
		return v.VisitLeaf(s.typ)
	}
}
