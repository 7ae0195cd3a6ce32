package config

import "sort"

// Config is the lowered form of a schema document.
type Config struct {
	Server   Server   `json:"server" yaml:"server"`
	Upstream Upstream `json:"upstream" yaml:"upstream"`
	GraphQL  GraphQL  `json:"graphql" yaml:"graphql"`
}

type GraphQL struct {
	Schema RootSchema        `json:"schema" yaml:"schema"`
	Types  map[string]*Type  `json:"types" yaml:"types"`
	Unions map[string]*Union `json:"unions,omitempty" yaml:"unions,omitempty"`
}

// RootSchema names the root operation types. A nil name means the operation
// is not supported.
type RootSchema struct {
	Query        *string `json:"query,omitempty" yaml:"query,omitempty"`
	Mutation     *string `json:"mutation,omitempty" yaml:"mutation,omitempty"`
	Subscription *string `json:"subscription,omitempty" yaml:"subscription,omitempty"`
}

// Type is a named object, interface, input, enum or scalar type.
// Exactly one kind is populated: Fields (object, interface, input),
// Variants (enum) or Scalar.
type Type struct {
	Fields     map[string]*Field `json:"fields" yaml:"fields"`
	Doc        *string           `json:"doc,omitempty" yaml:"doc,omitempty"`
	Interface  bool              `json:"interface,omitempty" yaml:"interface,omitempty"`
	Implements []string          `json:"implements,omitempty" yaml:"implements,omitempty"`
	Variants   []string          `json:"variants,omitempty" yaml:"variants,omitempty"`
	Scalar     bool              `json:"scalar,omitempty" yaml:"scalar,omitempty"`
}

type Union struct {
	Types []string `json:"types" yaml:"types"`
	Doc   *string  `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// Field is a field of an object, interface or input type.
//
// Required is the nullability of the field itself; ListTypeRequired is the
// nullability of the list element and is only meaningful when List is set.
type Field struct {
	TypeOf           string          `json:"type" yaml:"type"`
	List             bool            `json:"list,omitempty" yaml:"list,omitempty"`
	Required         bool            `json:"required,omitempty" yaml:"required,omitempty"`
	ListTypeRequired bool            `json:"listTypeRequired,omitempty" yaml:"listTypeRequired,omitempty"`
	Args             map[string]*Arg `json:"args,omitempty" yaml:"args,omitempty"`
	Doc              *string         `json:"doc,omitempty" yaml:"doc,omitempty"`
	Modify           *ModifyField    `json:"modify,omitempty" yaml:"modify,omitempty"`
	Inline           *InlineType     `json:"inline,omitempty" yaml:"inline,omitempty"`
	Http             *Http           `json:"http,omitempty" yaml:"http,omitempty"`
	UnsafeOperation  *Unsafe         `json:"unsafe,omitempty" yaml:"unsafe,omitempty"`
	GroupBy          *GroupBy        `json:"groupBy,omitempty" yaml:"groupBy,omitempty"`
	ConstField       *ConstField     `json:"const,omitempty" yaml:"const,omitempty"`
}

type Arg struct {
	TypeOf       string       `json:"type" yaml:"type"`
	List         bool         `json:"list,omitempty" yaml:"list,omitempty"`
	Required     bool         `json:"required,omitempty" yaml:"required,omitempty"`
	Doc          *string      `json:"doc,omitempty" yaml:"doc,omitempty"`
	Modify       *ModifyField `json:"modify,omitempty" yaml:"modify,omitempty"`
	DefaultValue any          `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
}

// TypeNames returns the names of the type table in lexical order.
func (g *GraphQL) TypeNames() []string {
	return sortedKeys(g.Types)
}

// UnionNames returns the names of the union table in lexical order.
func (g *GraphQL) UnionNames() []string {
	return sortedKeys(g.Unions)
}

// FieldNames returns the field names of t in lexical order.
func (t *Type) FieldNames() []string {
	return sortedKeys(t.Fields)
}

// ArgNames returns the argument names of f in lexical order.
func (f *Field) ArgNames() []string {
	return sortedKeys(f.Args)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
