package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/hanpama/graphcfg/internal/config"
	"github.com/hanpama/graphcfg/internal/directive"
)

// SDL renders cfg as a schema document. Lowering the result yields a Config
// equal to cfg.
// Deterministic ordering: type and union names sorted lexicographically,
// fields and arguments by name.
func SDL(cfg *config.Config) string {
	if cfg == nil {
		return ""
	}
	var b strings.Builder

	renderSchema(&b, cfg)

	inputs := inputTypes(&cfg.GraphQL)
	for _, name := range cfg.GraphQL.TypeNames() {
		typ := cfg.GraphQL.Types[name]
		switch {
		case typ.Scalar:
			renderScalar(&b, name, typ)
		case typ.Variants != nil:
			renderEnum(&b, name, typ)
		case typ.Interface:
			renderObject(&b, "interface", name, typ)
		case inputs[name]:
			renderInputObject(&b, name, typ)
		default:
			renderObject(&b, "type", name, typ)
		}
	}
	for _, name := range cfg.GraphQL.UnionNames() {
		renderUnion(&b, name, cfg.GraphQL.Unions[name])
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// ----- render helpers -----

func renderSchema(b *strings.Builder, cfg *config.Config) {
	b.WriteString("schema")
	if !reflect.DeepEqual(cfg.Server, directive.Default[config.Server]()) {
		renderDirective(b, cfg.Server)
	}
	if !reflect.DeepEqual(cfg.Upstream, directive.Default[config.Upstream]()) {
		renderDirective(b, cfg.Upstream)
	}
	b.WriteString(" {\n")
	root := cfg.GraphQL.Schema
	if root.Query != nil {
		b.WriteString("  query: " + *root.Query + "\n")
	}
	if root.Mutation != nil {
		b.WriteString("  mutation: " + *root.Mutation + "\n")
	}
	if root.Subscription != nil {
		b.WriteString("  subscription: " + *root.Subscription + "\n")
	}
	b.WriteString("}\n\n")
}

func renderDescription(b *strings.Builder, indent string, desc *string) {
	if desc == nil {
		return
	}
	b.WriteString(indent)
	b.WriteString(quote(*desc))
	b.WriteString("\n")
}

func renderScalar(b *strings.Builder, name string, typ *config.Type) {
	renderDescription(b, "", typ.Doc)
	b.WriteString("scalar ")
	b.WriteString(name)
	b.WriteString("\n\n")
}

func renderEnum(b *strings.Builder, name string, typ *config.Type) {
	renderDescription(b, "", typ.Doc)
	b.WriteString("enum ")
	b.WriteString(name)
	if len(typ.Variants) == 0 {
		b.WriteString("\n\n")
		return
	}
	b.WriteString(" {\n")
	for _, variant := range typ.Variants {
		b.WriteString("  ")
		b.WriteString(variant)
		b.WriteString("\n")
	}
	b.WriteString("}\n\n")
}

func renderInputObject(b *strings.Builder, name string, typ *config.Type) {
	renderDescription(b, "", typ.Doc)
	b.WriteString("input ")
	b.WriteString(name)
	renderFields(b, typ)
}

func renderObject(b *strings.Builder, keyword, name string, typ *config.Type) {
	renderDescription(b, "", typ.Doc)
	b.WriteString(keyword)
	b.WriteString(" ")
	b.WriteString(name)
	if len(typ.Implements) > 0 {
		b.WriteString(" implements ")
		b.WriteString(strings.Join(typ.Implements, " & "))
	}
	renderFields(b, typ)
}

// renderFields writes the field block of typ. A type without fields is
// written without braces.
func renderFields(b *strings.Builder, typ *config.Type) {
	if len(typ.Fields) == 0 {
		b.WriteString("\n\n")
		return
	}
	b.WriteString(" {\n")
	for _, fieldName := range typ.FieldNames() {
		renderField(b, fieldName, typ.Fields[fieldName])
	}
	b.WriteString("}\n\n")
}

func renderUnion(b *strings.Builder, name string, union *config.Union) {
	renderDescription(b, "", union.Doc)
	b.WriteString("union ")
	b.WriteString(name)
	b.WriteString(" = ")
	b.WriteString(strings.Join(union.Types, " | "))
	b.WriteString("\n\n")
}

func renderField(b *strings.Builder, name string, field *config.Field) {
	renderDescription(b, "  ", field.Doc)
	b.WriteString("  ")
	b.WriteString(name)
	if len(field.Args) > 0 {
		b.WriteString("(")
		for i, argName := range field.ArgNames() {
			if i > 0 {
				b.WriteString(", ")
			}
			renderArg(b, argName, field.Args[argName])
		}
		b.WriteString(")")
	}
	b.WriteString(": ")
	b.WriteString(renderTypeRef(field.TypeOf, field.List, field.Required, field.ListTypeRequired))

	if field.Modify != nil {
		renderDirective(b, *field.Modify)
	}
	if field.Inline != nil {
		renderDirective(b, *field.Inline)
	}
	if field.Http != nil {
		renderDirective(b, *field.Http)
	}
	if field.UnsafeOperation != nil {
		renderDirective(b, *field.UnsafeOperation)
	}
	if field.GroupBy != nil {
		renderDirective(b, *field.GroupBy)
	}
	if field.ConstField != nil {
		renderDirective(b, *field.ConstField)
	}
	b.WriteString("\n")
}

func renderArg(b *strings.Builder, name string, arg *config.Arg) {
	if arg.Doc != nil {
		b.WriteString(quote(*arg.Doc))
		b.WriteString(" ")
	}
	b.WriteString(name)
	b.WriteString(": ")
	b.WriteString(renderTypeRef(arg.TypeOf, arg.List, arg.Required, false))
	if arg.DefaultValue != nil {
		b.WriteString(" = ")
		b.WriteString(renderValue(arg.DefaultValue))
	}
	if arg.Modify != nil {
		renderDirective(b, *arg.Modify)
	}
}

func renderTypeRef(typeOf string, list, required, listTypeRequired bool) string {
	out := typeOf
	if list {
		if listTypeRequired {
			out += "!"
		}
		out = "[" + out + "]"
	}
	if required {
		out += "!"
	}
	return out
}

// renderDirective writes " @name(args...)" for a fragment. Arguments are
// taken from the fragment's JSON form, so omitted values fall back to their
// defaults when the document is lowered again.
func renderDirective(b *strings.Builder, fragment directive.Codec) {
	b.WriteString(" @")
	b.WriteString(fragment.DirectiveName())

	args := fragmentArguments(fragment)
	if len(args) == 0 {
		return
	}
	names := make([]string, 0, len(args))
	for name := range args {
		names = append(names, name)
	}
	sort.Strings(names)

	b.WriteString("(")
	for i, name := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(renderValue(args[name]))
	}
	b.WriteString(")")
}

func fragmentArguments(fragment directive.Codec) map[string]any {
	raw, err := json.Marshal(fragment)
	if err != nil {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var args map[string]any
	if err := dec.Decode(&args); err != nil {
		return nil
	}
	return args
}

func renderValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(v)
	case string:
		return quote(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		s := strconv.FormatFloat(v, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eEnN") {
			s += ".0"
		}
		return s
	case json.Number:
		return v.String()
	case []any:
		items := make([]string, len(v))
		for i, item := range v {
			items[i] = renderValue(item)
		}
		return "[" + strings.Join(items, ", ") + "]"
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fields := make([]string, len(keys))
		for i, k := range keys {
			fields[i] = k + ": " + renderValue(v[k])
		}
		return "{" + strings.Join(fields, ", ") + "}"
	default:
		return quote(fmt.Sprint(v))
	}
}

// quote renders s as a GraphQL string literal.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				b.WriteString(`\u00`)
				b.WriteString(strconv.FormatInt(int64(r)>>4, 16))
				b.WriteString(strconv.FormatInt(int64(r)&0xf, 16))
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// inputTypes returns the object-shaped types reachable from field arguments.
// The type table does not record whether a type was declared as an input, so
// it is recovered from where the type is used.
func inputTypes(g *config.GraphQL) map[string]bool {
	inputs := make(map[string]bool)
	var visit func(name string)
	visit = func(name string) {
		if inputs[name] {
			return
		}
		typ, ok := g.Types[name]
		if !ok || typ.Scalar || typ.Variants != nil || typ.Interface {
			return
		}
		inputs[name] = true
		for _, field := range typ.Fields {
			visit(field.TypeOf)
		}
	}
	for _, typ := range g.Types {
		for _, field := range typ.Fields {
			for _, arg := range field.Args {
				visit(arg.TypeOf)
			}
		}
	}
	return inputs
}
