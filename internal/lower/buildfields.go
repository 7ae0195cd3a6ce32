package lower

import (
	"github.com/hanpama/graphcfg/internal/config"
	"github.com/hanpama/graphcfg/internal/directive"
	language "github.com/hanpama/graphcfg/internal/language"
	"github.com/hanpama/graphcfg/internal/valid"
)

var (
	fieldDirectives = newFieldDirectives()
	argDirectives   = newArgDirectives()
)

func newFieldDirectives() *directive.Registry[*config.Field] {
	r := directive.NewRegistry[*config.Field]()
	directive.Register(r, func(f *config.Field, v *config.ModifyField) { f.Modify = v })
	directive.Register(r, func(f *config.Field, v *config.InlineType) { f.Inline = v })
	directive.Register(r, func(f *config.Field, v *config.Http) { f.Http = v })
	directive.Register(r, func(f *config.Field, v *config.Unsafe) { f.UnsafeOperation = v })
	directive.Register(r, func(f *config.Field, v *config.GroupBy) { f.GroupBy = v })
	directive.Register(r, func(f *config.Field, v *config.ConstField) { f.ConstField = v })
	return r
}

func newArgDirectives() *directive.Registry[*config.Arg] {
	r := directive.NewRegistry[*config.Arg]()
	directive.Register(r, func(a *config.Arg, v *config.ModifyField) { a.Modify = v })
	return r
}

// Fields lowers the fields of an object or interface type.
func Fields(defs language.FieldList) valid.Valid[map[string]*config.Field] {
	return fields(defs, Field)
}

// InputFields lowers the fields of an input type. Input fields carry no
// arguments; their directives are decoded like those of output fields.
func InputFields(defs language.FieldList) valid.Valid[map[string]*config.Field] {
	return fields(defs, InputField)
}

func fields(defs language.FieldList, lower func(*language.FieldDefinition) valid.Valid[*config.Field]) valid.Valid[map[string]*config.Field] {
	c := &valid.Collector{}
	out := make(map[string]*config.Field, len(defs))
	for _, def := range defs {
		out[def.Name] = valid.Collect(c, lower(def).Trace(def.Name))
	}
	return valid.Result(c, out)
}

// Field lowers one output field with its arguments and directives.
func Field(def *language.FieldDefinition) valid.Valid[*config.Field] {
	return commonField(def, Args(def.Arguments))
}

// InputField lowers one field of an input type.
func InputField(def *language.FieldDefinition) valid.Valid[*config.Field] {
	return commonField(def, valid.Succeed(map[string]*config.Arg{}))
}

func commonField(def *language.FieldDefinition, args valid.Valid[map[string]*config.Arg]) valid.Valid[*config.Field] {
	ref := decompose(def.Type)
	f := &config.Field{
		TypeOf:           ref.typeOf,
		List:             ref.list,
		Required:         ref.required,
		ListTypeRequired: ref.listTypeRequired,
		Doc:              doc(def.Description),
	}

	c := &valid.Collector{}
	f.Args = valid.Collect(c, args)
	valid.Collect(c, fieldDirectives.Apply(f, def.Directives))
	return valid.Result(c, f)
}

// Args lowers the arguments of a field. Only @modify is meaningful on an
// argument.
func Args(defs language.ArgumentDefinitionList) valid.Valid[map[string]*config.Arg] {
	c := &valid.Collector{}
	args := make(map[string]*config.Arg, len(defs))
	for _, def := range defs {
		args[def.Name] = valid.Collect(c, Arg(def).Trace(def.Name))
	}
	return valid.Result(c, args)
}

func Arg(def *language.ArgumentDefinition) valid.Valid[*config.Arg] {
	ref := decompose(def.Type)
	a := &config.Arg{
		TypeOf:       ref.typeOf,
		List:         ref.list,
		Required:     ref.required,
		Doc:          doc(def.Description),
		DefaultValue: defaultValue(def.DefaultValue),
	}
	return argDirectives.Apply(a, def.Directives)
}
