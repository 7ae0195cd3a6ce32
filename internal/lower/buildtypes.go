package lower

import (
	"fmt"
	"sort"

	"github.com/hanpama/graphcfg/internal/config"
	language "github.com/hanpama/graphcfg/internal/language"
	"github.com/hanpama/graphcfg/internal/valid"
)

// Types lowers every non-union definition into the type table. Definitions
// are visited in document order; a later definition replaces an earlier one
// with the same name.
func Types(defs language.DefinitionList) valid.Valid[map[string]*config.Type] {
	c := &valid.Collector{}
	types := make(map[string]*config.Type, len(defs))
	for _, def := range defs {
		if def.Kind == language.Union {
			continue
		}
		types[def.Name] = valid.Collect(c, Type(def).Trace(def.Name))
	}
	return valid.Result(c, types)
}

// Type lowers a single object, interface, input, enum or scalar definition.
func Type(def *language.Definition) valid.Valid[*config.Type] {
	switch def.Kind {
	case language.Object:
		return objectType(def, false)
	case language.Interface:
		return objectType(def, true)
	case language.InputObject:
		return inputType(def)
	case language.Enum:
		return valid.Succeed(enumType(def))
	case language.Scalar:
		return valid.Succeed(scalarType(def))
	default:
		return valid.FailAt[*config.Type](fmt.Sprintf("%s %q cannot be stored in the type table", def.Kind, def.Name), def.Position)
	}
}

func objectType(def *language.Definition, iface bool) valid.Valid[*config.Type] {
	return valid.Map(Fields(def.Fields), func(fields map[string]*config.Field) *config.Type {
		return &config.Type{
			Fields:     fields,
			Doc:        doc(def.Description),
			Interface:  iface,
			Implements: implements(def.Interfaces),
		}
	})
}

func inputType(def *language.Definition) valid.Valid[*config.Type] {
	return valid.Map(InputFields(def.Fields), func(fields map[string]*config.Field) *config.Type {
		return &config.Type{
			Fields: fields,
			Doc:    doc(def.Description),
		}
	})
}

func enumType(def *language.Definition) *config.Type {
	variants := make([]string, 0, len(def.EnumValues))
	for _, value := range def.EnumValues {
		variants = append(variants, value.Name)
	}
	return &config.Type{
		Fields:   map[string]*config.Field{},
		Doc:      doc(def.Description),
		Variants: variants,
	}
}

func scalarType(def *language.Definition) *config.Type {
	return &config.Type{
		Fields: map[string]*config.Field{},
		Doc:    doc(def.Description),
		Scalar: true,
	}
}

// implements returns the interface names as a sorted set.
func implements(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
