package lower

import (
	"github.com/hanpama/graphcfg/internal/directive"
	language "github.com/hanpama/graphcfg/internal/language"
)

type typeRef struct {
	typeOf           string
	list             bool
	required         bool
	listTypeRequired bool
}

// decompose splits a type reference into its named type and the nullability
// of the outer type and of the list element. Only one level of list is
// understood: the named type of a nested list is left empty.
func decompose(t *language.Type) typeRef {
	if t == nil {
		return typeRef{}
	}
	ref := typeRef{required: t.NonNull}
	if t.Elem == nil {
		ref.typeOf = t.NamedType
		return ref
	}
	ref.list = true
	ref.listTypeRequired = t.Elem.NonNull
	if t.Elem.Elem == nil {
		ref.typeOf = t.Elem.NamedType
	}
	return ref
}

// defaultValue converts a literal default. A default that cannot be
// converted is dropped.
func defaultValue(v *language.Value) any {
	if v == nil {
		return nil
	}
	out, err := directive.Value(v).Unwrap()
	if err != nil {
		return nil
	}
	return out
}
