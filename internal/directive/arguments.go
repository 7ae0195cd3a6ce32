package directive

import (
	language "github.com/hanpama/graphcfg/internal/language"
	"github.com/hanpama/graphcfg/internal/valid"
)

// Arguments converts the argument list of dir into JSON-like values:
// nil, bool, int64, float64, string, []any and map[string]any. Enum values
// become their names. Variables are not allowed in directive arguments.
func Arguments(dir *language.Directive) valid.Valid[map[string]any] {
	c := &valid.Collector{}
	args := make(map[string]any, len(dir.Arguments))
	for _, arg := range dir.Arguments {
		args[arg.Name] = valid.Collect(c, Value(arg.Value).Trace(arg.Name))
	}
	return valid.Result(c, args)
}

// Value converts a constant AST value into its JSON-like form.
func Value(v *language.Value) valid.Valid[any] {
	if v == nil {
		return valid.Succeed[any](nil)
	}
	if hasVariable(v) {
		return valid.FailAt[any]("variables are not allowed in constant values", v.Position)
	}
	out, err := v.Value(nil)
	if err != nil {
		return valid.FailAt[any](err.Error(), v.Position)
	}
	return valid.Succeed(out)
}

func hasVariable(v *language.Value) bool {
	if v.Kind == language.Variable {
		return true
	}
	for _, child := range v.Children {
		if hasVariable(child.Value) {
			return true
		}
	}
	return false
}
