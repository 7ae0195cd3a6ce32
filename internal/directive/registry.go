package directive

import (
	language "github.com/hanpama/graphcfg/internal/language"
	"github.com/hanpama/graphcfg/internal/valid"
)

type decodeFunc[N any] func(node N, dir *language.Directive) valid.Valid[struct{}]

// Registry maps directive names to the decoders that apply them to a node of
// type N. It is built once and only read afterwards.
type Registry[N any] struct {
	decoders map[string]decodeFunc[N]
}

func NewRegistry[N any]() *Registry[N] {
	return &Registry[N]{decoders: make(map[string]decodeFunc[N])}
}

// Register adds a decoder for the directive of T. set stores the decoded
// fragment on the node.
func Register[N any, T Codec](r *Registry[N], set func(N, *T)) {
	var zero T
	r.decoders[zero.DirectiveName()] = func(node N, dir *language.Directive) valid.Valid[struct{}] {
		return valid.Map(Decode[T](dir), func(v T) struct{} {
			set(node, &v)
			return struct{}{}
		})
	}
}

// Apply decodes the registered directives of dirs into node. When a
// directive occurs more than once only its last occurrence is decoded.
// Directives without a decoder are ignored. Every failing directive
// contributes its causes.
func (r *Registry[N]) Apply(node N, dirs language.DirectiveList) valid.Valid[N] {
	last := make(map[string]int, len(dirs))
	for i, dir := range dirs {
		last[dir.Name] = i
	}

	c := &valid.Collector{}
	for i, dir := range dirs {
		if last[dir.Name] != i {
			continue
		}
		decode, ok := r.decoders[dir.Name]
		if !ok {
			continue
		}
		valid.Collect(c, decode(node, dir))
	}
	return valid.Result(c, node)
}
