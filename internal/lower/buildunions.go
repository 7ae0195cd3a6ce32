package lower

import (
	"github.com/hanpama/graphcfg/internal/config"
	language "github.com/hanpama/graphcfg/internal/language"
)

// Unions collects the union definitions. It never fails: member names and
// descriptions are copied as written.
func Unions(defs language.DefinitionList) map[string]*config.Union {
	unions := make(map[string]*config.Union)
	for _, def := range defs {
		if def.Kind != language.Union {
			continue
		}
		unions[def.Name] = &config.Union{
			Types: append([]string(nil), def.Types...),
			Doc:   doc(def.Description),
		}
	}
	return unions
}
