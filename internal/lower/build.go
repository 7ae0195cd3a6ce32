// Package lower turns a parsed schema document into a config.Config.
//
// The pass is a pure function of the document: it reads no files, keeps no
// state between calls and reports every problem it finds instead of stopping
// at the first one.
package lower

import (
	"github.com/hanpama/graphcfg/internal/config"
	"github.com/hanpama/graphcfg/internal/directive"
	language "github.com/hanpama/graphcfg/internal/language"
	"github.com/hanpama/graphcfg/internal/valid"
)

// Lower builds the Config of doc. The schema definition must be present;
// everything else is lowered independently and all causes are reported
// together.
func Lower(doc *language.SchemaDocument) valid.Valid[*config.Config] {
	return valid.AndThen(schemaDefinition(doc), func(def *language.SchemaDefinition) valid.Valid[*config.Config] {
		cfg := &config.Config{
			Server:   directive.Default[config.Server](),
			Upstream: directive.Default[config.Upstream](),
		}

		c := &valid.Collector{}
		valid.Collect(c, schemaDirectives.Apply(cfg, def.Directives).Trace("schema"))
		cfg.GraphQL = valid.Collect(c, graphQL(def, doc.Definitions))

		return valid.Result(c, cfg)
	})
}

// FromDocument is Lower for callers that work with plain errors. The error is
// a valid.ValidationError.
func FromDocument(doc *language.SchemaDocument) (*config.Config, error) {
	return Lower(doc).Unwrap()
}

func graphQL(def *language.SchemaDefinition, defs language.DefinitionList) valid.Valid[config.GraphQL] {
	return valid.Map(Types(defs), func(types map[string]*config.Type) config.GraphQL {
		return config.GraphQL{
			Schema: rootSchema(def),
			Types:  types,
			Unions: Unions(defs),
		}
	})
}

func doc(description string) *string {
	if description == "" {
		return nil
	}
	return &description
}
