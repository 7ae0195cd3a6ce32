package lower

import (
	"github.com/hanpama/graphcfg/internal/config"
	"github.com/hanpama/graphcfg/internal/directive"
	language "github.com/hanpama/graphcfg/internal/language"
	"github.com/hanpama/graphcfg/internal/valid"
)

var schemaDirectives = newSchemaDirectives()

func newSchemaDirectives() *directive.Registry[*config.Config] {
	r := directive.NewRegistry[*config.Config]()
	directive.Register(r, func(c *config.Config, v *config.Server) { c.Server = *v })
	directive.Register(r, func(c *config.Config, v *config.Upstream) { c.Upstream = *v })
	return r
}

// schemaDefinition returns the first schema definition of doc.
func schemaDefinition(doc *language.SchemaDocument) valid.Valid[*language.SchemaDefinition] {
	if doc == nil || len(doc.Schema) == 0 {
		return valid.Fail[*language.SchemaDefinition]("schema not found").Trace("schema")
	}
	return valid.Succeed(doc.Schema[0])
}

func rootSchema(def *language.SchemaDefinition) config.RootSchema {
	var root config.RootSchema
	for _, opType := range def.OperationTypes {
		name := opType.Type
		switch opType.Operation {
		case language.Query:
			root.Query = &name
		case language.Mutation:
			root.Mutation = &name
		case language.Subscription:
			root.Subscription = &name
		}
	}
	return root
}
