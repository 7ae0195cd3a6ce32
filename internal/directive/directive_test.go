package directive_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hanpama/graphcfg/internal/config"
	"github.com/hanpama/graphcfg/internal/directive"
	language "github.com/hanpama/graphcfg/internal/language"
)

// fieldDirectives parses a single field declaration and returns its
// directives.
func fieldDirectives(t *testing.T, decl string) language.DirectiveList {
	t.Helper()
	doc, err := language.ParseSchema("test.graphql", "type Query {\n  "+decl+"\n}\n")
	require.NoError(t, err)
	require.Len(t, doc.Definitions, 1)
	require.Len(t, doc.Definitions[0].Fields, 1)
	return doc.Definitions[0].Fields[0].Directives
}

func TestDecodeHttp(t *testing.T) {
	dirs := fieldDirectives(t, `users: [User] @http(path: "/users", query: [{key: "page", value: "1"}])`)

	got, err := directive.Decode[config.Http](dirs[0]).Unwrap()
	require.NoError(t, err)
	require.Equal(t, config.Http{
		Path:   "/users",
		Method: config.MethodGet,
		Query:  []config.KeyValue{{Key: "page", Value: "1"}},
	}, got)
}

func TestDecodeEnumArgument(t *testing.T) {
	dirs := fieldDirectives(t, `createUser: User @http(path: "/users", method: POST)`)

	got, err := directive.Decode[config.Http](dirs[0]).Unwrap()
	require.NoError(t, err)
	require.Equal(t, config.MethodPost, got.Method)
}

func TestDecodeUnknownArgument(t *testing.T) {
	dirs := fieldDirectives(t, `users: [User] @http(path: "/users", verb: "GET")`)

	v := directive.Decode[config.Http](dirs[0])
	require.False(t, v.IsSucceed())
	causes := v.Causes()
	require.Len(t, causes, 1)
	require.Contains(t, causes[0].Message, "verb")
	require.Equal(t, []string{"@http"}, causes[0].Trace)
	require.Equal(t, 2, causes[0].Line)
}

func TestDecodeValidation(t *testing.T) {
	for _, tc := range []struct {
		name    string
		decl    string
		wantMsg []string
	}{
		{
			name:    "missing path",
			decl:    `users: [User] @http(method: GET)`,
			wantMsg: []string{`argument "path" is required`},
		},
		{
			name:    "bad method",
			decl:    `users: [User] @http(path: "/users", method: FETCH)`,
			wantMsg: []string{`argument "method" must be one of [GET POST PUT PATCH DELETE HEAD OPTIONS], got FETCH`},
		},
		{
			name: "missing path and bad base url",
			decl: `users: [User] @http(baseURL: "nope")`,
			wantMsg: []string{
				`argument "path" is required`,
				`argument "baseURL" must be a valid URL, got nope`,
			},
		},
		{
			name:    "empty inline path",
			decl:    `name: String @inline(path: [])`,
			wantMsg: []string{`argument "path" must be at least 1`},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			dirs := fieldDirectives(t, tc.decl)
			var causes []string
			switch dirs[0].Name {
			case "http":
				for _, c := range directive.Decode[config.Http](dirs[0]).Causes() {
					causes = append(causes, c.Message)
				}
			case "inline":
				for _, c := range directive.Decode[config.InlineType](dirs[0]).Causes() {
					causes = append(causes, c.Message)
				}
			}
			require.Equal(t, tc.wantMsg, causes)
		})
	}
}

func TestDecodeConst(t *testing.T) {
	dirs := fieldDirectives(t, `answer: Int @const(data: {value: 42, tags: ["a", "b"], ok: true, none: null})`)

	got, err := directive.Decode[config.ConstField](dirs[0]).Unwrap()
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"value": int64(42),
		"tags":  []any{"a", "b"},
		"ok":    true,
		"none":  nil,
	}, got.Data)
}

func TestDecodeRejectsVariables(t *testing.T) {
	dir := &language.Directive{
		Name: "http",
		Arguments: language.ArgumentList{
			{Name: "path", Value: &language.Value{Kind: language.Variable, Raw: "path"}},
		},
	}

	v := directive.Decode[config.Http](dir)
	require.False(t, v.IsSucceed())
	require.Len(t, v.Causes(), 1)
	require.Equal(t, []string{"@http", "path"}, v.Causes()[0].Trace)
	require.Equal(t, "variables are not allowed in constant values", v.Causes()[0].Message)
}

func TestDefault(t *testing.T) {
	require.Equal(t, config.MethodGet, directive.Default[config.Http]().Method)
	require.Equal(t, config.Server{}, directive.Default[config.Server]())
}

func TestRegistryApply(t *testing.T) {
	r := directive.NewRegistry[*config.Field]()
	directive.Register(r, func(f *config.Field, v *config.Http) { f.Http = v })
	directive.Register(r, func(f *config.Field, v *config.ModifyField) { f.Modify = v })

	t.Run("last occurrence wins", func(t *testing.T) {
		dirs := fieldDirectives(t, `users: [User] @http(method: GET) @http(path: "/second")`)
		field, err := r.Apply(&config.Field{}, dirs).Unwrap()
		require.NoError(t, err)
		require.Equal(t, "/second", field.Http.Path)
	})

	t.Run("unknown directives are ignored", func(t *testing.T) {
		dirs := fieldDirectives(t, `users: [User] @deprecated(reason: "old") @modify(name: "people")`)
		field, err := r.Apply(&config.Field{}, dirs).Unwrap()
		require.NoError(t, err)
		require.Nil(t, field.Http)
		require.Equal(t, &config.ModifyField{Name: "people"}, field.Modify)
	})

	t.Run("every failing directive is reported", func(t *testing.T) {
		dirs := fieldDirectives(t, `users: [User] @http(method: GET) @modify(name: 1)`)
		v := r.Apply(&config.Field{}, dirs)
		require.False(t, v.IsSucceed())
		var traces []string
		for _, c := range v.Causes() {
			traces = append(traces, c.Trace[0])
		}
		require.Equal(t, []string{"@http", "@modify"}, traces)
	})
}

func TestDecodeErrorsOneCausePerProblem(t *testing.T) {
	dirs := fieldDirectives(t, `users: [User] @http(path: 1, body: 2)`)

	v := directive.Decode[config.Http](dirs[0])
	require.False(t, v.IsSucceed())
	causes := v.Causes()
	require.Len(t, causes, 2)
	for _, c := range causes {
		require.NotContains(t, c.Message, "error(s)")
		require.Equal(t, []string{"@http"}, c.Trace)
	}
}

func TestDecodeRejectsFloatForInteger(t *testing.T) {
	doc, err := language.ParseSchema("test.graphql", "schema @server(port: 80.5) { query: Query }")
	require.NoError(t, err)

	v := directive.Decode[config.Server](doc.Schema[0].Directives[0])
	require.False(t, v.IsSucceed())
	require.Len(t, v.Causes(), 1)
	require.Contains(t, v.Causes()[0].Message, "expected an integer, got 80.5")

	doc, err = language.ParseSchema("test.graphql", "schema @server(port: 80.0) { query: Query }")
	require.NoError(t, err)
	require.False(t, directive.Decode[config.Server](doc.Schema[0].Directives[0]).IsSucceed())
}

func TestDecodeConstRequiresData(t *testing.T) {
	dirs := fieldDirectives(t, `answer: Int @const`)
	v := directive.Decode[config.ConstField](dirs[0])
	require.False(t, v.IsSucceed())
	require.Len(t, v.Causes(), 1)
	require.Equal(t, `argument "data" is required`, v.Causes()[0].Message)
	require.Equal(t, []string{"@const"}, v.Causes()[0].Trace)

	dirs = fieldDirectives(t, `answer: Int @const(data: null)`)
	got, err := directive.Decode[config.ConstField](dirs[0]).Unwrap()
	require.NoError(t, err)
	require.Nil(t, got.Data)
}
