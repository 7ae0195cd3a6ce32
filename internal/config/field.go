package config

// Http describes how a field is fetched from an upstream HTTP API.
type Http struct {
	Path    string     `json:"path" yaml:"path" validate:"required"`
	Method  Method     `json:"method,omitempty" yaml:"method,omitempty" validate:"omitempty,oneof=GET POST PUT PATCH DELETE HEAD OPTIONS"`
	Query   []KeyValue `json:"query,omitempty" yaml:"query,omitempty" validate:"dive"`
	Body    string     `json:"body,omitempty" yaml:"body,omitempty"`
	BaseURL string     `json:"baseURL,omitempty" yaml:"baseURL,omitempty" validate:"omitempty,url"`
	Headers []KeyValue `json:"headers,omitempty" yaml:"headers,omitempty" validate:"dive"`
	GroupBy []string   `json:"groupBy,omitempty" yaml:"groupBy,omitempty"`
}

func (Http) DirectiveName() string { return "http" }

func (h *Http) Default() { h.Method = MethodGet }

type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodPatch   Method = "PATCH"
	MethodDelete  Method = "DELETE"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
)

// ModifyField renames or hides a field or argument.
type ModifyField struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	Omit bool   `json:"omit,omitempty" yaml:"omit,omitempty"`
}

func (ModifyField) DirectiveName() string { return "modify" }

// InlineType replaces a field by the value found at Path below it.
type InlineType struct {
	Path []string `json:"path" yaml:"path" validate:"min=1"`
}

func (InlineType) DirectiveName() string { return "inline" }

// Unsafe resolves a field with a user supplied script.
type Unsafe struct {
	Script string `json:"script" yaml:"script" validate:"required"`
}

func (Unsafe) DirectiveName() string { return "unsafe" }

// GroupBy is the path used to match batched upstream results to their
// requests.
type GroupBy struct {
	Path []string `json:"path" yaml:"path" validate:"min=1"`
}

func (GroupBy) DirectiveName() string { return "groupBy" }

// ConstField resolves a field to a constant value.
type ConstField struct {
	Data any `json:"data" yaml:"data"`
}

func (ConstField) DirectiveName() string { return "const" }

// RequiredArguments makes @const without data an error while still accepting
// data: null.
func (ConstField) RequiredArguments() []string { return []string{"data"} }
