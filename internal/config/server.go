package config

// Server holds the process-wide serving options declared with @server on the
// schema definition.
type Server struct {
	Port                     int        `json:"port,omitempty" yaml:"port,omitempty" validate:"omitempty,min=1,max=65535"`
	Hostname                 string     `json:"hostname,omitempty" yaml:"hostname,omitempty" validate:"omitempty,hostname|ip"`
	Workers                  int        `json:"workers,omitempty" yaml:"workers,omitempty" validate:"omitempty,min=1"`
	EnableGraphiql           bool       `json:"enableGraphiql,omitempty" yaml:"enableGraphiql,omitempty"`
	EnableQueryValidation    bool       `json:"enableQueryValidation,omitempty" yaml:"enableQueryValidation,omitempty"`
	EnableResponseValidation bool       `json:"enableResponseValidation,omitempty" yaml:"enableResponseValidation,omitempty"`
	EnableIntrospection      bool       `json:"enableIntrospection,omitempty" yaml:"enableIntrospection,omitempty"`
	EnableApolloTracing      bool       `json:"enableApolloTracing,omitempty" yaml:"enableApolloTracing,omitempty"`
	EnableCacheControlHeader bool       `json:"enableCacheControlHeader,omitempty" yaml:"enableCacheControlHeader,omitempty"`
	GlobalResponseTimeout    int        `json:"globalResponseTimeout,omitempty" yaml:"globalResponseTimeout,omitempty" validate:"omitempty,min=0"`
	Vars                     []KeyValue `json:"vars,omitempty" yaml:"vars,omitempty" validate:"dive"`
	ResponseHeaders          []KeyValue `json:"responseHeaders,omitempty" yaml:"responseHeaders,omitempty" validate:"dive"`
}

func (Server) DirectiveName() string { return "server" }

// KeyValue is an ordered name/value pair used for headers, query parameters
// and variables.
type KeyValue struct {
	Key   string `json:"key" yaml:"key" validate:"required"`
	Value string `json:"value" yaml:"value"`
}
