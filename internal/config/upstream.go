package config

// Upstream holds the options for outbound calls, declared with @upstream on
// the schema definition. Durations are in seconds.
type Upstream struct {
	BaseURL            string   `json:"baseURL,omitempty" yaml:"baseURL,omitempty" validate:"omitempty,url"`
	ConnectTimeout     int      `json:"connectTimeout,omitempty" yaml:"connectTimeout,omitempty" validate:"omitempty,min=0"`
	Timeout            int      `json:"timeout,omitempty" yaml:"timeout,omitempty" validate:"omitempty,min=0"`
	TCPKeepAlive       int      `json:"tcpKeepAlive,omitempty" yaml:"tcpKeepAlive,omitempty" validate:"omitempty,min=0"`
	PoolIdleTimeout    int      `json:"poolIdleTimeout,omitempty" yaml:"poolIdleTimeout,omitempty" validate:"omitempty,min=0"`
	PoolMaxIdlePerHost int      `json:"poolMaxIdlePerHost,omitempty" yaml:"poolMaxIdlePerHost,omitempty" validate:"omitempty,min=0"`
	KeepAliveInterval  int      `json:"keepAliveInterval,omitempty" yaml:"keepAliveInterval,omitempty" validate:"omitempty,min=0"`
	KeepAliveTimeout   int      `json:"keepAliveTimeout,omitempty" yaml:"keepAliveTimeout,omitempty" validate:"omitempty,min=0"`
	KeepAliveWhileIdle bool     `json:"keepAliveWhileIdle,omitempty" yaml:"keepAliveWhileIdle,omitempty"`
	Proxy              *Proxy   `json:"proxy,omitempty" yaml:"proxy,omitempty"`
	UserAgent          string   `json:"userAgent,omitempty" yaml:"userAgent,omitempty"`
	AllowedHeaders     []string `json:"allowedHeaders,omitempty" yaml:"allowedHeaders,omitempty"`
	EnableHTTPCache    bool     `json:"enableHttpCache,omitempty" yaml:"enableHttpCache,omitempty"`
	Batch              *Batch   `json:"batch,omitempty" yaml:"batch,omitempty"`
}

func (Upstream) DirectiveName() string { return "upstream" }

type Proxy struct {
	URL string `json:"url" yaml:"url" validate:"required,url"`
}

// Batch configures request batching for fields declaring @groupBy or an
// @http groupBy path.
type Batch struct {
	MaxSize int      `json:"maxSize,omitempty" yaml:"maxSize,omitempty" validate:"omitempty,min=1"`
	Delay   int      `json:"delay,omitempty" yaml:"delay,omitempty" validate:"omitempty,min=0"`
	Headers []string `json:"headers,omitempty" yaml:"headers,omitempty"`
}
