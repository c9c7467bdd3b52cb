package template

// Context provides data for scaffold template rendering. All fields are
// exported for use with Go's text/template package. Rendering must stay
// deterministic for a given project name, so the context intentionally
// carries no timestamps.
type Context struct {
	// Project
	ProjectName string // requested name, verbatim (e.g., "FooBar")
	Token       string // derived identifier (e.g., "foo_bar")

	// Scaffold toggles
	IncludeTests     bool
	IncludeBenchmark bool

	// Meta
	Version string // genc version that generated the project
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithProject sets the project name and its derived token.
func WithProject(name, token string) ContextOption {
	return func(c *Context) {
		c.ProjectName = name
		c.Token = token
	}
}

// WithScaffolds sets the unit-test and benchmark scaffold toggles.
func WithScaffolds(tests, benchmark bool) ContextOption {
	return func(c *Context) {
		c.IncludeTests = tests
		c.IncludeBenchmark = benchmark
	}
}

// WithVersion sets the generator version recorded in support files.
func WithVersion(v string) ContextOption {
	return func(c *Context) {
		c.Version = v
	}
}

// NewContext creates a Context with the given options applied.
func NewContext(opts ...ContextOption) *Context {
	c := &Context{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
