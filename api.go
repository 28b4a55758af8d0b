package fourth

// New creates a Machine with the prelude words already defined, configured
// by any given options. The prelude loads before options apply, so settings
// like WithMaxTokens govern user definitions only.
func New(opts ...Option) *Machine {
	m := Machine{dict: make(map[string][]token)}
	m.loadPrelude()
	m.apply(opts...)
	return &m
}

// WithLogf enables trace logging of definitions and token execution through
// the given printf-style function.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

// WithMaxTokens caps the expanded size of any single definition; a
// definition whose body expands past limit tokens fails with
// ErrDefinitionTooLarge. Zero, the default, disables the cap.
func WithMaxTokens(limit int) Option { return maxTokensOption(limit) }
