package fourth

type Option interface{ apply(m *Machine) }

func (m *Machine) apply(opts ...Option) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(m)
		}
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(m *Machine) { m.logfn = logfn }

type maxTokensOption int

func (limit maxTokensOption) apply(m *Machine) { m.maxTokens = int(limit) }
