package fourth

import (
	"fmt"
	"strings"
)

// The prelude is written in the language itself and fed through the normal
// definition path, so its words are ordinary dictionary entries,
// indistinguishable from anything a user defines: space and cr emit their
// characters by pushing code points, and over recombines four primitives to
// copy the second-from-top element onto the top.
const prelude = `
: space 32 emit
: cr 13 emit 10 emit
: over swap dup rot swap
`

func (m *Machine) loadPrelude() {
	for _, line := range strings.Split(strings.TrimSpace(prelude), "\n") {
		if _, err := m.Eval(line); err != nil {
			panic(fmt.Sprintf("fourth: prelude: %v", err))
		}
	}
}
