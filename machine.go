package fourth

import "strings"

// Machine is the sole unit of interpreter state: one dictionary of defined
// words and one data stack, both mutated in place by every Eval call on the
// same instance. It is not safe for concurrent use; callers that share a
// Machine must serialize access.
type Machine struct {
	// The dictionary maps each defined word to its fully expanded token
	// sequence. Bodies are resolved at definition time, so no stored
	// sequence ever refers to another word by name; redefining a word
	// cannot reach back into definitions that already expanded it.
	dict map[string][]token

	// The stack is a standard LIFO of signed 32-bit integers, used
	// implicitly by most of the primitives. It persists across Eval calls,
	// including failed ones: operands consumed before a failure stay
	// consumed.
	stack []int32

	// Output accumulates the textual result of the expression currently
	// being evaluated; it is reset at the start of each expression and
	// discarded when evaluation fails.
	out strings.Builder

	logfn     func(mess string, args ...interface{})
	maxTokens int
}

func (m *Machine) logf(mess string, args ...interface{}) {
	if m.logfn != nil {
		m.logfn(mess, args...)
	}
}

func (m *Machine) push(v int32) { m.stack = append(m.stack, v) }

// pop removes and returns the top of the stack, attributing any underflow
// to op. A failed second pop of a two-operand primitive does not restore
// the first: partial consumption is observable, matching the no-rollback
// policy for whole expressions.
func (m *Machine) pop(op opCode) (int32, error) {
	i := len(m.stack) - 1
	if i < 0 {
		return 0, underflowError(op)
	}
	v := m.stack[i]
	m.stack = m.stack[:i]
	return v, nil
}

// pop2 pops the top two values: b was on top, a below it.
func (m *Machine) pop2(op opCode) (b, a int32, err error) {
	if b, err = m.pop(op); err == nil {
		a, err = m.pop(op)
	}
	return b, a, err
}

func (m *Machine) peek(op opCode) (int32, error) {
	if len(m.stack) == 0 {
		return 0, underflowError(op)
	}
	return m.stack[len(m.stack)-1], nil
}

// output appends one produced fragment followed by the single trailing
// space separator that every output-producing primitive shares.
func (m *Machine) output(s string) {
	m.out.WriteString(s)
	m.out.WriteByte(' ')
}
