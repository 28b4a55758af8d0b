package fourth

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Eval interprets one line of source. A line whose first byte is the
// definition marker ':' defines (or redefines) a word and yields empty
// output; any other line is an expression evaluated against the stack,
// yielding its accumulated output. Either way the first failure aborts the
// line, leaving prior stack and dictionary mutations in place.
func (m *Machine) Eval(line string) (string, error) {
	m.logf("eval %q", line)
	if strings.HasPrefix(line, ":") {
		return "", m.define(line[1:])
	}
	return m.evalExpr(line)
}

// define splits a definition body into its name and word list, expands the
// words against the current dictionary, and stores the result. Expansion
// happens now, not at call time: the entry snapshots whatever its words
// mean at this moment.
func (m *Machine) define(body string) error {
	words := strings.Fields(body)
	if len(words) == 0 {
		return ErrMissingName
	}
	name := words[0]
	toks, err := m.tokenize(words[1:])
	if err != nil {
		return err
	}
	if m.maxTokens > 0 && len(toks) > m.maxTokens {
		return fmt.Errorf("%s: %w (%d tokens, limit %d)",
			name, ErrDefinitionTooLarge, len(toks), m.maxTokens)
	}
	m.logf("define %s %v", name, toks)
	m.dict[name] = toks
	return nil
}

// tokenize resolves whitespace-separated words into executable tokens.
// Resolution order per word: primitive name, integer literal, dictionary
// entry (spliced in by copy), undefined. Primitive names therefore shadow
// dictionary entries, and numeric names are storable but unreachable; both
// properties are deliberate. The stack is never touched here.
func (m *Machine) tokenize(words []string) ([]token, error) {
	var toks []token
	for _, word := range words {
		if op, ok := opTable[word]; ok {
			toks = append(toks, token{op: op})
			continue
		}
		if n, err := strconv.ParseInt(word, 10, 32); err == nil {
			toks = append(toks, token{op: opNumber, n: int32(n)})
			continue
		}
		if body, ok := m.dict[word]; ok {
			toks = append(toks, body...)
			continue
		}
		return nil, UndefinedWordError(word)
	}
	return toks, nil
}

// evalExpr tokenizes the whole line before executing any of it, so an
// undefined word fails the line with no stack effect at all.
func (m *Machine) evalExpr(line string) (string, error) {
	toks, err := m.tokenize(strings.Fields(line))
	if err != nil {
		return "", err
	}
	m.out.Reset()
	for _, tok := range toks {
		m.logf("exec %v -- %v", tok, m.stack)
		if err := m.exec(tok); err != nil {
			return "", err
		}
	}
	return m.out.String(), nil
}

func (m *Machine) exec(tok token) error {
	if tok.op == opNumber {
		m.push(tok.n)
		return nil
	}
	return opFuncs[tok.op](m)
}

// opFuncs binds each primitive to its implementation; opNumber stays nil
// because exec handles literals before dispatch.
var opFuncs [opMax]func(m *Machine) error

func init() {
	opFuncs = [opMax]func(m *Machine) error{
		opDot:      (*Machine).dot,
		opMinus:    (*Machine).sub,
		opPlus:     (*Machine).add,
		opStar:     (*Machine).mul,
		opSlash:    (*Machine).div,
		opMod:      (*Machine).mod,
		opSlashMod: (*Machine).divmod,
		opEmit:     (*Machine).emit,
		opDrop:     (*Machine).drop,
		opDup:      (*Machine).dup,
		opRot:      (*Machine).rot,
		opSpaces:   (*Machine).spaces,
		opSwap:     (*Machine).swap,
	}
}

//// Output Operations

// Symbol   Name   Function
//    .     dot    pop the top of the stack, output its decimal text
func (m *Machine) dot() error {
	v, err := m.pop(opDot)
	if err != nil {
		return err
	}
	m.output(strconv.Itoa(int(v)))
	return nil
}

// Symbol   Name   Function
//   emit   emit   pop a code point, output the character it names
func (m *Machine) emit() error {
	v, err := m.pop(opEmit)
	if err != nil {
		return err
	}
	if !utf8.ValidRune(rune(v)) {
		return CodePointError(v)
	}
	m.output(string(rune(v)))
	return nil
}

// Symbol    Name     Function
//   spaces  spaces   pop n, output n space characters; negative counts
//                    output nothing
func (m *Machine) spaces() error {
	n, err := m.pop(opSpaces)
	if err != nil {
		return err
	}
	if n < 0 {
		n = 0
	}
	m.output(strings.Repeat(" ", int(n)))
	return nil
}

//// Integer Operations

// Symbol   Name    Function
//    -     minus   pop the top 2 elements of the stack, subtract, push
func (m *Machine) sub() error {
	b, a, err := m.pop2(opMinus)
	if err != nil {
		return err
	}
	m.push(a - b)
	return nil
}

// Symbol   Name   Function
//    +     plus   pop the top 2 elements of the stack, add, push
func (m *Machine) add() error {
	b, a, err := m.pop2(opPlus)
	if err != nil {
		return err
	}
	m.push(a + b)
	return nil
}

// Symbol   Name   Function
//    *     star   pop the top 2 elements of the stack, multiply, push
func (m *Machine) mul() error {
	b, a, err := m.pop2(opStar)
	if err != nil {
		return err
	}
	m.push(a * b)
	return nil
}

// Symbol   Name    Function
//    /     slash   pop the top 2 elements of the stack, divide, push;
//                  quotients truncate toward zero
func (m *Machine) div() error {
	b, a, err := m.pop2(opSlash)
	if err != nil {
		return err
	}
	if b == 0 {
		return divisionByZeroError(opSlash)
	}
	m.push(a / b)
	return nil
}

// Symbol   Name   Function
//   mod    mod    pop the top 2 elements of the stack, push the remainder
func (m *Machine) mod() error {
	b, a, err := m.pop2(opMod)
	if err != nil {
		return err
	}
	if b == 0 {
		return divisionByZeroError(opMod)
	}
	m.push(a % b)
	return nil
}

// Symbol   Name        Function
//   /mod   slash-mod   pop b then a, push a % b, then push a / b so the
//                      quotient ends on top
func (m *Machine) divmod() error {
	b, a, err := m.pop2(opSlashMod)
	if err != nil {
		return err
	}
	if b == 0 {
		return divisionByZeroError(opSlashMod)
	}
	m.push(a % b)
	m.push(a / b)
	return nil
}

//// Stack Operations

// Symbol   Name   Function
//   drop   drop   pop the top of the stack and discard it
func (m *Machine) drop() error {
	_, err := m.pop(opDrop)
	return err
}

// Symbol   Name   Function
//   dup    dup    push a copy of the top of the stack
func (m *Machine) dup() error {
	v, err := m.peek(opDup)
	if err != nil {
		return err
	}
	m.push(v)
	return nil
}

// Symbol   Name   Function
//   rot    rot    remove the third-from-top element and push it on top,
//                 preserving the relative order of the other two
func (m *Machine) rot() error {
	i := len(m.stack) - 3
	if i < 0 {
		return underflowError(opRot)
	}
	v := m.stack[i]
	m.stack = append(m.stack[:i], m.stack[i+1:]...)
	m.push(v)
	return nil
}

// Symbol   Name   Function
//   swap   swap   exchange the top two elements of the stack
func (m *Machine) swap() error {
	b, a, err := m.pop2(opSwap)
	if err != nil {
		return err
	}
	m.push(b)
	m.push(a)
	return nil
}
