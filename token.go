package fourth

import "strconv"

// A token is the resolved, executable unit produced by tokenization: either
// one of the closed set of primitive operations, or an integer literal. The
// reserved opNumber code marks literal tokens, whose value rides in n.
type token struct {
	op opCode
	n  int32
}

func (tok token) String() string {
	if tok.op == opNumber {
		return strconv.Itoa(int(tok.n))
	}
	return tok.op.String()
}

type opCode uint8

const (
	opNumber opCode = iota // <INTERNAL>  push the token's literal value

	// Here's a handy summary of all the FOURTH primitives:
	opDot      // .       pop the top of the stack, output it in decimal
	opMinus    // -       pop b then a, push a - b
	opPlus     // +       pop b then a, push a + b
	opStar     // *       pop b then a, push a * b
	opSlash    // /       pop b then a, push a / b
	opMod      // mod     pop b then a, push a % b
	opSlashMod // /mod    pop b then a, push a % b then a / b
	opEmit     // emit    pop a code point, output its character
	opDrop     // drop    pop the top of the stack and discard it
	opDup      // dup     duplicate the top of the stack
	opRot      // rot     lift the third-from-top element to the top
	opSpaces   // spaces  pop n, output n space characters
	opSwap     // swap    exchange the top two elements

	opMax
)

// String returns the op's source spelling, the form the tokenizer matches
// and the dumper prints.
func (op opCode) String() string { return opStrings[op] }

// name returns the op's diagnostic spelling, the form errors carry.
func (op opCode) name() string { return opNames[op] }

var opStrings = [opMax]string{
	opDot:      ".",
	opMinus:    "-",
	opPlus:     "+",
	opStar:     "*",
	opSlash:    "/",
	opMod:      "mod",
	opSlashMod: "/mod",
	opEmit:     "emit",
	opDrop:     "drop",
	opDup:      "dup",
	opRot:      "rot",
	opSpaces:   "spaces",
	opSwap:     "swap",
}

var opNames = [opMax]string{
	opDot:      "dot",
	opMinus:    "minus",
	opPlus:     "plus",
	opStar:     "star",
	opSlash:    "slash",
	opMod:      "mod",
	opSlashMod: "slash-mod",
	opEmit:     "emit",
	opDrop:     "drop",
	opDup:      "dup",
	opRot:      "rot",
	opSpaces:   "spaces",
	opSwap:     "swap",
}

// opTable resolves source spellings back to op codes; primitive resolution
// always consults it before literal parsing and dictionary lookup.
var opTable map[string]opCode

func init() {
	opTable = make(map[string]opCode, len(opStrings))
	for op, s := range opStrings {
		if s != "" {
			opTable[s] = opCode(op)
		}
	}
}
