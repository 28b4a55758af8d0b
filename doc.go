/*
Package fourth implements FOURTH, a small FORTH-flavored stack language
interpreted one line at a time.

FORTH programs are streams of whitespace-separated words evaluated against a
data stack; new words are defined in terms of old ones and become part of
the language. FOURTH keeps that essential shape and almost nothing else: no
control flow, no memory cells, no floating point, no compile-time/run-time
distinction. What remains is one Machine holding a dictionary and a stack of
signed 32-bit integers, with a single entry point:

	m := fourth.New()
	m.Eval(": sq dup *")
	out, err := m.Eval("4 sq .") // "16 ", nil

A line starting with ':' defines a word: the first word after the marker is
the name, the rest the body. Everything else is an expression: each word is
executed in order, mutating the stack and possibly appending to the line's
output. Output-producing words (., emit, spaces) each append their text plus
a single trailing space, which is why "4 sq ." yields "16 " and not "16".

Words resolve through a fixed precedence. A word is first matched against
the thirteen primitives (. - + * / mod /mod emit drop dup rot spaces swap),
then parsed as an integer literal, then looked up in the dictionary, and
otherwise fails as undefined. Two consequences are deliberate and preserved:
primitives cannot be overridden (a dictionary entry named dup is storable
but unreachable), and a word named 42 is equally unreachable behind the
literal parse.

Definition bodies are expanded eagerly. Defining ": b a ." does not store a
reference to a; it splices in a copy of whatever a means right now. Each
definition is a snapshot, so redefining a later never changes what b does.
The prelude words the Machine starts with (space, cr, over) are built the
same way, fed through the same definition path as user input.

Failures are ordinary errors, never panics: underflow names the operation
that starved ("dup: stack underflow"), unknown words carry their text,
division and modulo by zero are refused, and emit rejects values outside
the Unicode scalar range. A failed expression still keeps whatever stack
mutations happened before the failure; there is no rollback, and the
Machine remains usable for the next line.
*/
package fourth
