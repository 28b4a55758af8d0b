package fourth

import (
	"fmt"
	"io"
	"sort"
)

// Words returns the names of every dictionary entry in sorted order.
func (m *Machine) Words() []string {
	names := make([]string, 0, len(m.dict))
	for name := range m.dict {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dump writes a rendering of the machine's stack and dictionary to w. Each
// dictionary entry prints as a definition line whose body, being fully
// expanded, reads back through the tokenizer unchanged.
func (m *Machine) Dump(w io.Writer) error {
	dump := machineDumper{m: m, out: w}
	dump.dump()
	return dump.err
}

type machineDumper struct {
	m   *Machine
	out io.Writer
	err error
}

func (dump *machineDumper) dump() {
	dump.printf("# fourth machine\n")
	dump.printf("  stack: %v\n", dump.m.stack)
	dump.printf("# dictionary\n")
	for _, name := range dump.m.Words() {
		dump.printf("  : %s", name)
		for _, tok := range dump.m.dict[name] {
			dump.printf(" %v", tok)
		}
		dump.printf("\n")
	}
}

func (dump *machineDumper) printf(format string, args ...interface{}) {
	if dump.err == nil {
		_, dump.err = fmt.Fprintf(dump.out, format, args...)
	}
}
