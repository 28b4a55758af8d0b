// Package lineio provides line-at-a-time scanning over a queue of named
// input streams, tracking a Location through them for user feedback.
package lineio

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Location names a line in an Input stream.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Input scans lines sequentially through a Queue of one or more input
// streams. Streams that implement io.Closer are closed once drained.
type Input struct {
	Queue []io.Reader

	br  *bufio.Reader
	cur io.Reader
	loc Location
}

// Location names the line most recently returned by ScanLine.
func (in *Input) Location() Location { return in.loc }

// ScanLine returns the next input line with any trailing line ending
// stripped, advancing through the Queue as streams drain, and returns
// io.EOF once the Queue is exhausted.
func (in *Input) ScanLine() (string, error) {
	for {
		if in.br == nil && !in.nextIn() {
			return "", io.EOF
		}
		line, err := in.br.ReadString('\n')
		if err == io.EOF {
			in.closeIn()
			if line == "" {
				continue
			}
		} else if err != nil {
			return "", err
		}
		in.loc.Line++
		return strings.TrimRight(line, "\r\n"), nil
	}
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	in.cur = r
	in.br = bufio.NewReader(r)
	in.loc = Location{Name: nameOf(r)}
	return true
}

func (in *Input) closeIn() {
	if cl, ok := in.cur.(io.Closer); ok {
		cl.Close()
	}
	in.cur = nil
	in.br = nil
}

// NamedReader attaches a name to a reader so that Input locations can
// report it.
func NamedReader(name string, r io.Reader) io.Reader {
	return namedReader{name, r}
}

type namedReader struct {
	name string
	io.Reader
}

func (nr namedReader) Name() string { return nr.name }

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
