package lineio

import (
	"bufio"
	"bytes"
	"io"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInput_ScanLine(t *testing.T) {
	t.Run("single stream", func(t *testing.T) {
		in := Input{Queue: []io.Reader{
			NamedReader("first", strings.NewReader("a b\nc d\n")),
		}}

		line, err := in.ScanLine()
		require.NoError(t, err)
		assert.Equal(t, "a b", line)
		assert.Equal(t, "first:1", in.Location().String())

		line, err = in.ScanLine()
		require.NoError(t, err)
		assert.Equal(t, "c d", line)
		assert.Equal(t, "first:2", in.Location().String())

		_, err = in.ScanLine()
		assert.Equal(t, io.EOF, err)
	})

	t.Run("queued streams", func(t *testing.T) {
		in := Input{Queue: []io.Reader{
			NamedReader("first", strings.NewReader("1\n2\n")),
			NamedReader("second", strings.NewReader("3\n")),
		}}

		var got []string
		for {
			line, err := in.ScanLine()
			if err == io.EOF {
				break
			}
			require.NoError(t, err)
			got = append(got, in.Location().String()+" "+line)
		}
		assert.Equal(t, []string{
			"first:1 1",
			"first:2 2",
			"second:1 3",
		}, got)
	})

	t.Run("no trailing newline", func(t *testing.T) {
		in := Input{Queue: []io.Reader{
			NamedReader("tail", strings.NewReader("last line")),
		}}

		line, err := in.ScanLine()
		require.NoError(t, err)
		assert.Equal(t, "last line", line)
		assert.Equal(t, "tail:1", in.Location().String())

		_, err = in.ScanLine()
		assert.Equal(t, io.EOF, err)
	})

	t.Run("crlf line endings", func(t *testing.T) {
		in := Input{Queue: []io.Reader{
			NamedReader("dos", strings.NewReader("a\r\nb\r\n")),
		}}

		line, err := in.ScanLine()
		require.NoError(t, err)
		assert.Equal(t, "a", line)

		line, err = in.ScanLine()
		require.NoError(t, err)
		assert.Equal(t, "b", line)
	})

	t.Run("unnamed reader", func(t *testing.T) {
		in := Input{Queue: []io.Reader{strings.NewReader("x\n")}}

		_, err := in.ScanLine()
		require.NoError(t, err)
		assert.Equal(t, "<unnamed *strings.Reader>:1", in.Location().String())
	})

	t.Run("closes finished streams", func(t *testing.T) {
		cc := &closeCounter{Reader: strings.NewReader("only\n")}
		in := Input{Queue: []io.Reader{cc}}

		_, err := in.ScanLine()
		require.NoError(t, err)
		_, err = in.ScanLine()
		assert.Equal(t, io.EOF, err)
		assert.Equal(t, 1, cc.closed)
	})
}

type closeCounter struct {
	io.Reader
	closed int
}

func (cc *closeCounter) Close() error {
	cc.closed++
	return nil
}

func TestNewWriteFlusher(t *testing.T) {
	t.Run("discard needs no flushing", func(t *testing.T) {
		wf := NewWriteFlusher(ioutil.Discard)
		_, err := io.WriteString(wf, "gone")
		require.NoError(t, err)
		assert.NoError(t, wf.Flush())
	})

	t.Run("flusher passes through", func(t *testing.T) {
		bw := bufio.NewWriter(ioutil.Discard)
		assert.Same(t, bw, NewWriteFlusher(bw))
	})

	t.Run("buffer writes land immediately", func(t *testing.T) {
		var buf bytes.Buffer
		wf := NewWriteFlusher(&buf)
		_, err := io.WriteString(wf, "hello")
		require.NoError(t, err)
		assert.Equal(t, "hello", buf.String())
		assert.NoError(t, wf.Flush())
	})

	t.Run("plain writer gets buffered", func(t *testing.T) {
		var buf bytes.Buffer
		wf := NewWriteFlusher(plainWriter{&buf})
		_, err := io.WriteString(wf, "held")
		require.NoError(t, err)
		assert.Equal(t, "", buf.String())
		require.NoError(t, wf.Flush())
		assert.Equal(t, "held", buf.String())
	})
}

type plainWriter struct{ buf *bytes.Buffer }

func (pw plainWriter) Write(p []byte) (int, error) { return pw.buf.Write(p) }
