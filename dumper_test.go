package fourth

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachine_words(t *testing.T) {
	m := New()
	assert.Equal(t, []string{"cr", "over", "space"}, m.Words())

	for _, line := range []string{
		": sq dup *",
		": area sq 355 * 113 /",
	} {
		_, err := m.Eval(line)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"area", "cr", "over", "space", "sq"}, m.Words())
}

func TestMachine_dump(t *testing.T) {
	m := New()
	for _, line := range []string{
		": sq dup *",
		"1 2",
	} {
		_, err := m.Eval(line)
		require.NoError(t, err)
	}

	var out strings.Builder
	require.NoError(t, m.Dump(&out))
	assert.Equal(t, lines(
		"# fourth machine",
		"  stack: [1 2]",
		"# dictionary",
		"  : cr 13 emit 10 emit",
		"  : over swap dup rot swap",
		"  : space 32 emit",
		"  : sq dup *",
	), out.String())
}

func TestMachine_dump_reads_back(t *testing.T) {
	m := New()
	_, err := m.Eval(": sq dup *")
	require.NoError(t, err)

	var out strings.Builder
	require.NoError(t, m.Dump(&out))

	reread := New()
	for _, line := range strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n") {
		if !strings.HasPrefix(line, "  : ") {
			continue
		}
		_, err := reread.Eval(strings.TrimPrefix(line, "  "))
		require.NoError(t, err, "dumped definition must re-evaluate: %q", line)
	}
	assert.Equal(t, m.Words(), reread.Words())

	_, err = reread.Eval("4 sq .")
	require.NoError(t, err)
}

func TestMachine_dump_write_failure(t *testing.T) {
	assert.Error(t, New().Dump(failWriter{}))
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errors.New("sink failed") }
