package main

import (
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type historyBuffer struct {
	entries []string
}

func (hb *historyBuffer) ReadHistory(r io.Reader) (int, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return 0, err
	}
	for _, line := range strings.Split(string(b), "\n") {
		if line != "" {
			hb.entries = append(hb.entries, line)
		}
	}
	return len(hb.entries), nil
}

func (hb *historyBuffer) WriteHistory(w io.Writer) (int, error) {
	for i, entry := range hb.entries {
		if _, err := io.WriteString(w, entry+"\n"); err != nil {
			return i, err
		}
	}
	return len(hb.entries), nil
}

func TestHistory(t *testing.T) {
	dir, err := ioutil.TempDir("", "fourth-history")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	t.Run("round trips through a direct save", func(t *testing.T) {
		path := filepath.Join(dir, historyFile)
		hb := &historyBuffer{entries: []string{": sq dup *", "4 sq ."}}
		saveHistory(hb, path)

		var reread historyBuffer
		loadHistory(&reread, path)
		assert.Equal(t, hb.entries, reread.entries)
	})

	t.Run("empty path is a noop", func(t *testing.T) {
		saveHistory(&historyBuffer{entries: []string{"1 ."}}, "")
		var hb historyBuffer
		loadHistory(&hb, "")
		assert.Nil(t, hb.entries)
	})

	t.Run("missing file loads nothing", func(t *testing.T) {
		var hb historyBuffer
		loadHistory(&hb, filepath.Join(dir, "absent"))
		assert.Nil(t, hb.entries)
	})
}
