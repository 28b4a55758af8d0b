package fourth

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpTable(t *testing.T) {
	assert.Len(t, opTable, int(opMax)-1, "every primitive spelling resolves")
	for word, op := range opTable {
		assert.Equal(t, word, op.String(), "spellings must round trip")
		assert.NotEqual(t, opNumber, op, "literals have no spelling")
		assert.NotEmpty(t, op.name(), "every primitive has a diagnostic name")
	}
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, "42", token{op: opNumber, n: 42}.String())
	assert.Equal(t, "-1", token{op: opNumber, n: -1}.String())
	assert.Equal(t, "/mod", token{op: opSlashMod}.String())
	assert.Equal(t, "slash-mod", opSlashMod.name())
	assert.Equal(t, "[13 emit 10 emit]",
		fmt.Sprint([]token{{op: opNumber, n: 13}, {op: opEmit}, {op: opNumber, n: 10}, {op: opEmit}}))
}
