package codefmt

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisambiguate(t *testing.T) {
	pull, stop := iter.Pull(DisambiguateName("example"))
	defer stop()

	var name string
	var more bool

	name, more = pull()
	assert.Equal(t, "example", name)
	assert.True(t, more)

	name, more = pull()
	assert.Equal(t, "example2", name)
	assert.True(t, more)

	name, more = pull()
	assert.Equal(t, "example3", name)
	assert.True(t, more)
}

func TestDisambiguateNumSuffix(t *testing.T) {
	pull, stop := iter.Pull(DisambiguateName("answer42"))
	defer stop()

	var name string
	var more bool

	name, more = pull()
	assert.Equal(t, "answer42", name)
	assert.True(t, more)

	name, more = pull()
	assert.Equal(t, "answer42_2", name)
	assert.True(t, more)

	name, more = pull()
	assert.Equal(t, "answer42_3", name)
	assert.True(t, more)
}

func TestNSReserve(t *testing.T) {
	ns := NewNS("fmt")
	assert.False(t, ns.Reserve("fmt"))
	assert.True(t, ns.Reserve("strconv"))
	assert.True(t, ns.Has("strconv"))
}

func TestNSName(t *testing.T) {
	ns := NewNS("value")
	assert.Equal(t, "value2", ns.Name("value"))
	assert.Equal(t, "value3", ns.Name("value"))
	assert.Equal(t, "baseValue", ns.Name("base value"))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Uint8", Title("uint8"))
	assert.Equal(t, "Int64", Title("int64"))
	assert.Equal(t, "Uintptr", Title("uintptr"))
}
