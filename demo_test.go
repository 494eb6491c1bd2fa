package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aarrwnh/intvec/vector"
)

func TestDemo(t *testing.T) {
	var out bytes.Buffer
	v := vector.New()
	require.NoError(t, demo(&out, v, vector.NewSource(5)))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	for i, label := range []string{
		"Initial vector: [",
		"After Insert: [",
		"After RemoveAt: [",
		"After Reverse: [",
		"After SortAsc: [",
	} {
		assert.True(t, strings.HasPrefix(lines[i], label), lines[i])
	}
	assert.Contains(t, lines[1], "42")
	assert.Equal(t, 5, v.Len())

	vals := v.Values()
	for i := 1; i < len(vals); i++ {
		assert.LessOrEqual(t, vals[i-1], vals[i])
	}
	assert.Equal(t, "After SortAsc: "+v.String(), lines[4])
}

func TestDemoReproducible(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, demo(&a, vector.New(), vector.NewSource(11)))
	require.NoError(t, demo(&b, vector.New(), vector.NewSource(11)))
	assert.Equal(t, a.String(), b.String())
}
