package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stoopc/style"
)

func TestIsUtility(t *testing.T) {
	assert.True(t, IsUtility("mx"))
	assert.True(t, IsUtility("w"))
	assert.False(t, IsUtility("color"))
	assert.False(t, IsUtility("margin"))
}

func TestExpandSingleProperty(t *testing.T) {
	v := style.Static("16px")
	out := Expand("mb", v)
	assert.Equal(t, map[string]style.Value{"marginBottom": v}, out)
}

func TestExpandAxisShorthand(t *testing.T) {
	v := style.Static("8px")
	out := Expand("mx", v)
	assert.Equal(t, v, out["marginLeft"])
	assert.Equal(t, v, out["marginRight"])
	assert.Len(t, out, 2)
}
