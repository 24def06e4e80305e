package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type pair struct {
	X, Y float64
}

func TestName(t *testing.T) {
	Reset()

	a := Name(pair{1, 2})
	assert.NotEmpty(t, a)
	assert.Equal(t, a, Name(pair{1, 2}), "same value gets the same name")
	assert.Equal(t, "Ø", Name(nil))

	Reset()
	assert.NotEmpty(t, Name(pair{1, 2}))
}
