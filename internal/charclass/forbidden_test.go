package charclass_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nazm-lang/nazmc/internal/charclass"
)

func TestIs(t *testing.T) {
	assert.True(t, charclass.Is(0x03EE))
	assert.True(t, charclass.Is(0xABCD), "falls in the 0xAB70-0xFAFF range")
	assert.True(t, charclass.Is(0x2624))
	assert.False(t, charclass.Is('a'))
	assert.False(t, charclass.Is('س'))
	assert.False(t, charclass.Is(0x0600), "Arabic block itself must stay permitted")
}
