package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlural(t *testing.T) {
	assert.Equal(t, "0 artifacts", Plural(0, "artifact"))
	assert.Equal(t, "1 artifact", Plural(1, "artifact"))
	assert.Equal(t, "3 artifacts", Plural(3, "artifact"))
}

func TestGetSize(t *testing.T) {
	assert.NotEmpty(t, GetSize(500000))
	assert.Contains(t, GetSize(2048), "KB")
}
