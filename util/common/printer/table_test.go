package printer

import (
	"bytes"
	"testing"

	"github.com/harness/github-deploy/internal/style"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintTable_Plain(t *testing.T) {
	style.Init(false)
	defer style.Init(true)

	var buf bytes.Buffer
	require.NoError(t, PrintTable(&buf, []string{"ID", "File"}, [][]string{{"7", "widget-1.0.jar"}}))
	assert.Contains(t, buf.String(), "widget-1.0.jar")
	assert.Contains(t, buf.String(), "File")
}

func TestPrintTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintTable(&buf, []string{"ID"}, nil))
	assert.Empty(t, buf.String())
}

func TestPrintJson(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintJson(&buf, map[string]int{"count": 2}))
	assert.JSONEq(t, `{"count":2}`, buf.String())
}
