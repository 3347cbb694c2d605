package servers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steviee/mc-locate/internal/config"
)

func TestOutputListTable(t *testing.T) {
	srvs := []config.Server{
		{Name: "Alpha", Address: "a.example.org"},
		{Name: "A much longer name", Address: "b.example.org:25566"},
	}

	var buf bytes.Buffer
	err := outputListTable(&buf, srvs, false)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[0], "ADDRESS")
	assert.Contains(t, lines[1], "Alpha")
	assert.Contains(t, lines[1], "a.example.org")
	assert.Contains(t, lines[2], "A much longer name")

	// Columns align on the longest name.
	assert.Equal(t, strings.Index(lines[1], "a.example.org"), strings.Index(lines[2], "b.example.org:25566"))
}

func TestOutputListTable_NoHeader(t *testing.T) {
	srvs := []config.Server{
		{Name: "Alpha", Address: "a.example.org"},
	}

	var buf bytes.Buffer
	err := outputListTable(&buf, srvs, true)
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "NAME")
	assert.Contains(t, buf.String(), "Alpha")
}

func TestNewCommand(t *testing.T) {
	cmd := NewCommand()

	assert.Equal(t, "servers", cmd.Use)

	names := make([]string, 0)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "list")
	assert.Contains(t, names, "check")
}
