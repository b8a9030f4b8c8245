package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplExpandsExpressions(t *testing.T) {
	in := strings.NewReader("(S1 + S2) | S3\n")
	var out bytes.Buffer

	Start(in, &out)

	output := out.String()
	assert.Contains(t, output, PROMPT)
	assert.Contains(t, output, "S1 + S2\n")
	assert.Contains(t, output, "S3\n")
	assert.Contains(t, output, "2 structure(s)")
}

func TestReplReportsErrors(t *testing.T) {
	in := strings.NewReader("(A + B\n")
	var out bytes.Buffer

	Start(in, &out)

	assert.Contains(t, out.String(), "expected ')' to close group")
}

func TestReplSkipsBlankLines(t *testing.T) {
	in := strings.NewReader("\n   \nA\n")
	var out bytes.Buffer

	Start(in, &out)

	output := out.String()
	assert.Contains(t, output, "1 structure(s)")
	assert.NotContains(t, output, "error")
}

func TestReplStopsAtEOF(t *testing.T) {
	var out bytes.Buffer

	Start(strings.NewReader(""), &out)

	assert.Equal(t, PROMPT, out.String())
}
