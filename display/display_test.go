package display

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/chriso345/gore/assert"
)

func TestHelp_TrimsAndTerminatesWithNewline(t *testing.T) {
	var buf bytes.Buffer
	Help(&buf, "\nUsage: tool...\n")
	assert.Equal(t, buf.String(), "Usage: tool...\n")
}

func TestVersion(t *testing.T) {
	var buf bytes.Buffer
	Version(&buf, "1.2.3")
	assert.Equal(t, buf.String(), "1.2.3\n")
}

func TestError_PrefixesAndTerminatesMessage(t *testing.T) {
	var buf bytes.Buffer
	Error(&buf, fmt.Errorf("--foo is not a recognised option"))
	assert.StringContains(t, buf.String(), "Error:")
	assert.StringContains(t, buf.String(), "--foo is not a recognised option.")
}
