package tui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fwojciec/docsearch/tui"
	"github.com/stretchr/testify/assert"
)

func TestIsTTY(t *testing.T) {
	t.Parallel()

	assert.False(t, tui.IsTTY(&bytes.Buffer{}))
	assert.False(t, tui.IsTTY(strings.NewReader("")))
	assert.False(t, tui.Interactive(strings.NewReader(""), &bytes.Buffer{}))
}

func TestDetectNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.True(t, tui.DetectNoColor())
}
