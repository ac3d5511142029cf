package main

import (
	"bytes"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsage_ExplainsBlankWindow(t *testing.T) {
	var out bytes.Buffer
	fs := flag.NewFlagSet("lightassist", flag.ContinueOnError)
	fs.SetOutput(&out)
	fs.String("scene", "", "YAML scene file")

	usage(fs)

	assert.Contains(t, out.String(), "Usage of lightassist:")
	assert.Contains(t, out.String(), "-scene")
	assert.Contains(t, out.String(), "not drawn here")
	assert.Contains(t, out.String(), "F1 light assistant")
}
