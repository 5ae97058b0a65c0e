package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKVDefaults(t *testing.T) {
	input, lang := ParseKV("")
	assert.Equal(t, "", input)
	assert.Equal(t, "python", lang)
}

func TestParseKVParsesBothKeys(t *testing.T) {
	input, lang := ParseKV("input=build a login page;language=go")
	assert.Equal(t, "build a login page", input)
	assert.Equal(t, "go", lang)
}

func TestParseKVIgnoresUnknownKeys(t *testing.T) {
	input, lang := ParseKV("input=x;color=blue;language=rust")
	assert.Equal(t, "x", input)
	assert.Equal(t, "rust", lang)
}

func TestParseKVEmptyLanguageFallsBackToDefault(t *testing.T) {
	_, lang := ParseKV("input=x;language=")
	assert.Equal(t, "python", lang)
}

func TestBuildKVParseKVRoundTrip(t *testing.T) {
	payload := BuildKV("do the thing", "go")
	input, lang := ParseKV(payload)
	assert.Equal(t, "do the thing", input)
	assert.Equal(t, "go", lang)
}
