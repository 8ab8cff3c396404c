package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigHelpers(t *testing.T) {
	t.Setenv("LM_TEST_STRING", "  value ")
	t.Setenv("LM_TEST_BOOL", "true")
	t.Setenv("LM_TEST_INT", "42")
	t.Setenv("LM_TEST_BAD_INT", "abc")

	assert.Equal(t, "value", Config("LM_TEST_STRING"))
	assert.Equal(t, "fallback", ConfigOr("LM_TEST_MISSING", "fallback"))
	assert.Equal(t, "value", ConfigOr("LM_TEST_STRING", "fallback"))
	assert.True(t, Bool("LM_TEST_BOOL"))
	assert.False(t, Bool("LM_TEST_MISSING"))
	assert.Equal(t, 42, Int("LM_TEST_INT", 7))
	assert.Equal(t, 7, Int("LM_TEST_BAD_INT", 7))
}
