package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetLogLevel(t *testing.T) {
	setLogLevel("debug")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	setLogLevel("ERROR")
	assert.Equal(t, zerolog.ErrorLevel, zerolog.GlobalLevel())
}

func TestSetLogLevel_Invalid(t *testing.T) {
	assert.Panics(t, func() {
		setLogLevel("verbose")
	})
}

func TestInitLogger(t *testing.T) {
	InitLogger("phenoai-sdk-test", "INFO")
	assert.True(t, initialized)

	// a second call is a no-op
	InitLogger("phenoai-sdk-test", "INFO")
}
