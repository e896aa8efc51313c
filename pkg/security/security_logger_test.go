package security_test

import (
	"context"
	"errors"
	"testing"

	"portfolio-site/pkg/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "j***@example.com", security.MaskEmail("john@example.com"))
	assert.Equal(t, "***@example.com", security.MaskEmail("j@example.com"))
	assert.Equal(t, "***", security.MaskEmail("ab"))
	assert.Equal(t, "***ad", security.MaskEmail("bad"))
}

func TestHashValueIsStable(t *testing.T) {
	assert.Equal(t, security.HashValue("abc"), security.HashValue("abc"))
	assert.Len(t, security.HashValue("abc"), 16)
}

func TestContactEventsLevelsAndMasking(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sl := security.NewSecurityLogger(zap.New(core), "portfolio-site", "test")
	ctx := context.Background()

	sl.LogContactSubmitted(ctx, "ada@example.com")
	sl.LogContactDispatchFailed(ctx, "ada@example.com", errors.New("status 500"))

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "contact_submitted", entries[0].Message)
	assert.Equal(t, "a***@example.com", entries[0].ContextMap()["subject_value"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Contains(t, entries[1].ContextMap()["details"], "status 500")
	assert.NotContains(t, entries[1].ContextMap()["subject_value"], "ada@")
}
