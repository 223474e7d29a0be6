package evlog_test

import (
	"testing"

	"github.com/lazyeval-go/lazyeval/shared/evlog"
	"github.com/lazyeval-go/lazyeval/thunk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDisabledByDefault(t *testing.T) {
	assert.False(t, evlog.Enabled())
}

func TestUseNilRestoresNop(t *testing.T) {
	core, _ := observer.New(zap.DebugLevel)
	evlog.Use(zap.New(core))
	assert.True(t, evlog.Enabled())

	evlog.Use(nil)
	assert.False(t, evlog.Enabled())
}

func TestEvaluatedEventObserved(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	evlog.Use(zap.New(core))
	defer evlog.Use(nil)

	force := thunk.Memoize(func() int { return 1 })
	force()
	force()

	events := logs.FilterMessage("computation evaluated").All()
	require.Len(t, events, 1)
	assert.Equal(t, "thunk", events[0].ContextMap()["kind"])
}

func TestNewIDUnique(t *testing.T) {
	assert.NotEqual(t, evlog.NewID(), evlog.NewID())
}
