package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestPresenceWithoutRedisIsNoop(t *testing.T) {
	p := NewPresence(nil, time.Minute, zerolog.Nop())
	require.False(t, p.Enabled())

	// Must not panic or block.
	p.Touch(context.Background(), "AA:BB:CC:DD:EE:FF")

	macs, err := p.Online(context.Background())
	require.NoError(t, err)
	require.Nil(t, macs)
}
