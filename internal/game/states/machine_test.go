package states

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/DevastatingSlash/internal/game/events"
)

func TestStateMachineLifecycle(t *testing.T) {
	bus := events.NewEventBusWithLogger(zerolog.Nop())
	var published []*events.PhaseChangedEvent
	bus.SubscribeFunc(events.TypePhaseChanged, func(e events.Event) {
		published = append(published, e.(*events.PhaseChangedEvent))
	})

	sm := NewStateMachine("game-1", bus, zerolog.Nop())
	assert.Equal(t, PhaseInitializing, sm.CurrentPhase())

	require.NoError(t, sm.TransitionTo(PhaseRunning, "setup complete"))
	require.NoError(t, sm.TransitionTo(PhasePaused, "pause"))
	require.NoError(t, sm.TransitionTo(PhaseRunning, "resume"))
	require.NoError(t, sm.TransitionTo(PhaseEnded, "closed"))
	assert.Equal(t, PhaseEnded, sm.CurrentPhase())

	history := sm.GetHistory()
	require.Len(t, history, 4)
	assert.Equal(t, PhaseInitializing, history[0].From)
	assert.Equal(t, PhaseRunning, history[0].To)
	assert.Equal(t, "closed", history[3].Reason)
	assert.False(t, history[3].Timestamp.IsZero())

	require.Len(t, published, 4)
	assert.Equal(t, "Running", published[1].From)
	assert.Equal(t, "Paused", published[1].To)
	assert.Equal(t, "game-1", published[1].GameID())
}

func TestStateMachineRejectsInvalidTransition(t *testing.T) {
	sm := NewStateMachine("game-1", nil, zerolog.Nop())

	err := sm.TransitionTo(PhasePaused, "too early")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, PhaseInitializing, sm.CurrentPhase())
	assert.Empty(t, sm.GetHistory())

	assert.True(t, sm.CanTransitionTo(PhaseRunning))
	assert.False(t, sm.CanTransitionTo(PhasePaused))
}

func TestStateMachineHistoryIsBounded(t *testing.T) {
	sm := NewStateMachine("game-1", nil, zerolog.Nop())
	sm.maxHistorySize = 3

	require.NoError(t, sm.TransitionTo(PhaseRunning, "start"))
	for i := 0; i < 5; i++ {
		require.NoError(t, sm.TransitionTo(PhasePaused, "pause"))
		require.NoError(t, sm.TransitionTo(PhaseRunning, "resume"))
	}

	history := sm.GetHistory()
	require.Len(t, history, 3)
	assert.Equal(t, PhaseRunning, history[2].To)
}

func TestStateMachineHistoryIsACopy(t *testing.T) {
	sm := NewStateMachine("game-1", nil, zerolog.Nop())
	require.NoError(t, sm.TransitionTo(PhaseRunning, "start"))

	history := sm.GetHistory()
	history[0].Reason = "mutated"

	assert.Equal(t, "start", sm.GetHistory()[0].Reason)
}
