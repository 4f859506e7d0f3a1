package ui

import (
	"testing"

	"mouse-droppings/internal/droppings"
	"mouse-droppings/internal/event"

	"github.com/stretchr/testify/require"
)

func TestOverlay_FollowsToggleEvents(t *testing.T) {
	t.Parallel()

	o := NewOverlay()
	require.False(t, o.Visible)

	o.OnEvent(event.Event{Type: event.OverlayToggled, Data: true})
	require.True(t, o.Visible)

	o.OnEvent(event.Event{Type: event.PointerExited})
	require.True(t, o.Visible)

	o.OnEvent(event.Event{Type: event.OverlayToggled, Data: "yes"})
	require.True(t, o.Visible)

	o.OnEvent(event.Event{Type: event.OverlayToggled, Data: false})
	require.False(t, o.Visible)
}

func TestOverlay_Lines(t *testing.T) {
	t.Parallel()

	o := NewOverlay()
	require.Equal(t, []string{"droppings: 3", "cursor: 12,40"}, o.Lines(3, droppings.Point{X: 12, Y: 40}, true))
	require.Equal(t, []string{"droppings: 0", "cursor: outside"}, o.Lines(0, droppings.Point{X: -1, Y: 5}, false))
}
