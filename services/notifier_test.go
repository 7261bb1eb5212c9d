package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNotifierShowAndAutoDismiss(t *testing.T) {
	n := NewNotifier()

	n.Show(NotificationSuccess, "Sukces", "Zapisano", 50*time.Millisecond)

	current := n.Current()
	require.True(t, current.Visible)
	require.Equal(t, NotificationSuccess, current.Type)
	require.Equal(t, "Zapisano", current.Message)

	require.Eventually(t, func() bool {
		return !n.Current().Visible
	}, time.Second, 10*time.Millisecond)
}

func TestNotifierShowReplacesMessageAndResetsTimer(t *testing.T) {
	n := NewNotifier()

	n.Show(NotificationError, "Blad", "pierwsza", 60*time.Millisecond)
	time.Sleep(40 * time.Millisecond)
	n.Show(NotificationSuccess, "Sukces", "druga", 60*time.Millisecond)

	// Past the first timer's deadline; the second Show restarted the clock.
	time.Sleep(40 * time.Millisecond)
	current := n.Current()
	require.True(t, current.Visible)
	require.Equal(t, "druga", current.Message)

	require.Eventually(t, func() bool {
		return !n.Current().Visible
	}, time.Second, 10*time.Millisecond)
}

func TestNotifierClose(t *testing.T) {
	n := NewNotifier()

	n.Show(NotificationError, "Blad", "cos poszlo nie tak", time.Minute)
	n.Close()

	current := n.Current()
	require.False(t, current.Visible)
	require.Empty(t, current.Message)
}

func TestNotifierEmptyByDefault(t *testing.T) {
	n := NewNotifier()
	require.False(t, n.Current().Visible)
}
