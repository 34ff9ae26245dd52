package tlsfdebug

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNilLoggerIsSilent(t *testing.T) {
	var l *Logger
	leave := l.Enter("Allocate", "size=%d", 64)
	leave()
	l.Event("Split", "off=%d", 0)
	require.Nil(t, l.History())
}

func TestHistoryWrapsAtCapacity(t *testing.T) {
	l := New(nil, 3)
	for i := 0; i < 5; i++ {
		l.Event("Allocate", "n=%d", i)
	}
	hist := l.History()
	require.Len(t, hist, 3)
	require.Equal(t, "n=2", hist[0].Detail)
	require.Equal(t, "n=3", hist[1].Detail)
	require.Equal(t, "n=4", hist[2].Detail)
}

func TestHistoryBeforeFull(t *testing.T) {
	l := New(nil, 10)
	l.Event("Allocate", "n=1")
	l.Event("Allocate", "n=2")
	hist := l.History()
	require.Len(t, hist, 2)
}

func TestEnterTracksDepth(t *testing.T) {
	l := New(nil, 4)
	leave := l.Enter("Allocate", "size=%d", 64)
	l.Event("Split", "")
	leave()

	hist := l.History()
	require.Len(t, hist, 2)
	require.Equal(t, 0, hist[0].Depth)
	require.Equal(t, 1, hist[1].Depth)
}
