package slideshow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func activeCount(st State) int {
	n := 0
	for _, s := range st.Slides {
		if s.Active {
			n++
		}
	}
	return n
}

func TestNextPrevious(t *testing.T) {
	s := New([]string{"a.jpg", "b.jpg", "c.jpg"}, zap.NewNop())

	assert.Equal(t, 0, s.State().Current)
	assert.Equal(t, 1, s.Next().Current)
	assert.Equal(t, 2, s.Next().Current)
	assert.Equal(t, 0, s.Next().Current, "wraps forward")
	assert.Equal(t, 2, s.Previous().Current, "wraps backward")

	st := s.State()
	assert.Equal(t, 1, activeCount(st))
	assert.True(t, st.Slides[2].Active)
}

func TestFullCycleReturnsToStart(t *testing.T) {
	for count := 2; count <= 7; count++ {
		images := make([]string, count)
		for i := range images {
			images[i] = "img"
		}
		s := New(images, nil)

		for start := 0; start < count; start++ {
			s.Show(start)
			for i := 0; i < count; i++ {
				st := s.Next()
				require.Equal(t, 1, activeCount(st))
			}
			assert.Equal(t, start, s.State().Current)

			for i := 0; i < count; i++ {
				s.Previous()
			}
			assert.Equal(t, start, s.State().Current)
		}
	}
}

func TestShowClamps(t *testing.T) {
	s := New([]string{"a", "b", "c"}, nil)
	assert.Equal(t, 1, s.Show(4).Current)
	assert.Equal(t, 2, s.Show(-1).Current)
}

func TestEmpty(t *testing.T) {
	s := New(nil, nil)
	assert.Equal(t, 0, s.Next().Current)
	assert.Equal(t, 0, s.Previous().Current)
	assert.Empty(t, s.State().Slides)
}

func TestRun(t *testing.T) {
	s := New([]string{"a", "b"}, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return s.State().Current == 1 }, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestRunDisabled(t *testing.T) {
	s := New([]string{"a"}, nil)
	// returns immediately without a positive interval
	s.Run(context.Background(), 0)
	assert.Equal(t, 0, s.State().Current)
}
