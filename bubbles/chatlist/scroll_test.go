package chatlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAtBottom(t *testing.T) {
	tests := []struct {
		name string
		g    Geometry
		want bool
	}{
		{"exact bottom", Geometry{1000, 500, 500}, true},
		{"within tolerance", Geometry{1000, 500, 451}, true},
		{"at tolerance", Geometry{1000, 500, 450}, false},
		{"scrolled up", Geometry{1000, 500, 400}, false},
		{"top", Geometry{1000, 500, 0}, false},
		{"overscroll", Geometry{1000, 500, 520}, true},
		{"fits", Geometry{500, 500, 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AtBottom(tt.g, DefaultTolerance))
		})
	}
}

func TestTracker_SuspendAndResume(t *testing.T) {
	var tr Tracker
	assert.False(t, tr.Away(), "starts at the bottom")

	assert.False(t, tr.Track(Geometry{1000, 500, 500}))
	assert.True(t, tr.Track(Geometry{1000, 500, 400}))
	assert.True(t, tr.Away())

	// Doesn't resume on its own, only when back within tolerance
	assert.True(t, tr.Track(Geometry{1000, 500, 420}))
	assert.False(t, tr.Track(Geometry{1000, 500, 480}))
	assert.False(t, tr.Away())
}

func TestTracker_RowTolerance(t *testing.T) {
	tr := Tracker{Tolerance: DefaultRowTolerance}
	assert.False(t, tr.Track(Geometry{40, 10, 30}))
	assert.True(t, tr.Track(Geometry{40, 10, 29}))
}
