package entity

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAtlas(w, h int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func TestNewSprite(t *testing.T) {
	t.Run("derives cell aspect", func(t *testing.T) {
		// 2 columns x 4 rows of 32x48 cells
		s, err := NewSprite(newAtlas(64, 192), 100, 2, 4, 100)
		require.NoError(t, err)
		assert.InDelta(t, 1.5, s.Aspect(), 1e-9)
		assert.Equal(t, Rect{X: 10, Y: 20, Width: 100, Height: 150}, s.Bounds(Position{10, 20}))
	})

	t.Run("nil image keeps square aspect", func(t *testing.T) {
		s, err := NewSprite(nil, 50, 3, 2, 0)
		require.NoError(t, err)
		assert.Equal(t, 1.0, s.Aspect())
	})

	t.Run("rejects invalid config", func(t *testing.T) {
		_, err := NewSprite(nil, 0, 1, 1, 0)
		assert.ErrorIs(t, err, ErrInvalidSize)

		_, err = NewSprite(nil, 10, 0, 1, 0)
		assert.ErrorIs(t, err, ErrInvalidAtlas)

		_, err = NewSprite(nil, 10, 1, -1, 0)
		assert.ErrorIs(t, err, ErrInvalidAtlas)
	})
}

func TestSprite_Advance(t *testing.T) {
	s, err := NewSprite(newAtlas(90, 30), 10, 3, 1, 100)
	require.NoError(t, err)

	s.Advance(60)
	col, _ := s.Quad()
	assert.Equal(t, 0, col)
	assert.Equal(t, 60.0, s.Atlas().FrameTimer)

	s.Advance(40)
	col, _ = s.Quad()
	assert.Equal(t, 1, col)
	assert.Equal(t, 0.0, s.Atlas().FrameTimer, "timer resets on frame step")

	s.Advance(100)
	s.Advance(100)
	col, _ = s.Quad()
	assert.Equal(t, 0, col, "column wraps past the last frame")
}

func TestSprite_AdvanceTimerInvariant(t *testing.T) {
	s, err := NewSprite(nil, 10, 2, 4, 50)
	require.NoError(t, err)

	for _, dt := range []float64{16, 17, 16, 80, 0, 3, 49, 1} {
		s.AdvanceRow(dt, 2)
		a := s.Atlas()
		assert.GreaterOrEqual(t, a.FrameTimer, 0.0)
		assert.Less(t, a.FrameTimer, a.Period)
		assert.GreaterOrEqual(t, a.Col, 0)
		assert.Less(t, a.Col, a.Columns)
		assert.Equal(t, 2, a.Row)
	}
}

func TestSprite_StaticNeverAdvances(t *testing.T) {
	s, err := NewSprite(nil, 10, 4, 1, 0)
	require.NoError(t, err)

	s.Advance(1000)
	col, _ := s.Quad()
	assert.Equal(t, 0, col)
	assert.Equal(t, 0.0, s.Atlas().FrameTimer)
}

func TestSprite_SetQuadAndReset(t *testing.T) {
	s, err := NewSprite(nil, 10, 3, 2, 100)
	require.NoError(t, err)

	require.NoError(t, s.SetQuad(2, 1))
	col, row := s.Quad()
	assert.Equal(t, 2, col)
	assert.Equal(t, 1, row)

	err = s.SetQuad(3, 0)
	assert.ErrorIs(t, err, ErrQuadOutOfRange)
	col, row = s.Quad()
	assert.Equal(t, 2, col, "failed SetQuad leaves state")
	assert.Equal(t, 1, row)

	s.Reset()
	col, row = s.Quad()
	assert.Equal(t, 0, col)
	assert.Equal(t, 1, row, "reset keeps the row")
}

func TestSprite_Render(t *testing.T) {
	img := newAtlas(60, 40) // 3x2 cells of 20x20
	s, err := NewSprite(img, 80, 3, 2, 0)
	require.NoError(t, err)
	require.NoError(t, s.SetQuad(1, 1))

	surface := NewRecordingSurface()
	s.Render(surface, Position{5, 7})

	require.Len(t, surface.Calls, 1)
	call := surface.Calls[0]
	assert.Equal(t, OpImage, call.Op)
	assert.Equal(t, image.Rect(20, 20, 40, 40), call.Src)
	assert.Equal(t, Rect{X: 5, Y: 7, Width: 80, Height: 80}, call.Dst)
	assert.Equal(t, 1.0, call.Alpha)
}

func TestSprite_RenderSkipsMissingImage(t *testing.T) {
	s, err := NewSprite(nil, 80, 3, 2, 0)
	require.NoError(t, err)

	surface := NewRecordingSurface()
	s.Render(surface, Position{})
	assert.Empty(t, surface.Calls)
}

func TestSprite_SetSize(t *testing.T) {
	img := newAtlas(20, 40)
	s, err := NewSprite(img, 10, 1, 1, 0)
	require.NoError(t, err)

	require.NoError(t, s.SetSize(30))
	assert.Equal(t, Rect{Width: 30, Height: 60}, s.Bounds(Position{}))
	assert.Same(t, img, s.Image(), "atlas untouched")

	assert.ErrorIs(t, s.SetSize(-1), ErrInvalidSize)
	assert.Equal(t, 30.0, s.Size())
}

func TestSprite_SetQuadClampsInternally(t *testing.T) {
	s, err := NewSprite(nil, 10, 3, 2, 0)
	require.NoError(t, err)

	tests := []struct {
		col, row         int
		wantCol, wantRow int
	}{
		{1, 1, 1, 1},
		{5, 0, 2, 0},
		{-1, 9, 0, 1},
	}
	for _, tt := range tests {
		s.setQuad(tt.col, tt.row)
		col, row := s.Quad()
		assert.Equal(t, tt.wantCol, col)
		assert.Equal(t, tt.wantRow, row)
	}
}
