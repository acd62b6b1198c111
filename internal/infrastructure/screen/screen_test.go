package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/isoroom/internal/domain/entity"
)

var _ entity.Surface = (*Screen)(nil)

func TestMeasureText(t *testing.T) {
	s, err := New(14)
	require.NoError(t, err)

	w, h := s.MeasureText("open the cabinet")
	assert.Positive(t, w)
	assert.Greater(t, h, 10.0)
	assert.Less(t, h, 24.0)

	wide, _ := s.MeasureText("open the cabinet, then close it")
	assert.Greater(t, wide, w)

	empty, _ := s.MeasureText("")
	assert.Zero(t, empty)
}
