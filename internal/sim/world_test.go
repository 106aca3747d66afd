package sim

import (
	"errors"
	"image/color"
	"testing"

	"github.com/olivierh59500/tube-walk-go/internal/tube"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	blue = color.RGBA{0x48, 0xb2, 0xe8, 0xff}
	red  = color.RGBA{0xff, 0x00, 0x00, 0xff}
)

type recorder struct {
	frames [][]byte
	err    error
}

func (r *recorder) Present(pix []byte) error {
	if r.err != nil {
		return r.err
	}
	r.frames = append(r.frames, append([]byte(nil), pix...))
	return nil
}

func still(col color.RGBA, at tube.Point) *tube.Tube {
	return tube.New(tube.Config{Speed: 0.1, Direction: tube.East, Start: at, Colour: col}, 100, 100, nil)
}

func TestEndToEndSingleTube(t *testing.T) {
	tb := tube.New(tube.Config{Speed: 0.7, Direction: tube.East, Start: tube.Pt(0, 0), Colour: blue}, 100, 100, nil)
	w := New(100, 100, tb)

	w.Step()
	assert.InDelta(t, 0.7, tb.Position().X, 1e-9)
	assert.Equal(t, tube.Pt(0, 0), tb.LastPosition())

	rec := &recorder{}
	require.NoError(t, w.Frame(rec))
	require.Len(t, rec.frames, 1)
	assert.Equal(t, []byte{0x48, 0xb2, 0xe8, 0xff}, rec.frames[0][:4])
	assert.Len(t, rec.frames[0], 100*100*4)
}

func TestLaterTubeWins(t *testing.T) {
	w := New(100, 100, still(blue, tube.Pt(10.2, 10.2)), still(red, tube.Pt(10.7, 10.9)))
	w.Render()
	assert.Equal(t, red, w.Canvas().At(10, 10))
}

func TestRenderKeepsTrails(t *testing.T) {
	tb := tube.New(tube.Config{Speed: 1, Direction: tube.South, Start: tube.Pt(5, 5), Colour: blue}, 100, 100, nil)
	w := New(100, 100, tb)
	for i := 0; i < 3; i++ {
		w.Render()
		w.Step()
	}
	w.Render()
	for y := 5; y <= 8; y++ {
		assert.Equal(t, blue, w.Canvas().At(5, y), "y=%d", y)
	}
}

func TestPauseStopsStep(t *testing.T) {
	tb := still(blue, tube.Pt(5, 5))
	w := New(100, 100, tb)

	w.TogglePause()
	require.True(t, w.Paused())
	w.Step()
	assert.Equal(t, tube.Pt(5, 5), tb.Position())
	assert.Equal(t, 0, w.Ticks())

	w.TogglePause()
	w.Step()
	assert.Equal(t, 1, w.Ticks())
	assert.NotEqual(t, tube.Pt(5, 5), tb.Position())
}

func TestClearRestoresBackground(t *testing.T) {
	bg := color.RGBA{0x10, 0x10, 0x10, 0xff}
	w := New(10, 10, still(blue, tube.Pt(1, 1)))
	w.SetBackground(bg)
	assert.Equal(t, bg, w.Canvas().At(9, 9))

	w.Render()
	require.Equal(t, blue, w.Canvas().At(1, 1))
	w.Clear()
	assert.Equal(t, bg, w.Canvas().At(1, 1))
}

func TestFrameWrapsPresentError(t *testing.T) {
	boom := errors.New("boom")
	w := New(10, 10)
	err := w.Frame(&recorder{err: boom})
	assert.ErrorIs(t, err, ErrPresent)
	assert.ErrorIs(t, err, boom)
}

func TestDefaultLineUp(t *testing.T) {
	w := Default(100, 100, 1)
	tubes := w.Tubes()
	require.Len(t, tubes, 5)

	first := tubes[0]
	assert.Equal(t, 0.7, first.Speed())
	assert.Equal(t, tube.East, first.Direction())
	assert.Equal(t, tube.Pt(0, 0), first.Position())
	assert.Equal(t, 0.06, first.TurnChance())
	assert.Equal(t, blue, first.Colour())

	for i, tb := range tubes {
		assert.Greater(t, tb.Speed(), 0.0, "tube %d", i)
		assert.Less(t, tb.Speed(), 1.0, "tube %d moves under a pixel per tick", i)
	}

	again := Default(100, 100, 1)
	for i := range tubes {
		assert.Equal(t, tubes[i].Colour(), again.Tubes()[i].Colour())
	}

	width, height := w.Size()
	assert.Equal(t, 100, width)
	assert.Equal(t, 100, height)
}

func TestDefaultRunsBounded(t *testing.T) {
	w := Default(100, 100, 3)
	for i := 0; i < 20000; i++ {
		w.Step()
	}
	// Correction only flips heading, so a tube may overshoot by about a step
	for i, tb := range w.Tubes() {
		p := tb.Position()
		assert.True(t, p.X > -2 && p.X < 102 && p.Y > -2 && p.Y < 102, "tube %d escaped to %v", i, p)
	}
	assert.NotPanics(t, func() { w.Render() })
}
