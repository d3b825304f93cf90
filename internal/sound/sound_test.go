package sound

import (
	"errors"
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/valentine/internal/audio"
)

type recordingOutput struct {
	played  []int
	formats []beep.Format
	err     error
}

func (r *recordingOutput) PlayOnce(s beep.Streamer, format beep.Format) error {
	if r.err != nil {
		return r.err
	}
	buf := make([][2]float64, 1024)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	r.played = append(r.played, total)
	r.formats = append(r.formats, format)
	return nil
}

func TestEmbeddedSoundsDecode(t *testing.T) {
	fx, err := New(nil, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"chime", "pluck"}, fx.Names())
}

func TestPlay_StreamsWholeBuffer(t *testing.T) {
	out := &recordingOutput{}
	fx, err := New(out, true)
	require.NoError(t, err)

	require.NoError(t, fx.Play("pluck"))
	require.NoError(t, fx.Play("pluck"))

	require.Len(t, out.played, 2)
	assert.Greater(t, out.played[0], 0)
	assert.Equal(t, out.played[0], out.played[1], "each play starts from the beginning")
	assert.Equal(t, beep.SampleRate(22050), out.formats[0].SampleRate)
}

func TestPlay_UnknownSound(t *testing.T) {
	fx, err := New(&recordingOutput{}, true)
	require.NoError(t, err)
	assert.ErrorIs(t, fx.Play("kazoo"), ErrUnknownSound)
}

func TestPlay_DisabledIsNoop(t *testing.T) {
	out := &recordingOutput{}
	fx, err := New(out, false)
	require.NoError(t, err)

	assert.False(t, fx.Enabled())
	require.NoError(t, fx.Play("chime"))
	assert.Empty(t, out.played)

	fx.SetEnabled(true)
	require.NoError(t, fx.Play("chime"))
	assert.Len(t, out.played, 1)
}

func TestPlay_SilentOutputSwallowed(t *testing.T) {
	fx, err := New(&recordingOutput{err: audio.ErrSilent}, true)
	require.NoError(t, err)
	assert.NoError(t, fx.Play("chime"))
}

func TestPlay_OutputErrorReturned(t *testing.T) {
	boom := errors.New("mixer gone")
	fx, err := New(&recordingOutput{err: boom}, true)
	require.NoError(t, err)
	assert.ErrorIs(t, fx.Play("pluck"), boom)
}
