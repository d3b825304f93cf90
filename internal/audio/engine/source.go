package engine

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"

	"github.com/zjrosen/valentine/internal/audio"
)

// source is a track's audio: the seekable stream at its native rate plus the
// stream actually mixed (looped and resampled as needed).
type source struct {
	seeker beep.StreamSeeker
	stream beep.Streamer
	closer io.Closer
}

func (s *source) rewind() error {
	if err := s.seeker.Seek(0); err != nil {
		return fmt.Errorf("rewinding: %w", err)
	}
	return nil
}

// openFile decodes an .mp3 or .wav file.
func openFile(path string, sr beep.SampleRate, loop bool) (*source, error) {
	f, err := os.Open(filepath.Clean(path)) //nolint:gosec // G304: user-configured track file
	if err != nil {
		return nil, fmt.Errorf("opening audio file: %w", err)
	}

	var (
		decoded beep.StreamSeekCloser
		format  beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		decoded, format, err = mp3.Decode(f)
	case ".wav":
		decoded, format, err = wav.Decode(f)
	default:
		_ = f.Close()
		return nil, fmt.Errorf("unsupported audio format %q", ext)
	}
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	var stream beep.Streamer = decoded
	if loop {
		stream = beep.Loop(-1, decoded)
	}
	if format.SampleRate != sr {
		stream = beep.Resample(4, format.SampleRate, sr, stream)
	}
	return &source{seeker: decoded, stream: stream, closer: decoded}, nil
}

// generatedSource returns the built-in music for a track.
func generatedSource(name audio.Track, sr beep.SampleRate, loop bool) *source {
	var gen beep.StreamSeeker
	switch name {
	case audio.TrackBloom:
		gen = NewMusicBoxGenerator(sr)
	default:
		gen = NewPadGenerator(sr)
	}
	var stream beep.Streamer = gen
	if loop {
		stream = beep.Loop(-1, gen)
	}
	return &source{seeker: gen, stream: stream}
}
