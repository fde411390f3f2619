//go:build !ci

package sound

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"

	"github.com/palemoky/pontoon/internal/logger"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager 音效管理器. Cues are decoded into memory once so Play never
// touches the disk while a round is running.
type SoundManager struct {
	dir     string
	wanted  bool
	enabled bool
	buffers map[string]*beep.Buffer
}

// NewSoundManager loads cues from dir once Init is called. With wanted set to
// false the manager stays silent and never opens the audio device.
func NewSoundManager(dir string, wanted bool) *SoundManager {
	return &SoundManager{
		dir:     dir,
		wanted:  wanted,
		buffers: make(map[string]*beep.Buffer),
	}
}

// Init opens the speaker and decodes every cue present in the sound directory.
// A missing directory or missing cue files only mean fewer sounds.
func (sm *SoundManager) Init() error {
	if !sm.wanted {
		return nil
	}
	if _, err := os.Stat(sm.dir); errors.Is(err, os.ErrNotExist) {
		logger.L().Info("no sound directory, playing silently", "dir", sm.dir)
		return nil
	}

	// 100ms buffer keeps cue latency low
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	sm.enabled = true

	var missing []string
	for _, cue := range Cues() {
		path, ok := sm.find(cue)
		if !ok {
			missing = append(missing, cue)
			continue
		}
		buf, err := decodeFile(path)
		if err != nil {
			logger.LogError("decode sound %s: %v", path, err)
			continue
		}
		sm.buffers[cue] = buf
	}
	if len(missing) > 0 {
		logger.L().Info("sound cues not found", "dir", sm.dir, "missing", missing)
	}
	return nil
}

// find looks for <cue>.mp3, then <cue>.wav.
func (sm *SoundManager) find(cue string) (string, bool) {
	for _, ext := range extensions {
		path := filepath.Join(sm.dir, cue+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

func decodeFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	streamer, format, err := decode(f, filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	defer func() { _ = streamer.Close() }()

	var s beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 4})
	buf.Append(s)
	return buf, nil
}

func decode(r io.ReadCloser, ext string) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext {
	case ".mp3":
		return mp3.Decode(r)
	case ".wav":
		return wav.Decode(r)
	default:
		return nil, beep.Format{}, fmt.Errorf("unsupported sound format %q", ext)
	}
}

// Play starts a cue without waiting for it to finish. Unknown cues are ignored.
func (sm *SoundManager) Play(name string) {
	if sm == nil || !sm.enabled {
		return
	}
	buf, ok := sm.buffers[name]
	if !ok {
		return
	}
	speaker.Play(buf.Streamer(0, buf.Len()))
}

// Loaded reports how many cues were decoded.
func (sm *SoundManager) Loaded() int {
	return len(sm.buffers)
}

// Close stops whatever is still playing.
func (sm *SoundManager) Close() {
	if sm.enabled {
		speaker.Clear()
	}
	sm.enabled = false
}
