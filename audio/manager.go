package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Manager owns the speaker and a shared mixer for weapon cues.
// All Play methods are no-ops until Initialize succeeds, so the game
// runs silently when no audio device is available.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	volume      float64
}

// NewManager creates an uninitialized sound manager.
func NewManager() *Manager {
	return &Manager{
		mixer:  &beep.Mixer{},
		volume: 0.5,
	}
}

// Initialize opens the speaker and starts the mixer.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Cleanup silences and detaches all streamers.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}

// play adds a one-shot streamer to the mixer at the manager volume.
func (m *Manager) play(s beep.Streamer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	vol := m.volume
	scaled := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		return n, ok
	})
	speaker.Lock()
	m.mixer.Add(scaled)
	speaker.Unlock()
}

// PlayFire plays the hit-scan discharge: a fast falling saw sweep.
func (m *Manager) PlayFire() {
	m.play(NewOscillator(880, 110, 90*time.Millisecond, WaveSaw, sampleRate))
}

// PlayImpact plays the target-destroyed cue: a short noise burst.
func (m *Manager) PlayImpact() {
	m.play(NewOscillator(0, 0, 60*time.Millisecond, WaveNoise, sampleRate))
}
