package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(48000)

func drain(t *testing.T, s beep.Streamer) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = append(out, buf[i][0])
		}
		if !ok {
			return out
		}
	}
}

func TestOscillatorSampleCount(t *testing.T) {
	s := NewOscillator(440, 440, 100*time.Millisecond, WaveSine, testRate)
	samples := drain(t, s)

	want := testRate.N(100 * time.Millisecond)
	if len(samples) != want {
		t.Errorf("Expected %d samples for 100ms at 48kHz, got %d", want, len(samples))
	}
	if s.Err() != nil {
		t.Errorf("Expected no streamer error, got %v", s.Err())
	}
}

func TestOscillatorAmplitudeBounded(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		s := NewOscillator(880, 110, 50*time.Millisecond, wave, testRate)
		for _, v := range drain(t, s) {
			if math.Abs(v) > 1.0 {
				t.Fatalf("Expected wave %d bounded to [-1, 1], got %v", wave, v)
			}
		}
	}
}

func TestOscillatorFadesAtEdges(t *testing.T) {
	s := NewOscillator(440, 440, 100*time.Millisecond, WaveSquare, testRate)
	samples := drain(t, s)

	// A square wave has unit amplitude except inside the fade ramps
	if math.Abs(samples[0]) > 1e-9 {
		t.Errorf("Expected silence at the first sample, got %v", samples[0])
	}
	last := samples[len(samples)-1]
	fade := testRate.N(4 * time.Millisecond)
	if math.Abs(last) > 1.0/float64(fade)+1e-9 {
		t.Errorf("Expected the tail faded out, got %v", last)
	}
	mid := samples[len(samples)/2]
	if math.Abs(mid) != 1.0 {
		t.Errorf("Expected full amplitude mid-stream, got %v", mid)
	}
}

func TestOscillatorStopsAfterExhaustion(t *testing.T) {
	s := NewOscillator(440, 440, 10*time.Millisecond, WaveSine, testRate)
	drain(t, s)

	buf := make([][2]float64, 8)
	n, ok := s.Stream(buf)
	if n != 0 || ok {
		t.Errorf("Expected an exhausted streamer to report (0, false), got (%d, %v)", n, ok)
	}
}
