package game

import (
	"math"
	"sync"
)

const (
	toneSampleRate = 48000
	toneFrequency  = 440.0
	toneVolume     = 0.2
	// toneAttack is the per-sample gain change toward the target level.
	toneAttack = 0.002
)

// proximityTone is an io.Reader producing a sine beep while the forward
// sensor is blocked. The game loop sets the state; the audio player reads.
type proximityTone struct {
	mu      sync.Mutex
	blocked bool
	gain    float64
	phase   float64
	step    float64
}

func newProximityTone(sampleRate int) *proximityTone {
	return &proximityTone{step: 2 * math.Pi * toneFrequency / float64(sampleRate)}
}

func (s *proximityTone) SetBlocked(blocked bool) {
	s.mu.Lock()
	s.blocked = blocked
	s.mu.Unlock()
}

// Read fills p with whole 16-bit stereo frames.
func (s *proximityTone) Read(p []byte) (int, error) {
	frameBytes := len(p) - len(p)%4
	if frameBytes == 0 {
		return 0, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	target := 0.0
	if s.blocked {
		target = toneVolume
	}
	for i := 0; i < frameBytes; i += 4 {
		if s.gain < target {
			s.gain = math.Min(target, s.gain+toneAttack)
		} else if s.gain > target {
			s.gain = math.Max(target, s.gain-toneAttack)
		}
		v := int16(math.Sin(s.phase) * s.gain * 32767)
		s.phase += s.step
		if s.phase > 2*math.Pi {
			s.phase -= 2 * math.Pi
		}
		p[i] = byte(v)
		p[i+1] = byte(v >> 8)
		p[i+2] = p[i]
		p[i+3] = p[i+1]
	}
	return frameBytes, nil
}

func (s *proximityTone) Close() error {
	return nil
}
