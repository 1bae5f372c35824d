package vectorscope

import "errors"

// Error kinds returned by the synthesis core. Callers should test them with
// errors.Is, as most of them are wrapped with more context.
var (
	ErrInvalidDuration   = errors.New("duration must be > 0")
	ErrInvalidSampleRate = errors.New("sample rate must be > 0")
	ErrEmptySequence     = errors.New("frame sequence is empty")
	ErrCorruptProject    = errors.New("corrupt project")
	ErrIO                = errors.New("i/o error")
)

func checkTiming(duration float64, sampleRate int) error {
	if !(duration > 0) {
		return ErrInvalidDuration
	}
	if sampleRate <= 0 {
		return ErrInvalidSampleRate
	}
	return nil
}
