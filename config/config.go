// Package config loads the user preferences and key bindings shared by the
// vectorscope command line tools. Defaults are embedded in the binary; users
// can override any of them by placing a file with the same name in the
// vectorscope directory under os.UserConfigDir().
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/NaFo44/vectorscope"
)

type Preferences struct {
	SampleRate    int
	ImageDuration float64
	FrameDuration float64
	PCM16         bool
	DwellSamples  int
	Mapping       string
	Jitter        float64
	Seed          int64

	YmlError error `yaml:"-"`
}

const dirName = "vectorscope"

//go:embed preferences.yml
var defaultPreferencesYaml []byte

func loadDefaultPreferences() Preferences {
	var preferences Preferences
	err := yaml.UnmarshalStrict(defaultPreferencesYaml, &preferences)
	if err != nil {
		panic(fmt.Errorf("failed to unmarshal preferences: %w", err))
	}
	return preferences
}

// ReadCustomConfigYml modifies the target argument, i.e. needs a pointer
func ReadCustomConfigYml(filename string, target interface{}) (exists bool, err error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return false, err
	}
	path := filepath.Join(configDir, dirName, filename)
	bytes, err2 := os.ReadFile(path)
	if err2 != nil {
		return false, err2
	}
	err = yaml.Unmarshal(bytes, target)
	return true, err
}

// MakePreferences returns the embedded defaults overlaid with the user's
// preferences.yml. A broken user file is reported in YmlError; the values it
// managed to set before the error are kept.
func MakePreferences() Preferences {
	preferences := loadDefaultPreferences()
	exists, err := ReadCustomConfigYml("preferences.yml", &preferences)
	if exists {
		preferences.YmlError = err
	}
	return preferences
}

// Synthesizer returns a Synthesizer configured from the preferences.
func (p Preferences) Synthesizer() (*vectorscope.Synthesizer, error) {
	if p.SampleRate <= 0 {
		return nil, fmt.Errorf("preferences: %w: %v", vectorscope.ErrInvalidSampleRate, p.SampleRate)
	}
	mapping, err := vectorscope.ParseMapping(p.Mapping)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}
	s := vectorscope.NewSynthesizer(p.SampleRate)
	s.Mapping = mapping
	s.DwellSamples = p.DwellSamples
	s.Jitter = p.Jitter
	s.Seed = p.Seed
	return s, nil
}

func (p Preferences) WavFormat() vectorscope.WavFormat {
	return vectorscope.WavFormat{SampleRate: p.SampleRate, PCM16: p.PCM16}
}
