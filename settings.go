package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/brrsuite/wav2brr/convert"
	"github.com/brrsuite/wav2brr/resample"
)

// EncodeSettings is the YAML shape of an encoder settings file. Every field
// is optional; zero values leave the flag driven defaults alone.
type EncodeSettings struct {
	Resampler      string  `yaml:"resampler"`
	ResampleFactor float64 `yaml:"resample_factor"`
	Truncate       int     `yaml:"truncate"`
	LeadingZeros   *int    `yaml:"leading_zeros"`

	DisableFilters []int `yaml:"disable_filters"`
	LoopFilter0    bool  `yaml:"loop_filter0"`

	TrebleBoost    float64 `yaml:"treble_boost"`
	AmplitudeBoost float64 `yaml:"amplitude_boost"`
}

func LoadEncodeSettings(filename string) (*EncodeSettings, error) {
	data, err := os.ReadFile(filename)

	if err != nil {
		return nil, err
	}

	var result EncodeSettings
	err = yaml.Unmarshal(data, &result)

	if err != nil {
		return nil, err
	}

	return &result, nil
}

// Apply overlays the settings file onto an encoder.
func (settings *EncodeSettings) Apply(encoder *convert.Encoder) error {
	if settings.Resampler != "" {
		kernel, err := resample.ByName(settings.Resampler)

		if err != nil {
			return err
		}

		encoder.Resampler = kernel
	}

	if settings.ResampleFactor > 0 {
		encoder.ResampleFactor = settings.ResampleFactor
	}

	if settings.Truncate > 0 {
		encoder.Truncate = settings.Truncate
	}

	if settings.LeadingZeros != nil {
		encoder.LeadingZeros = *settings.LeadingZeros
	}

	for _, filter := range settings.DisableFilters {
		if filter >= 0 && filter < 4 {
			encoder.EnableFilter[filter] = false
		}
	}

	if settings.LoopFilter0 {
		encoder.ForceFilter0OnLoop = true
	}

	if settings.TrebleBoost != 0 {
		encoder.Filters = append(encoder.Filters, convert.TrebleFilter(settings.TrebleBoost))
	}

	if settings.AmplitudeBoost != 0 && settings.AmplitudeBoost != 1 {
		encoder.Filters = append(encoder.Filters, convert.AmplitudeFilter(settings.AmplitudeBoost))
	}

	return nil
}
