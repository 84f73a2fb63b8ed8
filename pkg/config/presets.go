package config

import "time"

// MotionPreset returns the reveal settings for a named preset. Unknown
// names return the "default" preset.
//
//	default  1s fade, 2-row rise
//	fast     300ms fade, 1-row rise
//	reduced  no animation: blocks appear as soon as they are revealed
func MotionPreset(name string) RevealConfig {
	switch name {
	case "fast":
		return fastPreset()
	case "reduced":
		return reducedPreset()
	default:
		return defaultPreset()
	}
}

func defaultPreset() RevealConfig {
	return RevealConfig{
		Preset:        "default",
		Threshold:     0.1,
		Duration:      Duration{time.Second},
		OffsetRows:    2,
		FrameInterval: Duration{50 * time.Millisecond},
	}
}

func fastPreset() RevealConfig {
	return RevealConfig{
		Preset:        "fast",
		Threshold:     0.1,
		Duration:      Duration{300 * time.Millisecond},
		OffsetRows:    1,
		FrameInterval: Duration{33 * time.Millisecond},
	}
}

func reducedPreset() RevealConfig {
	return RevealConfig{
		Preset:        "reduced",
		Threshold:     0.1,
		Duration:      Duration{0},
		OffsetRows:    0,
		FrameInterval: Duration{100 * time.Millisecond},
	}
}
