package modules

import (
	"github.com/voice-training/voice-training-service/internal/pkg/validators"
)

// DefaultModules returns the starter curriculum, ordered from warm-up to pragmatics.
func DefaultModules() []CreateModuleRequest {
	return []CreateModuleRequest{
		{
			Title:       "Warm‑Up & Vocal Health",
			Description: "Prepare gently and reduce strain (short, frequent practice is safer).",
			Level:       validators.LevelBeginner,
			Steps: []string{
				"Hydrate and take 3 slow breaths",
				"Gentle lip trills for 10–15 seconds",
				"Soft humming on a comfortable pitch",
			},
		},
		{
			Title:       "Pitch Fundamentals",
			Description: "Establish a comfortable baseline pitch and glide safely (neutral ~155–185 Hz).",
			Level:       validators.LevelBeginner,
			Steps: []string{
				"Sustain a gentle 'mmm' for 5 seconds",
				"Slide up in pitch slowly and return",
				"Repeat with vowels: ee, ah, oo",
			},
		},
		{
			Title:       "Resonance & Brightness",
			Description: "Shift resonance forward and brighten tone without strain.",
			Level:       validators.LevelIntermediate,
			Steps: []string{
				"Say 'nee' with a forward, light resonance",
				"Alternate 'nee' and 'nah'",
				"Record and compare",
			},
		},
		{
			Title:       "Intonation & Prosody",
			Description: "Practice melodic contours and expressive variation.",
			Level:       validators.LevelIntermediate,
			Steps: []string{
				"Read a short phrase with rising intonation",
				"Repeat with falling intonation",
				"Record both and compare the contour",
			},
		},
		{
			Title:       "Communication Style & Pragmatics",
			Description: "Explore phrasing, word choice, and non‑verbal cues.",
			Level:       validators.LevelAdvanced,
			Steps: []string{
				"Role‑play a greeting, asking for help, and a phone call",
				"Notice pacing and emphasis",
				"Reflect on comfort and confidence",
			},
		},
	}
}
