package game

import (
	"math/rand"
	"strings"
)

// Difficulty selects which static word list enemies draw from.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// ParseDifficulty maps a config string to a Difficulty, defaulting to medium.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy
	case "hard":
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyHard:
		return "hard"
	default:
		return "medium"
	}
}

// Static, difficulty-tiered word lists. Uppercase only; never mutated.
var easyWords = []string{
	"CAT", "DOG", "SUN", "SKY", "RUN", "JAM", "BOX", "FOX", "HAT", "MAP",
	"KEY", "LOG", "NET", "OWL", "PEN", "RAY", "TOY", "WEB", "ZIP", "ICE",
	"ARC", "BUG", "CUP", "DEW", "EGG", "FAN", "GEM", "HUT", "INK", "JET",
	"CODE", "FIRE", "MOON", "STAR", "WAVE", "WIND", "SHIP", "BOLT", "DUSK", "GLOW",
}

var mediumWords = []string{
	"ROCKET", "PLANET", "METEOR", "GALAXY", "LASER", "ORBIT", "COMET", "NEBULA",
	"SHIELD", "THRUST", "VECTOR", "PLASMA", "FUSION", "CANYON", "SIGNAL", "BEACON",
	"CIPHER", "BINARY", "KERNEL", "SYNTAX", "BUFFER", "SOCKET", "THREAD", "MEMORY",
	"TURRET", "HANGAR", "COCKPIT", "GRAVITY", "HORIZON", "ECLIPSE", "QUASAR", "AURORA",
	"TYPHOON", "CYCLONE", "EMBER", "RAPTOR", "FALCON", "PYTHON", "COBALT", "HELIUM",
}

var hardWords = []string{
	"ASTEROID", "SUPERNOVA", "SPACECRAFT", "TRAJECTORY", "PROPULSION", "ATMOSPHERE",
	"CONSTELLATION", "ACCELERATION", "INTERSTELLAR", "GRAVITATION", "MAGNETOSPHERE",
	"TELEMETRY", "ALGORITHM", "RECURSION", "CONCURRENCY", "SINGULARITY", "HYPERSPACE",
	"NAVIGATION", "COORDINATES", "DECELERATE", "IONOSPHERE", "OSCILLATOR", "PERIHELION",
	"QUANTIZED", "WAVELENGTH", "LUMINOSITY", "CENTRIFUGE", "DIAGNOSTIC", "FIRMWARE",
	"OBLITERATE", "ANNIHILATE", "CATACLYSM", "MAELSTROM", "JUGGERNAUT", "LEVIATHAN",
}

// WordList is an immutable pool of words for one difficulty.
type WordList struct {
	difficulty Difficulty
	words      []string
}

// WordsFor returns the word list for a difficulty.
func WordsFor(d Difficulty) *WordList {
	switch d {
	case DifficultyEasy:
		return &WordList{difficulty: d, words: easyWords}
	case DifficultyHard:
		return &WordList{difficulty: d, words: hardWords}
	default:
		return &WordList{difficulty: DifficultyMedium, words: mediumWords}
	}
}

// Difficulty returns the tier this list belongs to.
func (wl *WordList) Difficulty() Difficulty {
	return wl.difficulty
}

// Len returns the number of words in the list.
func (wl *WordList) Len() int {
	return len(wl.words)
}

// Pick draws a word uniformly at random.
func (wl *WordList) Pick(rng *rand.Rand) string {
	return wl.words[rng.Intn(len(wl.words))]
}
