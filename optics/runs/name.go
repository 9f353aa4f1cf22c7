package runs

import (
	"math/rand"
	"time"
)

var (
	adjectives = []string{
		"amber", "bright", "burning", "clear", "crimson", "dappled", "dazzling",
		"dim", "distant", "faint", "flickering", "gleaming", "glinting", "golden",
		"hazy", "hollow", "lucid", "mirrored", "misty", "molten", "pale", "polished",
		"prismatic", "quiet", "radiant", "scattered", "shimmering", "silver",
		"slanted", "soft", "stray", "twilight", "violet", "wandering", "warm",
	}

	nouns = []string{
		"beam", "candle", "comet", "corona", "dawn", "dusk", "ember", "facet",
		"flare", "glare", "glass", "glimmer", "glow", "halo", "lantern", "lens",
		"lighthouse", "moon", "mirror", "prism", "ray", "shadow", "shard",
		"spark", "star", "sun", "sunbeam", "torch", "veil", "window",
	}
)

// GenerateRunName creates a memorable run identifier in the format
// "adjective-noun"
func GenerateRunName() string {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	adj := adjectives[rnd.Intn(len(adjectives))]
	noun := nouns[rnd.Intn(len(nouns))]
	return adj + "-" + noun
}

// GenerateRunID creates a unique run identifier by combining the memorable
// name with a timestamp
func GenerateRunID() string {
	timestamp := time.Now().UTC().Format("20060102-150405.000")
	return GenerateRunName() + "-" + timestamp
}
