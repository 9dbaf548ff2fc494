package lexicon

import "strings"

// JMdict has no native difficulty field, so the proficiency tier is derived
// from its frequency-of-use priority tags: first-tier tags mark the ~10k
// most common words (learner-friendly), any remaining tag marks mid
// frequency, and untagged words get no tier at all.

var tierOne = map[string]bool{
	"ichi1": true,
	"news1": true,
	"spec1": true,
	"gai1":  true,
}

// priorityLevel maps JMdict priority tags to a coarse JLPT-style tier.
// Returns ("", false) when the entry carries no priority information.
func priorityLevel(priorities []string) (level string, common bool) {
	if len(priorities) == 0 {
		return "", false
	}
	for _, p := range priorities {
		if tierOne[strings.ToLower(p)] {
			return "N4", true
		}
	}
	return "N3", false
}
