// Package picker implements the selection engine: tag extraction, mood
// matching and the uniform random draw. All functions are pure over their
// inputs and safe to call concurrently on a shared dataset.
package picker

import "github.com/jumpinjune/memepicker/internal/catalog"

// ExtractTags returns the distinct mood tags in first-occurrence order:
// entry order first, then each entry's own tag order.
func ExtractTags(entries []catalog.Entry) []string {
	tags := make([]string, 0)
	seen := make(map[string]struct{})
	for _, e := range entries {
		for _, tag := range e.MoodTags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	return tags
}

// SelectMatches returns the entries tagged with mood, restricted to animated
// entries when animatedOnly is set. An empty mood selects nothing.
func SelectMatches(entries []catalog.Entry, mood string, animatedOnly bool) []catalog.Entry {
	matches := make([]catalog.Entry, 0)
	if mood == "" {
		return matches
	}
	for _, e := range entries {
		if animatedOnly && !e.IsAnimated {
			continue
		}
		if e.HasMood(mood) {
			matches = append(matches, e)
		}
	}
	return matches
}

// PickOne draws one match uniformly at random. It reports false when there
// are no matches. A single match is returned without consulting rng.
func PickOne(matches []catalog.Entry, rng RNG) (catalog.Entry, bool) {
	switch len(matches) {
	case 0:
		return catalog.Entry{}, false
	case 1:
		return matches[0], true
	}
	return matches[rng.Intn(len(matches))], true
}
