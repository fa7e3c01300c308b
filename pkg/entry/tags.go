package entry

import "strings"

// MaxTags is how many tags the composer accepts for one entry. The store
// itself does not enforce it.
const MaxTags = 6

// NormalizeTags trims every tag, drops blanks and removes duplicates while
// keeping first-seen order.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

// ParseTags splits comma separated input into at most MaxTags tags.
func ParseTags(csv string) []string {
	tags := NormalizeTags(strings.Split(csv, ","))
	if len(tags) > MaxTags {
		tags = tags[:MaxTags]
	}
	return tags
}

// MergeTags combines typed tags with picked ones, typed first, deduplicated.
func MergeTags(typed, picked []string) []string {
	return NormalizeTags(append(append([]string(nil), typed...), picked...))
}
