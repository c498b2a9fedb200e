package pipeline

import "strings"

// NormalizeTags lower-cases, trims and de-duplicates dietary tags while
// preserving first-seen order. The result is never nil.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// MatchPolicy decides whether a product's dietary tags satisfy a single
// customer requirement. Both sides arrive normalized.
type MatchPolicy func(productTags []string, requirement string) bool

// ExactMatch requires the requirement to appear verbatim among the
// product's tags. This is the default policy.
func ExactMatch(productTags []string, requirement string) bool {
	for _, tag := range productTags {
		if tag == requirement {
			return true
		}
	}
	return false
}

// SubstringMatch accepts any product tag containing the requirement, so
// "dairy-free" satisfies a "dairy" requirement. Some upstream catalogs tag
// products loosely enough that this is the only match that works for them.
func SubstringMatch(productTags []string, requirement string) bool {
	for _, tag := range productTags {
		if strings.Contains(tag, requirement) {
			return true
		}
	}
	return false
}

// satisfiesAll reports whether every requirement is met by the product's
// tags under the given policy. An empty requirement set is always
// satisfied; a product with no tags satisfies only the empty set.
func satisfiesAll(productTags, required []string, match MatchPolicy) bool {
	for _, req := range required {
		if !match(productTags, req) {
			return false
		}
	}
	return true
}
