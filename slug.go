package jobready

import "strings"

// Slugify derives a URL-safe identifier from a title.
// It lower-cases the title, turns every run of characters outside [a-z0-9]
// into a single hyphen and trims hyphens from both ends.
// Example: "What is a Closure?" → "what-is-a-closure"
func Slugify(title string) string {
	var sb strings.Builder
	pendingHyphen := false

	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			sb.WriteRune(r)
			pendingHyphen = false
			continue
		}
		pendingHyphen = true
	}

	return sb.String()
}

// NextID returns max(ids) + 1, or 1 for an empty collection.
// Ids of deleted records are never reused while a higher id exists.
func NextID(ids []int) int {
	next := 1
	for _, id := range ids {
		if id >= next {
			next = id + 1
		}
	}
	return next
}
