package pure_utils

import "strings"

// NormalizeTagValues canonicalizes a list of raw tag values (ticker symbols or
// currency codes) the same way regardless of how they were submitted: each
// element may itself be a comma-separated list, whitespace is trimmed, empty
// results are dropped, values are uppercased and de-duplicated keeping the
// first occurrence's position.
func NormalizeTagValues(raw []string) []string {
	cleaned := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, value := range raw {
		for _, part := range strings.Split(value, ",") {
			item := strings.ToUpper(strings.TrimSpace(part))
			if item == "" {
				continue
			}
			if _, ok := seen[item]; ok {
				continue
			}
			seen[item] = struct{}{}
			cleaned = append(cleaned, item)
		}
	}
	return cleaned
}
