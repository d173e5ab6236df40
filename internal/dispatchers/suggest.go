package dispatchers

import (
	"sort"
	"strings"
)

// levenshtein calculates the edit distance between two strings
func levenshtein(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Create matrix
	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}

	// Initialize first column
	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}

	// Initialize first row
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	// Fill in the rest of the matrix
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}

type suggestion struct {
	name     string
	distance int
}

// FindSimilarCommands returns up to maxResults candidates within edit
// distance 3 of input. A candidate path also matches on its last segment.
func FindSimilarCommands(input string, candidates []string, maxResults int) []string {
	const maxDistance = 3

	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	var suggestions []suggestion
	seen := make(map[string]bool)

	for _, name := range candidates {
		if seen[name] {
			continue
		}
		seen[name] = true

		dist := levenshtein(input, name)
		if i := strings.LastIndexByte(name, '/'); i >= 0 {
			dist = min(dist, levenshtein(input, name[i+1:]))
		}
		if dist <= maxDistance && !strings.EqualFold(name, input) {
			suggestions = append(suggestions, suggestion{name: name, distance: dist})
		}
	}

	// Sort by distance (ascending), then alphabetically for stability
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].distance != suggestions[j].distance {
			return suggestions[i].distance < suggestions[j].distance
		}
		return suggestions[i].name < suggestions[j].name
	})

	if len(suggestions) > maxResults {
		suggestions = suggestions[:maxResults]
	}

	result := make([]string, len(suggestions))
	for i, s := range suggestions {
		result[i] = s.name
	}

	return result
}
