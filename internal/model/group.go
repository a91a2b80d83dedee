package model

import "sort"

// Group is a project or product with the number of items it has.
type Group struct {
	Name  string
	Count int
}

// GroupCounts counts the items of each group name sorted by name, empty names are ignored.
func GroupCounts(names []string) []Group {
	counts := map[string]int{}
	for _, n := range names {
		if n == "" {
			continue
		}
		counts[n]++
	}

	groups := make([]Group, 0, len(counts))
	for n, c := range counts {
		groups = append(groups, Group{Name: n, Count: c})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Name < groups[j].Name })

	return groups
}
