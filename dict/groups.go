package dict

import "sort"

// Groups returns the classes holding at least minWords words, largest
// first. Classes of equal size keep their index traversal order.
func (idx *Index) Groups(minWords int) []*Class {
	var groups []*Class
	for _, class := range idx.classes {
		if len(class.Words) >= minWords {
			groups = append(groups, class)
		}
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i].Words) > len(groups[j].Words)
	})
	return groups
}
