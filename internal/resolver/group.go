package resolver

import "github.com/durack1/durolib/internal/naming"

// Group is the set of records sharing one identity, in input order.
type Group struct {
	Identity naming.Identity
	Records  []naming.FileRecord
}

// GroupByIdentity partitions records by exact identity equality. Groups
// are returned in order of first appearance and every record lands in
// exactly one group.
func GroupByIdentity(records []naming.FileRecord) []Group {
	index := make(map[naming.Identity]int, len(records))
	var groups []Group
	for _, rec := range records {
		i, ok := index[rec.Identity]
		if !ok {
			i = len(groups)
			index[rec.Identity] = i
			groups = append(groups, Group{Identity: rec.Identity})
		}
		groups[i].Records = append(groups[i].Records, rec)
	}
	return groups
}
