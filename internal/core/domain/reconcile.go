package domain

// Reconciliation is the outcome of replacing a locally modified list with the authoritative one.
type Reconciliation struct {
	List    []Suggestion
	Added   []string // In remote but not in local
	Removed []string // In local but not in remote
}

// Reconcile returns the list to display after a transition settles.
// The remote list wins: the result holds exactly the remote items, in remote
// order, with duplicate ids collapsed to their first occurrence. Added and
// Removed describe how far the local list had drifted.
func Reconcile(local, remote []Suggestion) Reconciliation {
	localIDs := make(map[string]struct{}, len(local))
	for _, s := range local {
		localIDs[s.ID] = struct{}{}
	}

	result := Reconciliation{List: make([]Suggestion, 0, len(remote))}
	seen := make(map[string]struct{}, len(remote))
	for _, s := range remote {
		if _, dup := seen[s.ID]; dup {
			continue
		}
		seen[s.ID] = struct{}{}
		result.List = append(result.List, s)
		if _, ok := localIDs[s.ID]; !ok {
			result.Added = append(result.Added, s.ID)
		}
	}
	for _, s := range local {
		if _, ok := seen[s.ID]; !ok {
			result.Removed = append(result.Removed, s.ID)
			seen[s.ID] = struct{}{}
		}
	}
	return result
}
