package schedule

import "sort"

// Candidate is a proposed booking under conflict evaluation. ID is empty on
// create; on update it carries the record's own id so the scan skips the
// booking's prior state.
type Candidate struct {
	ID          string
	ResourceIDs []string
	Interval    Interval
}

func (c Candidate) Validate() error {
	if len(c.ResourceIDs) == 0 {
		return ErrNoResources
	}
	return c.Interval.Validate()
}

// Entry is an existing booking as the scanner sees it, already fetched and
// scoped by the caller to the relevant resource or date.
type Entry struct {
	ID          string
	ResourceIDs []string
	Interval    Interval
	Cancelled   bool
}

// Report lists the resources a candidate collides with. Conflicts maps each
// contested resource id to the ids of the entries occupying it; a nil map
// means the candidate is acceptable.
type Report struct {
	Conflicts map[string][]string
}

func (r Report) Empty() bool {
	return len(r.Conflicts) == 0
}

// ResourceIDs returns the contested resource ids in sorted order.
func (r Report) ResourceIDs() []string {
	if len(r.Conflicts) == 0 {
		return nil
	}
	ids := make([]string, 0, len(r.Conflicts))
	for id := range r.Conflicts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Scan evaluates the candidate against existing entries. An entry conflicts
// when it is not cancelled, is not the candidate itself, shares at least one
// resource, and its interval overlaps the candidate's. The scan never
// mutates its inputs and is order-independent.
func Scan(candidate Candidate, entries []Entry) Report {
	wanted := make(map[string]struct{}, len(candidate.ResourceIDs))
	for _, id := range candidate.ResourceIDs {
		wanted[id] = struct{}{}
	}

	var conflicts map[string][]string
	for _, e := range entries {
		if e.Cancelled {
			continue
		}
		if candidate.ID != "" && e.ID == candidate.ID {
			continue
		}
		shared := sharedResources(wanted, e.ResourceIDs)
		if len(shared) == 0 {
			continue
		}
		if !candidate.Interval.Overlaps(e.Interval) {
			continue
		}
		if conflicts == nil {
			conflicts = make(map[string][]string)
		}
		for _, id := range shared {
			conflicts[id] = append(conflicts[id], e.ID)
		}
	}
	return Report{Conflicts: conflicts}
}

func sharedResources(wanted map[string]struct{}, ids []string) []string {
	var shared []string
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := wanted[id]; ok {
			shared = append(shared, id)
		}
	}
	return shared
}
