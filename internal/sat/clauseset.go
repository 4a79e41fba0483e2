package sat

// clauseIDSet is a resettable set of clause ids, sized to the number of
// clauses ever constructed (see Clause.id in clause.go). CheckInvariants
// uses one as scratch space to detect a clause appearing twice in the same
// literal's watch list; Clear is O(1) so it can be called once per literal
// scanned without re-zeroing the whole backing array.
type clauseIDSet struct {
	addedAt        []uint16
	addedTimestamp uint16
}

// Contains reports whether clause id is in the set.
func (cs *clauseIDSet) Contains(id int) bool {
	return cs.addedAt[id] == cs.addedTimestamp
}

// Add puts clause id in the set.
func (cs *clauseIDSet) Add(id int) {
	cs.addedAt[id] = cs.addedTimestamp
}

// Clear empties the set in constant time by bumping a generation counter;
// members added in an earlier generation stop counting as present without
// being visited individually.
func (cs *clauseIDSet) Clear() {
	cs.addedTimestamp++
	if cs.addedTimestamp == 0 { // overflow: fall back to a real zeroing pass
		cs.addedTimestamp = 1
		for i := range cs.addedAt {
			cs.addedAt[i] = 0
		}
	}
}

// Expand grows the set to cover one more clause id, called each time
// NewClause registers a new clause.
func (cs *clauseIDSet) Expand() {
	cs.addedAt = append(cs.addedAt, 0)
}
