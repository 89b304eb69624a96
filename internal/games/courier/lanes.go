package courier

// laneTracker records which horizontal slots trucks occupy in each lane,
// split into off-board spawn slots (the queue of trucks waiting to enter)
// and on-board columns. Spawn placement consults the off-board sets so two
// trucks never stack on the same entry slot; the on-board sets keep the
// relative ordering of traffic per lane.
type laneTracker struct {
	spawn  map[int]map[int]bool // lane row -> occupied spawn slots (1..BoardCols)
	onRoad map[int]map[int]int  // lane row -> column -> truck count
}

func newLaneTracker() *laneTracker {
	t := &laneTracker{
		spawn:  make(map[int]map[int]bool, laneCount),
		onRoad: make(map[int]map[int]int, laneCount),
	}
	for lane := LaneFirst; lane <= LaneLast; lane++ {
		t.spawn[lane] = make(map[int]bool)
		t.onRoad[lane] = make(map[int]int)
	}
	return t
}

// holdSpawn marks an off-board slot as occupied.
func (t *laneTracker) holdSpawn(lane, slot int) {
	if m := t.spawn[lane]; m != nil {
		m[slot] = true
	}
}

// releaseSpawn frees an off-board slot. Releasing an absent slot is a no-op.
func (t *laneTracker) releaseSpawn(lane, slot int) {
	if m := t.spawn[lane]; m != nil {
		delete(m, slot)
	}
}

// spawnSlots returns the occupied off-board slots for a lane.
// The returned map is live; callers must not mutate it.
func (t *laneTracker) spawnSlots(lane int) map[int]bool {
	return t.spawn[lane]
}

// enter records a truck arriving on-board at the given column.
func (t *laneTracker) enter(lane, col int) {
	if m := t.onRoad[lane]; m != nil {
		m[col]++
	}
}

// advance moves a truck's recorded column forward. Absent entries are no-ops.
func (t *laneTracker) advance(lane, from, to int) {
	t.leave(lane, from)
	t.enter(lane, to)
}

// leave removes a truck's recorded column. Absent entries are no-ops.
func (t *laneTracker) leave(lane, col int) {
	m := t.onRoad[lane]
	if m == nil {
		return
	}
	if m[col] > 1 {
		m[col]--
	} else {
		delete(m, col)
	}
}

// onRoadCount returns how many trucks the tracker records in a lane.
func (t *laneTracker) onRoadCount(lane int) int {
	n := 0
	for _, c := range t.onRoad[lane] {
		n += c
	}
	return n
}
