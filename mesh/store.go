package mesh

// Store is a fixed capacity arena of points kept in insertion order. It is a
// ring of slots: the oldest point sits at head, and when the ring is full the
// next insertion overwrites the oldest slot. Evicting a point therefore only
// ever invalidates that one slot; pointers to every other live point stay
// valid.
type Store struct {
	slots  []Point
	head   int // slot of the oldest live point
	size   int
	nextID PointID
}

func NewStore(capacity int) *Store {
	if capacity < 1 {
		capacity = 1
	}
	return &Store{
		slots:  make([]Point, capacity),
		nextID: 1,
	}
}

func (s *Store) Len() int { return s.size }
func (s *Store) Cap() int { return len(s.slots) }

// Insert a point at rest anchored at (x, y), evicting the oldest point first if
// the store is full.
func (s *Store) Insert(x, y float64) PointID {
	if s.size >= len(s.slots) {
		s.evictOldest()
	}
	id := s.nextID
	s.nextID++

	slot := (s.head + s.size) % len(s.slots)
	s.slots[slot] = Point{
		ID:    id,
		X:     x,
		Y:     y,
		OrigX: x,
		OrigY: y,
	}
	s.size++
	return id
}

func (s *Store) evictOldest() {
	s.slots[s.head] = Point{}
	s.head = (s.head + 1) % len(s.slots)
	s.size--
}

// Look up a live point. Returns false if the point was evicted or never
// existed.
func (s *Store) Get(id PointID) (*Point, bool) {
	for i := 0; i < s.size; i++ {
		p := &s.slots[(s.head+i)%len(s.slots)]
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// Call fn on every live point, oldest first. fn may mutate the point.
func (s *Store) Each(fn func(*Point)) {
	for i := 0; i < s.size; i++ {
		fn(&s.slots[(s.head+i)%len(s.slots)])
	}
}

// Pointers to the live points, oldest first. They remain valid until the point
// they refer to is evicted.
func (s *Store) Points() []*Point {
	points := make([]*Point, 0, s.size)
	s.Each(func(p *Point) {
		points = append(points, p)
	})
	return points
}

// Copy of the live points, oldest first.
func (s *Store) Snapshot() []Point {
	points := make([]Point, 0, s.size)
	s.Each(func(p *Point) {
		points = append(points, *p)
	})
	return points
}

// Drop every point. IDs keep increasing across a Clear.
func (s *Store) Clear() {
	for i := range s.slots {
		s.slots[i] = Point{}
	}
	s.head = 0
	s.size = 0
}
