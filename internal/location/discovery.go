package location

// Discover marks the location at index i as discovered and returns a copy.
// The transition is one-way; discovering twice is a no-op.
func (s *System) Discover(i int) Location {
	s.locs[i].Discovered = true
	return s.locs[i]
}

// CheckDiscoveries marks and returns every location newly discovered from
// (x, y). A location is in range when both |dx| and |dy| are within the
// discovery radius. Already-discovered locations are never returned again.
func (s *System) CheckDiscoveries(x, y int) []Location {
	var found []Location
	for i := range s.locs {
		loc := &s.locs[i]
		if abs(loc.X-x) > DiscoveryRadius || abs(loc.Y-y) > DiscoveryRadius {
			continue
		}
		if loc.Discovered {
			continue
		}
		loc.Discovered = true
		found = append(found, *loc)
	}
	return found
}

// Nearby returns the indices of all locations within the given Manhattan
// distance of (x, y), in placement order.
func (s *System) Nearby(x, y, radius int) []int {
	if radius <= 0 {
		return nil
	}
	var nearby []int
	for i := range s.locs {
		if abs(s.locs[i].X-x)+abs(s.locs[i].Y-y) <= radius {
			nearby = append(nearby, i)
		}
	}
	return nearby
}

// Discovered returns copies of all discovered locations in placement order.
func (s *System) Discovered() []Location {
	var out []Location
	for i := range s.locs {
		if s.locs[i].Discovered {
			out = append(out, s.locs[i])
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
