package board

// Path returns one shortest-path room sequence from a to dst, inclusive of
// both endpoints, or nil if dst is unreachable from a. Used to interpolate
// intermediate display positions (handle's animation_frames) from the
// distance table materialize already computed; no separate predecessor
// table is kept since a path is only ever needed on demand, not per BFS.
func (b *Board) Path(a, dst RoomId) []RoomId {
	ai, aok := b.byID[a]
	di, dok := b.byID[dst]
	if !aok || !dok || b.distance[ai][di] >= Infinity {
		return nil
	}
	if a == dst {
		return []RoomId{a}
	}

	path := []RoomId{dst}
	cur := di
	remaining := b.distance[ai][di]
	for remaining > 0 {
		stepped := false
		for _, nb := range b.Rooms[cur].Adjacent.Rooms() {
			ni, ok := b.byID[nb]
			if !ok {
				continue
			}
			if b.distance[ai][ni] == remaining-1 {
				path = append(path, nb)
				cur = ni
				remaining--
				stepped = true
				break
			}
		}
		if !stepped {
			return nil
		}
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// OrderPath returns the forward traversal of RoomOrder from a to dst,
// stepping +1 each time (wrapping), inclusive of both endpoints. Used for
// the doctor's animation path, which always advances along room order
// rather than along shortest board distance.
func (b *Board) OrderPath(a, dst RoomId) []RoomId {
	n := len(b.roomOrder)
	if n == 0 || a == dst {
		return []RoomId{a}
	}
	start := -1
	for i, id := range b.roomOrder {
		if id == a {
			start = i
			break
		}
	}
	if start < 0 {
		return []RoomId{a}
	}

	path := []RoomId{a}
	idx := start
	for i := 0; i < n; i++ {
		idx = (idx + 1) % n
		path = append(path, b.roomOrder[idx])
		if b.roomOrder[idx] == dst {
			break
		}
	}
	return path
}
