package dialogkit

// listenerSet is a set of node ids that remembers insertion order, so
// broadcasts are delivered in a stable order.
type listenerSet struct {
	order []NodeID
	index map[NodeID]struct{}
}

func newListenerSet() *listenerSet {
	return &listenerSet{index: make(map[NodeID]struct{})}
}

func (s *listenerSet) add(id NodeID) {
	if _, ok := s.index[id]; ok {
		return
	}
	s.index[id] = struct{}{}
	s.order = append(s.order, id)
}

func (s *listenerSet) has(id NodeID) bool {
	_, ok := s.index[id]
	return ok
}

func (s *listenerSet) len() int {
	return len(s.order)
}

// ids returns a copy, safe to range over while listeners are added.
func (s *listenerSet) ids() []NodeID {
	out := make([]NodeID, len(s.order))
	copy(out, s.order)
	return out
}

// linkListeners makes existing, added and everything either of them already
// listens to into one complete graph. Nodes never listen to themselves.
func (a *Arena) linkListeners(existing, added *Node) {
	upper := append([]NodeID{existing.id}, existing.listeners.ids()...)
	lower := append([]NodeID{added.id}, added.listeners.ids()...)

	for _, l := range lower {
		ln := a.nodes[l]
		for _, u := range upper {
			if u != l {
				ln.listeners.add(u)
			}
		}
	}
	for _, u := range upper {
		un := a.nodes[u]
		for _, l := range lower {
			if l != u {
				un.listeners.add(l)
			}
		}
	}
}
