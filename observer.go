package lightcycle

// An Observer watches a Ring, waiting for its set of Nodes to change.
type Observer interface {
	// NotifyRingChanged is invoked any time the set of Nodes on a ring
	// changes, with the full set of registered Nodes sorted by id. The
	// slice of nodes must not be modified.
	NotifyRingChanged(nodes []Node)
}

// FuncObserver implements Observer.
type FuncObserver func(nodes []Node)

// NotifyRingChanged implements Observer.
func (f FuncObserver) NotifyRingChanged(nodes []Node) { f(nodes) }

// Observe registers o to be notified of changes to the set of Nodes.
// Observers are invoked synchronously from Add and Remove, in registration
// order, after the ring has been fully updated.
func (r *Ring) Observe(o Observer) {
	r.observers = append(r.observers, o)
}

func (r *Ring) notifyObservers() {
	if len(r.observers) == 0 {
		return
	}

	nodes := r.Nodes()
	for _, o := range r.observers {
		o.NotifyRingChanged(nodes)
	}
}
