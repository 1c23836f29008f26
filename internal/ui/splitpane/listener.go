package splitpane

// Listener observes committed position changes. fromUser is true when the
// change came from a drag or a key press, false for SetPosition and friends.
type Listener interface {
	SplitterPositionChanged(m *Model, fromUser bool)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(m *Model, fromUser bool)

// SplitterPositionChanged calls f.
func (f ListenerFunc) SplitterPositionChanged(m *Model, fromUser bool) {
	f(m, fromUser)
}

type subscription struct {
	id int
	l  Listener
}

// Subscribe registers l and returns a function that removes it. Calling the
// returned function more than once is harmless.
func (m *Model) Subscribe(l Listener) (cancel func()) {
	if l == nil {
		return func() {}
	}
	m.nextSub++
	id := m.nextSub
	m.subs = append(m.subs, subscription{id: id, l: l})
	return func() {
		for i, s := range m.subs {
			if s.id == id {
				m.subs = append(m.subs[:i:i], m.subs[i+1:]...)
				return
			}
		}
	}
}

func (m *Model) notify(fromUser bool) {
	// Copy so a listener can unsubscribe while being notified.
	subs := append([]subscription(nil), m.subs...)
	for _, s := range subs {
		s.l.SplitterPositionChanged(m, fromUser)
	}
}
