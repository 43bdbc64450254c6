package main

type gestureHandler interface {
	PressStart(points []contact)
	Move(points []contact)
	Release()
}

// pointerTracker turns per-pointer events into contact lists, primary
// pointer first, like the touches list of a touch event.
type pointerTracker struct {
	handler  gestureHandler
	ids      []int
	contacts map[int]contact
}

func newPointerTracker(h gestureHandler) *pointerTracker {
	return &pointerTracker{
		handler:  h,
		contacts: make(map[int]contact),
	}
}

func (t *pointerTracker) Down(id int, primary bool, p contact) {
	if _, ok := t.contacts[id]; !ok {
		if primary {
			t.ids = append([]int{id}, t.ids...)
		} else {
			t.ids = append(t.ids, id)
		}
	}
	t.contacts[id] = p
	t.handler.PressStart(t.points())
}

func (t *pointerTracker) Move(id int, p contact) {
	if _, ok := t.contacts[id]; !ok {
		return
	}
	t.contacts[id] = p
	t.handler.Move(t.points())
}

// Up ends the gesture when the last pointer leaves. Otherwise the remaining
// pointers start a new one.
func (t *pointerTracker) Up(id int) {
	if _, ok := t.contacts[id]; !ok {
		return
	}
	delete(t.contacts, id)
	for i, v := range t.ids {
		if v == id {
			t.ids = append(t.ids[:i], t.ids[i+1:]...)
			break
		}
	}
	if len(t.ids) == 0 {
		t.handler.Release()
		return
	}
	t.handler.PressStart(t.points())
}

func (t *pointerTracker) Len() int {
	return len(t.ids)
}

func (t *pointerTracker) points() []contact {
	pp := make([]contact, 0, len(t.ids))
	for _, id := range t.ids {
		pp = append(pp, t.contacts[id])
	}
	return pp
}
