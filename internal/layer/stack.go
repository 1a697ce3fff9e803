package layer

// Stack holds layers in paint order, index 0 at the bottom. At most one
// layer is active; the active ID always names a member.
type Stack struct {
	layers []*Layer
	active string
}

func NewStack() *Stack {
	return &Stack{layers: make([]*Layer, 0)}
}

func (s *Stack) Len() int { return len(s.layers) }

// Layers returns the paint order. The slice is a copy; the layers are not.
func (s *Stack) Layers() []*Layer {
	out := make([]*Layer, len(s.layers))
	copy(out, s.layers)
	return out
}

func (s *Stack) Index(id string) int {
	for i, l := range s.layers {
		if l.ID == id {
			return i
		}
	}
	return -1
}

func (s *Stack) Get(id string) *Layer {
	if i := s.Index(id); i >= 0 {
		return s.layers[i]
	}
	return nil
}

// Add puts l on top and makes it active.
func (s *Stack) Add(l *Layer) {
	s.layers = append(s.layers, l)
	s.active = l.ID
}

// Insert places l at index i, clamped to the valid range, and makes it
// active.
func (s *Stack) Insert(i int, l *Layer) {
	i = max(0, min(i, len(s.layers)))
	s.layers = append(s.layers, nil)
	copy(s.layers[i+1:], s.layers[i:])
	s.layers[i] = l
	s.active = l.ID
}

// Remove deletes the layer. If it was active, the layer below it (or the
// new bottom) becomes active; an emptied stack has no active layer.
func (s *Stack) Remove(id string) bool {
	i := s.Index(id)
	if i < 0 {
		return false
	}
	s.layers = append(s.layers[:i], s.layers[i+1:]...)
	if s.active == id {
		s.active = ""
		if len(s.layers) > 0 {
			s.active = s.layers[max(0, i-1)].ID
		}
	}
	return true
}

func (s *Stack) Active() *Layer {
	if s.active == "" {
		return nil
	}
	return s.Get(s.active)
}

func (s *Stack) ActiveID() string { return s.active }

// SetActive selects a member; an empty id clears the selection. Unknown IDs
// are ignored.
func (s *Stack) SetActive(id string) bool {
	if id == "" {
		s.active = ""
		return true
	}
	if s.Index(id) < 0 {
		return false
	}
	s.active = id
	return true
}

// HitTest returns the topmost layer whose rectangle contains the point.
// Fade and brush masks do not affect hit testing.
func (s *Stack) HitTest(x, y float64) *Layer {
	for i := len(s.layers) - 1; i >= 0; i-- {
		if s.layers[i].Contains(x, y) {
			return s.layers[i]
		}
	}
	return nil
}

func (s *Stack) Raise(id string) bool {
	i := s.Index(id)
	if i < 0 || i == len(s.layers)-1 {
		return false
	}
	s.layers[i], s.layers[i+1] = s.layers[i+1], s.layers[i]
	return true
}

func (s *Stack) Lower(id string) bool {
	i := s.Index(id)
	if i <= 0 {
		return false
	}
	s.layers[i], s.layers[i-1] = s.layers[i-1], s.layers[i]
	return true
}

func (s *Stack) BringToFront(id string) bool {
	i := s.Index(id)
	if i < 0 || i == len(s.layers)-1 {
		return false
	}
	l := s.layers[i]
	copy(s.layers[i:], s.layers[i+1:])
	s.layers[len(s.layers)-1] = l
	return true
}

func (s *Stack) SendToBack(id string) bool {
	i := s.Index(id)
	if i <= 0 {
		return false
	}
	l := s.layers[i]
	copy(s.layers[1:i+1], s.layers[:i])
	s.layers[0] = l
	return true
}

// Duplicate clones the layer directly above the original and selects the
// copy.
func (s *Stack) Duplicate(id string) *Layer {
	i := s.Index(id)
	if i < 0 {
		return nil
	}
	c := s.layers[i].Clone()
	s.Insert(i+1, c)
	return c
}

type Order int

const (
	OrderRaise Order = iota
	OrderLower
	OrderFront
	OrderBack
)

func (s *Stack) Reorder(id string, op Order) bool {
	switch op {
	case OrderRaise:
		return s.Raise(id)
	case OrderLower:
		return s.Lower(id)
	case OrderFront:
		return s.BringToFront(id)
	case OrderBack:
		return s.SendToBack(id)
	}
	return false
}
