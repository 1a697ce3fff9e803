package document

// Scheduler coalesces frame requests: only the first request after a
// frame is drawn asks for a new one.
type Scheduler struct {
	pending bool
}

// Request marks a frame as needed and reports whether the caller must
// schedule it.
func (s *Scheduler) Request() bool {
	if s.pending {
		return false
	}
	s.pending = true
	return true
}

func (s *Scheduler) Pending() bool { return s.pending }

// Done is called once the scheduled frame has been drawn.
func (s *Scheduler) Done() { s.pending = false }

// Queue buffers commands between frames and applies them in push order.
type Queue struct {
	cmds  []Command
	sched Scheduler
}

// Push appends a command and reports whether a frame must be scheduled.
func (q *Queue) Push(c Command) bool {
	q.cmds = append(q.cmds, c)
	return q.sched.Request()
}

// Request asks for a frame without queueing a command.
func (q *Queue) Request() bool { return q.sched.Request() }

func (q *Queue) Len() int { return len(q.cmds) }

func (q *Queue) Pending() bool { return q.sched.Pending() }

// Drain applies every queued command to d and completes the frame. It
// reports whether any command changed the document.
func (q *Queue) Drain(d *Document) bool {
	cmds := q.cmds
	q.cmds = nil
	q.sched.Done()
	changed := false
	for _, c := range cmds {
		if c.Apply(d) {
			changed = true
		}
	}
	return changed
}
