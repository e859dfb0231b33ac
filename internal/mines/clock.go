package mines

// Clock tracks elapsed game time from externally supplied monotonic
// milliseconds. It owns no timers.
type Clock struct {
	now, start int64
	seconds    int
	running    bool
}

func (c *Clock) Start() {
	c.start = c.now
	c.seconds = 0
	c.running = true
}

func (c *Clock) Stop() {
	c.running = false
}

// Tick records the current time and reports whether Seconds changed.
func (c *Clock) Tick(millis int64) bool {
	c.now = millis
	if !c.running {
		return false
	}
	seconds := int((c.now - c.start) / 1000)
	if seconds == c.seconds {
		return false
	}
	c.seconds = seconds
	return true
}

func (c *Clock) Seconds() int  { return c.seconds }
func (c *Clock) Running() bool { return c.running }
