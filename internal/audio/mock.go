// internal/audio/mock.go
package audio

// Mock is a test double for Device. It records every command and lets tests
// inject media events and buffered ranges.
type Mock struct {
	src         string
	currentTime float64
	level       float64
	buffered    []Range
	playing     bool

	loads      []string
	playCalls  int
	pauseCalls int
	seekCalls  []float64
	volumes    []float64

	events chan Event
	closed bool
}

// NewMock creates a new mock device for testing.
func NewMock() *Mock {
	return &Mock{
		level:  1,
		events: make(chan Event, eventBufferSize),
	}
}

func (m *Mock) Load(src string) {
	m.loads = append(m.loads, src)
	m.src = src
	m.currentTime = 0
	m.playing = false
	m.buffered = nil
}

func (m *Mock) Play() {
	m.playCalls++
	m.playing = true
}

func (m *Mock) Pause() {
	m.pauseCalls++
	m.playing = false
}

func (m *Mock) SetCurrentTime(seconds float64) {
	m.seekCalls = append(m.seekCalls, seconds)
	m.currentTime = seconds
}

func (m *Mock) SetVolume(level float64) {
	m.level = clampLevel(level)
	m.volumes = append(m.volumes, m.level)
}

func (m *Mock) CurrentTime() float64 { return m.currentTime }

func (m *Mock) Buffered() []Range { return m.buffered }

func (m *Mock) Events() <-chan Event { return m.events }

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

// SetBuffered sets the ranges returned by Buffered.
func (m *Mock) SetBuffered(ranges ...Range) { m.buffered = ranges }

// Emit queues an event on the event stream.
func (m *Mock) Emit(e Event) { m.events <- e }

func (m *Mock) Src() string { return m.src }

func (m *Mock) Loads() []string { return m.loads }

func (m *Mock) PlayCalls() int { return m.playCalls }

func (m *Mock) PauseCalls() int { return m.pauseCalls }

func (m *Mock) SeekCalls() []float64 { return m.seekCalls }

func (m *Mock) Volumes() []float64 { return m.volumes }

func (m *Mock) Level() float64 { return m.level }

func (m *Mock) Playing() bool { return m.playing }

func (m *Mock) Closed() bool { return m.closed }

// Commands returns the total number of commands issued to the device.
func (m *Mock) Commands() int {
	return len(m.loads) + m.playCalls + m.pauseCalls + len(m.seekCalls) + len(m.volumes)
}

// Verify Mock implements Device at compile time.
var _ Device = (*Mock)(nil)
