package audio

import (
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/rs/zerolog"
)

const (
	eventBufferSize    = 64
	timeUpdateInterval = 250 * time.Millisecond
)

// speakerRate is the sample rate the speaker was initialized with.
// beep only supports a single speaker per process.
var (
	speakerOnce sync.Once
	speakerRate beep.SampleRate
	speakerErr  error
)

// Verify Speaker implements Device at compile time.
var _ Device = (*Speaker)(nil)

// Speaker plays local audio files through the system speaker.
//
// Lock order: s.mu before speaker.Lock. Callbacks running on the speaker
// goroutine never take s.mu synchronously.
type Speaker struct {
	mu       sync.Mutex
	src      string
	gen      int
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	attached bool // sequence currently queued on the speaker
	level    float64

	events chan Event
	done   chan struct{}
	closed bool
	log    zerolog.Logger
}

// NewSpeaker creates a speaker device at the given volume level.
func NewSpeaker(level float64, log zerolog.Logger) *Speaker {
	s := &Speaker{
		level:  clampLevel(level),
		events: make(chan Event, eventBufferSize),
		done:   make(chan struct{}),
		log:    log.With().Str("component", "speaker").Logger(),
	}
	go s.tickLoop()
	return s
}

// Events returns the media event stream.
func (s *Speaker) Events() <-chan Event { return s.events }

// Load stops the current source and decodes src in the background.
func (s *Speaker) Load(src string) {
	s.mu.Lock()
	s.releaseLocked()
	s.gen++
	gen := s.gen
	s.src = src
	s.mu.Unlock()

	go s.decode(gen, src)
}

func (s *Speaker) decode(gen int, src string) {
	f, streamer, format, err := open(PathFromSrc(src))
	if err != nil {
		s.log.Warn().Err(err).Str("src", src).Msg("load failed")
		s.emit(Event{Kind: EventError, Src: src, Err: err}, false)
		return
	}

	speakerOnce.Do(func() {
		speakerRate = format.SampleRate
		speakerErr = speaker.Init(speakerRate, speakerRate.N(time.Second/10))
	})
	if speakerErr != nil {
		streamer.Close()
		f.Close()
		s.emit(Event{Kind: EventError, Src: src, Err: speakerErr}, false)
		return
	}

	s.mu.Lock()
	if gen != s.gen || s.closed {
		// Superseded by a newer Load.
		s.mu.Unlock()
		streamer.Close()
		f.Close()
		return
	}
	var out beep.Streamer = streamer
	if format.SampleRate != speakerRate {
		out = beep.Resample(4, format.SampleRate, speakerRate, streamer)
	}
	s.file = f
	s.streamer = streamer
	s.format = format
	s.ctrl = &beep.Ctrl{Streamer: out, Paused: true}
	s.volume = &effects.Volume{Streamer: s.ctrl, Base: 2, Volume: levelToVolume(s.level)}
	s.mu.Unlock()

	s.log.Debug().Str("src", src).Dur("duration", format.SampleRate.D(streamer.Len())).Msg("loaded")
	s.emit(Event{Kind: EventCanPlay, Src: src}, false)
}

// Play starts or resumes playback of the loaded source.
func (s *Speaker) Play() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctrl == nil {
		return
	}
	if !s.attached {
		gen := s.gen
		src := s.src
		s.attached = true
		s.ctrl.Paused = false
		speaker.Play(beep.Seq(s.volume, beep.Callback(func() {
			go s.finished(gen, src)
		})))
		return
	}
	speaker.Lock()
	s.ctrl.Paused = false
	speaker.Unlock()
}

func (s *Speaker) finished(gen int, src string) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.attached = false
	s.mu.Unlock()
	s.emit(Event{Kind: EventEnded, Src: src}, false)
}

// Pause pauses playback.
func (s *Speaker) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctrl == nil {
		return
	}
	speaker.Lock()
	s.ctrl.Paused = true
	speaker.Unlock()
}

// SetCurrentTime seeks to seconds, clamped to the track bounds.
func (s *Speaker) SetCurrentTime(seconds float64) {
	s.mu.Lock()
	if s.streamer == nil {
		s.mu.Unlock()
		return
	}
	pos := s.format.SampleRate.N(time.Duration(seconds * float64(time.Second)))
	pos = min(max(pos, 0), max(s.streamer.Len()-1, 0))
	speaker.Lock()
	err := s.streamer.Seek(pos)
	speaker.Unlock()
	src := s.src
	now := s.currentTimeLocked()
	s.mu.Unlock()

	if err != nil {
		s.log.Warn().Err(err).Float64("seconds", seconds).Msg("seek failed")
		return
	}
	s.emit(Event{Kind: EventTimeUpdate, Src: src, Time: now}, true)
}

// SetVolume sets the output level (0.0 to 1.0).
func (s *Speaker) SetVolume(level float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.level = clampLevel(level)
	if s.volume == nil {
		return
	}
	speaker.Lock()
	s.volume.Volume = levelToVolume(s.level)
	s.volume.Silent = s.level == 0
	speaker.Unlock()
}

// CurrentTime returns the playback position in seconds.
func (s *Speaker) CurrentTime() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentTimeLocked()
}

func (s *Speaker) currentTimeLocked() float64 {
	if s.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := s.streamer.Position()
	speaker.Unlock()
	return s.format.SampleRate.D(pos).Seconds()
}

// Buffered reports the whole decoded file as buffered once loaded.
func (s *Speaker) Buffered() []Range {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.streamer == nil {
		return nil
	}
	return []Range{{Start: 0, End: s.format.SampleRate.D(s.streamer.Len()).Seconds()}}
}

// Close stops playback and releases the current source.
func (s *Speaker) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.gen++
	s.releaseLocked()
	close(s.done)
	return nil
}

func (s *Speaker) releaseLocked() {
	if s.attached {
		speaker.Clear()
		s.attached = false
	}
	if s.streamer != nil {
		s.streamer.Close()
		s.streamer = nil
	}
	if s.file != nil {
		s.file.Close()
		s.file = nil
	}
	s.ctrl = nil
	s.volume = nil
}

func (s *Speaker) tickLoop() {
	t := time.NewTicker(timeUpdateInterval)
	defer t.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-t.C:
			s.mu.Lock()
			playing := s.attached && s.ctrl != nil && !s.ctrl.Paused
			src := s.src
			var now float64
			if playing {
				now = s.currentTimeLocked()
			}
			s.mu.Unlock()
			if playing {
				s.emit(Event{Kind: EventTimeUpdate, Src: src, Time: now}, true)
			}
		}
	}
}

// emit delivers an event. Lossy events (time updates) are dropped when the
// buffer is full; the others wait for room unless the device is closed.
func (s *Speaker) emit(e Event, lossy bool) {
	if lossy {
		select {
		case s.events <- e:
		default:
		}
		return
	}
	select {
	case s.events <- e:
	case <-s.done:
	}
}
