// Package lyrics parses LRC files and follows playback through them.
package lyrics

import (
	"bufio"
	"cmp"
	"io"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Line is a single timestamped lyric line.
type Line struct {
	Time time.Duration
	Text string
}

// Lyrics holds the lines of an LRC file, sorted by time, and its header tags.
type Lyrics struct {
	Lines  []Line
	Title  string
	Artist string
	Album  string
	// Offset shifts every timestamp, from the [offset:ms] tag.
	Offset time.Duration
}

// LineAt returns the index of the line active at pos, or -1 before the first line.
func (l *Lyrics) LineAt(pos time.Duration) int {
	pos -= l.Offset
	// First line strictly after pos; the one before it is active.
	i, _ := slices.BinarySearchFunc(l.Lines, pos, func(line Line, t time.Duration) int {
		if line.Time <= t {
			return -1
		}
		return 1
	})
	return i - 1
}

var (
	// [mm:ss], [mm:ss.xx], [mm:ss.xxx] or [mm:ss:xx]
	timestampRe = regexp.MustCompile(`\[(\d+):(\d+)(?:[.:](\d{1,3}))?\]`)
	headerRe    = regexp.MustCompile(`^\[([a-z]+):(.*)\]$`)
)

// ParseLRC reads LRC lyrics. Lines without a timestamp are ignored; a line
// carrying several timestamps is repeated at each of them.
func ParseLRC(r io.Reader) (*Lyrics, error) {
	l := &Lyrics{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		raw := strings.TrimSpace(sc.Text())
		if raw == "" {
			continue
		}
		if m := headerRe.FindStringSubmatch(raw); m != nil {
			l.setHeader(strings.ToLower(m[1]), strings.TrimSpace(m[2]))
			continue
		}

		stamps := timestampRe.FindAllStringSubmatchIndex(raw, -1)
		if len(stamps) == 0 {
			continue
		}
		text := strings.TrimSpace(raw[stamps[len(stamps)-1][1]:])
		for _, s := range stamps {
			l.Lines = append(l.Lines, Line{
				Time: parseStamp(raw, s),
				Text: text,
			})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(l.Lines, func(a, b Line) int { return cmp.Compare(a.Time, b.Time) })
	return l, nil
}

func (l *Lyrics) setHeader(tag, value string) {
	switch tag {
	case "ar":
		l.Artist = value
	case "ti":
		l.Title = value
	case "al":
		l.Album = value
	case "offset":
		if ms, err := strconv.Atoi(value); err == nil {
			l.Offset = time.Duration(ms) * time.Millisecond
		}
	}
}

// parseStamp converts the submatch indexes of one timestampRe hit to a duration.
// The fractional part is read as a decimal fraction of a second.
func parseStamp(s string, idx []int) time.Duration {
	group := func(n int) string {
		if idx[2*n] < 0 {
			return ""
		}
		return s[idx[2*n]:idx[2*n+1]]
	}
	minutes, _ := strconv.Atoi(group(1))
	seconds, _ := strconv.Atoi(group(2))
	var millis int
	if frac := group(3); frac != "" {
		millis, _ = strconv.Atoi((frac + "00")[:3])
	}
	return time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(millis)*time.Millisecond
}
