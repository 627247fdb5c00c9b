// Package library builds the song list from local music folders.
package library

import (
	"cmp"
	"fmt"
	"hash/fnv"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/dhowden/tag"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/llehouerou/wyplayer/internal/audio"
	"github.com/llehouerou/wyplayer/internal/playlist"
)

const numWorkers = 8

// Scanner turns audio files into songs.
type Scanner struct {
	log zerolog.Logger
	// probe returns the duration of a file; audio.Probe by default.
	probe func(path string) (int64, error)
}

// NewScanner creates a scanner that decodes files to measure durations.
func NewScanner(log zerolog.Logger) *Scanner {
	return &Scanner{
		log: log.With().Str("component", "library").Logger(),
		probe: func(path string) (int64, error) {
			d, err := audio.Probe(path)
			return d.Milliseconds(), err
		},
	}
}

type fileEntry struct {
	path string
	size int64
}

type scanResult struct {
	index int
	song  playlist.Song
	err   error
}

// Scan walks every source (a directory or a single file) and returns the
// songs found, ordered by artist, album, then path. Unreadable files are
// logged and skipped; only a missing source is an error.
func (s *Scanner) Scan(sources []string) ([]playlist.Song, error) {
	files, err := discover(sources)
	if err != nil {
		return nil, err
	}

	jobs := make(chan int)
	results := make(chan scanResult, len(files))
	covers := coverCache{}
	var coversMu sync.Mutex

	var wg sync.WaitGroup
	for range min(numWorkers, max(len(files), 1)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				song, err := s.readSong(files[i].path)
				if err == nil {
					coversMu.Lock()
					song.Album.PicURL = covers.picURL(files[i].path)
					coversMu.Unlock()
				}
				results <- scanResult{index: i, song: song, err: err}
			}
		}()
	}
	for i := range files {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	close(results)

	songs := make([]playlist.Song, 0, len(files))
	var total int64
	for r := range results {
		if r.err != nil {
			s.log.Warn().Err(r.err).Str("path", files[r.index].path).Msg("skipping file")
			continue
		}
		total += files[r.index].size
		songs = append(songs, r.song)
	}

	slices.SortFunc(songs, func(a, b playlist.Song) int {
		return cmp.Or(
			strings.Compare(a.ArtistNames(), b.ArtistNames()),
			strings.Compare(a.Album.Name, b.Album.Name),
			strings.Compare(a.URL, b.URL),
		)
	})

	s.log.Info().
		Int("songs", len(songs)).
		Str("size", humanize.Bytes(uint64(total))).
		Msg("library scanned")
	return songs, nil
}

// discover lists the audio files under sources, deduplicated.
func discover(sources []string) ([]fileEntry, error) {
	seen := map[string]bool{}
	var files []fileEntry
	add := func(path string, size int64) {
		if seen[path] || !audio.IsAudioFile(path) {
			return
		}
		seen[path] = true
		files = append(files, fileEntry{path: path, size: size})
	}

	for _, src := range sources {
		abs, err := filepath.Abs(src)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", src, err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("library source: %w", err)
		}
		if !info.IsDir() {
			add(abs, info.Size())
			continue
		}
		err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // unreadable subtrees are skipped
			}
			if d.IsDir() {
				return nil
			}
			fi, err := d.Info()
			if err != nil {
				return nil //nolint:nilerr // vanished during walk
			}
			add(path, fi.Size())
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", abs, err)
		}
	}
	return files, nil
}

// readSong builds a song from the tags and decoded length of path.
func (s *Scanner) readSong(path string) (playlist.Song, error) {
	dt, err := s.probe(path)
	if err != nil {
		return playlist.Song{}, err
	}

	song := playlist.Song{
		ID:   stableID(path),
		Name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Dt:   dt,
		URL:  "file://" + path,
	}

	f, err := os.Open(path)
	if err != nil {
		return playlist.Song{}, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		// Untagged files still play; keep the filename as the title.
		return song, nil //nolint:nilerr // tags are optional
	}
	if m.Title() != "" {
		song.Name = m.Title()
	}
	if artist := m.Artist(); artist != "" {
		song.Artists = []playlist.Artist{{ID: stableID("artist:" + artist), Name: artist}}
	}
	if album := m.Album(); album != "" {
		albumArtist := cmp.Or(m.AlbumArtist(), m.Artist())
		song.Album = playlist.Album{ID: stableID("album:" + albumArtist + "/" + album), Name: album}
	}
	return song, nil
}

// stableID derives a positive, non-zero ID from key.
func stableID(key string) int64 {
	h := fnv.New64a()
	h.Write([]byte(key))
	id := int64(h.Sum64() & (1<<63 - 1))
	if id == 0 {
		return 1
	}
	return id
}
