package playlist

import (
	"slices"

	"github.com/samber/lo"
	"github.com/samber/lo/mutable"
)

// Clone returns a copy of songs that never aliases the input.
// A nil input yields an empty, non-nil slice.
func Clone(songs []Song) []Song {
	out := make([]Song, len(songs))
	copy(out, songs)
	return out
}

// Shuffle returns a uniformly shuffled copy of songs.
func Shuffle(songs []Song) []Song {
	out := Clone(songs)
	mutable.Shuffle(out)
	return out
}

// IndexOf returns the position of the song with the same ID, or -1.
func IndexOf(songs []Song, song *Song) int {
	if song == nil {
		return -1
	}
	_, idx, ok := lo.FindIndexOf(songs, func(s Song) bool {
		return s.ID == song.ID
	})
	if !ok {
		return -1
	}
	return idx
}

// Contains reports whether a song with the same ID is present.
func Contains(songs []Song, song Song) bool {
	return lo.ContainsBy(songs, func(s Song) bool { return s.ID == song.ID })
}

// Remove returns a copy of songs without the song matching ID.
func Remove(songs []Song, song Song) []Song {
	return lo.Reject(Clone(songs), func(s Song, _ int) bool {
		return s.ID == song.ID
	})
}

// IDs returns the song IDs in order.
func IDs(songs []Song) []int64 {
	return lo.Map(songs, func(s Song, _ int) int64 { return s.ID })
}

// SameOrder reports whether both lists hold the same IDs in the same order.
func SameOrder(a, b []Song) bool {
	return slices.Equal(IDs(a), IDs(b))
}

// SameSongs reports whether both lists hold the same multiset of IDs,
// regardless of order.
func SameSongs(a, b []Song) bool {
	if len(a) != len(b) {
		return false
	}
	ia, ib := IDs(a), IDs(b)
	slices.Sort(ia)
	slices.Sort(ib)
	return slices.Equal(ia, ib)
}

// SameSong reports whether both pointers refer to songs with the same ID.
// Two nil songs are the same.
func SameSong(a, b *Song) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID == b.ID
}
