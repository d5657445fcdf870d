package services

import "github.com/lib/pq"

// Bookmark toggle actions
const (
	BookmarkAdded   = "added"
	BookmarkRemoved = "removed"
)

// ToggleBookmark flips membership of restroomID in the bookmark set: absent
// ids are appended, present ids removed. Toggling twice restores the
// original set.
func ToggleBookmark(bookmarks pq.Int64Array, restroomID int64) (pq.Int64Array, string) {
	next, removed := RemoveBookmark(bookmarks, restroomID)
	if removed {
		return next, BookmarkRemoved
	}
	return append(next, restroomID), BookmarkAdded
}

// RemoveBookmark drops restroomID from the set, reporting whether it was
// present.
func RemoveBookmark(bookmarks pq.Int64Array, restroomID int64) (pq.Int64Array, bool) {
	next := make(pq.Int64Array, 0, len(bookmarks))
	removed := false
	for _, id := range bookmarks {
		if id == restroomID {
			removed = true
			continue
		}
		next = append(next, id)
	}
	return next, removed
}

// HasBookmark reports set membership.
func HasBookmark(bookmarks pq.Int64Array, restroomID int64) bool {
	for _, id := range bookmarks {
		if id == restroomID {
			return true
		}
	}
	return false
}
