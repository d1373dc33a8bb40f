package entity

import "time"

// NewsItem represents a news/announcement entry.
//
// Images holds fully-qualified URLs returned by the blob store at upload
// time; insertion order is display order. Client-supplied raw bytes are
// never persisted directly. ImageIDs holds the blob-store public IDs,
// index-aligned with Images, so that deletion does not have to re-derive
// identifiers from URL structure.
type NewsItem struct {
	ID       string
	Title    string
	Content  string
	Images   []string
	ImageIDs []string
	Date     time.Time
}
