package note

import "time"

// TimestampLayout is the textual layout accepted in frontmatter timestamp
// fields: date plus hour:minute.
const TimestampLayout = "2006-01-02 15:04"

// FieldNames holds the two configurable frontmatter field names used for
// the formatting comparison.
type FieldNames struct {
	Modified  string
	Formatted string
}

// Note is a per-file frontmatter snapshot. A zero Modified or Formatted
// time means the field was absent or unparseable.
type Note struct {
	Title     string // From frontmatter `title`, first H1, or the filename
	FilePath  string // Absolute path to file
	RelPath   string // Path relative to the vault root (for display and scoping)
	Preview   string // Short body excerpt for the preview pane
	Modified  time.Time
	Formatted time.Time
}
