package model

import "time"

// Note is a stored piece of text, identified solely by the digest of its content.
// Notes are immutable: editing one produces a new note under a new digest.
type Note struct {
	Digest     string    `json:"digest"`
	Content    string    `json:"content"`
	Size       int64     `json:"size"`
	ModifiedAt time.Time `json:"modified_at"`
}

// RenderedNote is a note converted to HTML, ready for embedding in a page.
// Title and Description are empty when the note has no level-1 heading or
// no paragraph respectively.
type RenderedNote struct {
	Digest      string `json:"digest"`
	HTML        string `json:"html"`
	TOC         string `json:"toc,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}
