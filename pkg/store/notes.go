// Package store persists the two on-device collections, notes and settings,
// as human-readable JSON files rewritten wholesale on every mutation. The
// process is the only writer, so there is no cross-process locking.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Note is one saved note. List order is creation order.
type Note struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Created string `json:"created"`
}

const createdFormat = "2006-01-02 15:04:05"

// Notes is the notes collection backed by notes.json.
type Notes struct {
	path  string
	notes []Note
	now   func() time.Time
}

// OpenNotes loads the notes file from dir, falling back to an empty list if
// the file is missing or unreadable.
func OpenNotes(dir string) (*Notes, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	n := &Notes{
		path: filepath.Join(dir, "notes.json"),
		now:  time.Now,
	}
	n.load()
	return n, nil
}

func (n *Notes) load() {
	data, err := os.ReadFile(n.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("notes file unreadable, starting empty", "path", n.path, "error", err)
		}
		n.notes = nil
		return
	}
	var notes []Note
	if err := json.Unmarshal(data, &notes); err != nil {
		slog.Warn("notes file corrupt, starting empty", "path", n.path, "error", err)
		n.notes = nil
		return
	}
	n.notes = notes
}

func (n *Notes) save() error {
	data, err := json.MarshalIndent(n.notes, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal notes: %w", err)
	}
	if err := os.WriteFile(n.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write notes file: %w", err)
	}
	return nil
}

// Create appends a new note and persists the list. IDs are assigned as
// max(existing)+1 so deletions can never produce a duplicate.
func (n *Notes) Create(title, content string) (Note, error) {
	id := 1
	for _, note := range n.notes {
		if note.ID >= id {
			id = note.ID + 1
		}
	}
	note := Note{
		ID:      id,
		Title:   title,
		Content: content,
		Created: n.now().Format(createdFormat),
	}
	n.notes = append(n.notes, note)
	if err := n.save(); err != nil {
		return note, err
	}
	return note, nil
}

// List returns all notes in creation order. The slice is shared; callers
// must not mutate it.
func (n *Notes) List() []Note {
	return n.notes
}

// Get returns the note with the given id.
func (n *Notes) Get(id int) (Note, bool) {
	for _, note := range n.notes {
		if note.ID == id {
			return note, true
		}
	}
	return Note{}, false
}

// Update replaces the title and content of the note with the given id and
// persists. It reports whether the note existed.
func (n *Notes) Update(id int, title, content string) (bool, error) {
	for i := range n.notes {
		if n.notes[i].ID == id {
			n.notes[i].Title = title
			n.notes[i].Content = content
			return true, n.save()
		}
	}
	return false, nil
}

// Delete removes the note with the given id, if present, and persists.
func (n *Notes) Delete(id int) error {
	kept := n.notes[:0]
	for _, note := range n.notes {
		if note.ID != id {
			kept = append(kept, note)
		}
	}
	n.notes = kept
	return n.save()
}

// DeleteAll clears the collection and persists the empty list.
func (n *Notes) DeleteAll() error {
	n.notes = nil
	return n.save()
}

// Len returns the number of notes.
func (n *Notes) Len() int {
	return len(n.notes)
}
