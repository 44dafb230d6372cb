package ui

import (
	"fmt"
	"time"

	"github.com/AndrewRayR/e-ink/pkg/input"
	"github.com/AndrewRayR/e-ink/pkg/render"
	"github.com/AndrewRayR/e-ink/pkg/store"
)

const (
	visibleNotes  = 5
	titleListMax  = 25
	pagerWrapCols = 35
)

// viewNotesScreen lists notes five at a time with an auto-scrolling cursor,
// and opens a read-only word-wrapped pager on ENTER.
type viewNotesScreen struct {
	deps     *Deps
	selected int
	scroll   int
	paging   bool
	page     store.Note
}

func newViewNotes(deps *Deps) *viewNotesScreen {
	return &viewNotesScreen{deps: deps}
}

func (v *viewNotesScreen) Draw(f *render.Frame) {
	if v.paging {
		v.drawPager(f)
		return
	}

	notes := v.deps.Notes.List()
	if len(notes) == 0 {
		f.TextCentered(56, "No notes yet", v.deps.Fonts.Body)
		f.TextCentered(78, "Press ESC to go back", v.deps.Fonts.Small)
		return
	}

	f.TextCentered(12, "YOUR NOTES", v.deps.Fonts.Title)

	end := v.scroll + visibleNotes
	if end > len(notes) {
		end = len(notes)
	}
	for i := v.scroll; i < end; i++ {
		y := 30 + (i-v.scroll)*18
		if i == v.selected {
			f.Text(5, y, ">", v.deps.Fonts.Small)
		}
		title := render.Truncate(notes[i].Title, titleListMax)
		f.Text(15, y, fmt.Sprintf("%d. %s", i+1, title), v.deps.Fonts.Small)
	}

	if v.scroll > 0 {
		f.Text(238, 30, "^", v.deps.Fonts.Small)
	}
	if end < len(notes) {
		f.Text(238, 102, "v", v.deps.Fonts.Small)
	}
	f.Text(5, 116, "ENTER=View ESC=Back", v.deps.Fonts.Small)
}

func (v *viewNotesScreen) drawPager(f *render.Frame) {
	f.Text(5, 14, render.Truncate(v.page.Title, 30), v.deps.Fonts.Title)

	y := 30
	const lineHeight = 12
	for _, line := range render.Wrap(v.page.Content, pagerWrapCols) {
		if y > 90 {
			f.Text(5, y, "...", v.deps.Fonts.Small)
			break
		}
		f.Text(5, y, line, v.deps.Fonts.Small)
		y += lineHeight
	}

	f.Text(5, 116, "ESC=Back", v.deps.Fonts.Small)
}

func (v *viewNotesScreen) HandleKey(k input.Key) Action {
	if v.paging {
		if k.Kind == input.KindEsc {
			v.paging = false
			return redraw()
		}
		return stay
	}

	notes := v.deps.Notes.List()
	if len(notes) == 0 {
		// Only ESC leaves the empty screen; everything else is a no-op.
		if k.Kind == input.KindEsc {
			return goTo(ScreenNotesMenu)
		}
		return stay
	}

	switch {
	case k.Kind == input.KindUp || k.Rune == 'w':
		if v.selected > 0 {
			v.selected--
			if v.selected < v.scroll {
				v.scroll = v.selected
			}
			return redraw()
		}
	case k.Kind == input.KindDown || k.Rune == 's':
		if v.selected < len(notes)-1 {
			v.selected++
			if v.selected >= v.scroll+visibleNotes {
				v.scroll = v.selected - visibleNotes + 1
			}
			return redraw()
		}
	case k.Digit() >= 1:
		if n := k.Digit(); n <= len(notes) {
			v.selected = n - 1
			v.clampScroll()
			return redraw()
		}
	case k.Kind == input.KindEnter:
		v.paging = true
		v.page = notes[v.selected]
		return redraw()
	case k.Kind == input.KindEsc:
		return goTo(ScreenNotesMenu)
	}
	return stay
}

// clampScroll keeps the cursor inside the visible window after a jump.
func (v *viewNotesScreen) clampScroll() {
	if v.selected < v.scroll {
		v.scroll = v.selected
	}
	if v.selected >= v.scroll+visibleNotes {
		v.scroll = v.selected - visibleNotes + 1
	}
}

func (v *viewNotesScreen) Tick(time.Time) Action {
	return stay
}
