package ui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/AndrewRayR/e-ink/pkg/input"
	"github.com/AndrewRayR/e-ink/pkg/render"
	"github.com/AndrewRayR/e-ink/pkg/store"
	"github.com/AndrewRayR/e-ink/pkg/version"
)

type rowKind uint8

const (
	rowBool rowKind = iota
	rowEnum
	rowInt
	rowZip
	rowInfo
	rowReset
)

type settingRow struct {
	label      string
	key        string
	kind       rowKind
	strChoices []string
	intChoices []int
}

var settingRows = []settingRow{
	{label: "Dark Mode", key: store.KeyDarkMode, kind: rowBool},
	{label: "Clock Format", key: store.KeyClockFormat, kind: rowEnum, strChoices: []string{"12", "24"}},
	{label: "Date Format", key: store.KeyDateFormat, kind: rowEnum, strChoices: []string{"long", "short", "iso"}},
	{label: "Refresh Mode", key: store.KeyRefreshMode, kind: rowEnum, strChoices: []string{"partial", "full"}},
	{label: "Auto Sleep", key: store.KeyAutoSleep, kind: rowInt, intChoices: []int{0, 5, 15, 30, 60}},
	{label: "Show Seconds", key: store.KeyShowSeconds, kind: rowBool},
	{label: "ZIP Code", key: store.KeyZipCode, kind: rowZip},
	{label: "Display Info", kind: rowInfo},
	{label: "Factory Reset", kind: rowReset},
}

const visibleSettings = 6

const zipMaxLen = 10

type settingsMode uint8

const (
	settingsList settingsMode = iota
	settingsZip
	settingsInfo
	settingsConfirmReset
)

// settingsScreen edits the preferences store: ENTER cycles finite-choice
// rows in place, the ZIP row opens a text prompt, and the last two rows open
// sub-screens.
type settingsScreen struct {
	deps     *Deps
	mode     settingsMode
	selected int
	scroll   int
	zipIn    *textInput
}

func newSettingsScreen(deps *Deps) *settingsScreen {
	return &settingsScreen{deps: deps}
}

func (s *settingsScreen) Draw(f *render.Frame) {
	switch s.mode {
	case settingsZip:
		s.zipIn.draw(f, s.deps.Fonts)
	case settingsInfo:
		s.drawInfo(f)
	case settingsConfirmReset:
		f.TextCentered(40, "Factory Reset", s.deps.Fonts.Title)
		f.TextCentered(62, "Erase all notes and settings?", s.deps.Fonts.Small)
		f.TextCentered(84, "ENTER=Confirm ESC=Cancel", s.deps.Fonts.Small)
	default:
		s.drawList(f)
	}
}

func (s *settingsScreen) drawList(f *render.Frame) {
	f.TextCentered(12, "SETTINGS", s.deps.Fonts.Title)

	end := s.scroll + visibleSettings
	if end > len(settingRows) {
		end = len(settingRows)
	}
	for i := s.scroll; i < end; i++ {
		y := 28 + (i-s.scroll)*14
		if i == s.selected {
			f.Text(2, y, ">", s.deps.Fonts.Small)
		}
		row := settingRows[i]
		f.Text(12, y, row.label, s.deps.Fonts.Small)
		f.Text(150, y, s.valueString(row), s.deps.Fonts.Small)
	}

	if s.scroll > 0 {
		f.Text(240, 28, "^", s.deps.Fonts.Small)
	}
	if end < len(settingRows) {
		f.Text(240, 98, "v", s.deps.Fonts.Small)
	}
	f.Text(5, 116, "ENTER=Edit ESC=Back", s.deps.Fonts.Small)
}

func (s *settingsScreen) drawInfo(f *render.Frame) {
	stats := s.deps.Surface.Stats()
	f.TextCentered(12, "DISPLAY INFO", s.deps.Fonts.Title)
	f.Text(5, 32, fmt.Sprintf("Panel      %dx%d mono", render.Width, render.Height), s.deps.Fonts.Small)
	f.Text(5, 46, fmt.Sprintf("Draws      %d (%d partial)", stats.Draws, stats.Partials), s.deps.Fonts.Small)
	f.Text(5, 60, fmt.Sprintf("Since full %d", stats.PartialsSinceFull), s.deps.Fonts.Small)
	f.Text(5, 74, fmt.Sprintf("Last full  %s", stats.LastFull.Format("15:04:05")), s.deps.Fonts.Small)
	f.Text(5, 88, fmt.Sprintf("Uptime     %s", formatUptime(s.deps.Now().Sub(s.deps.Started))), s.deps.Fonts.Small)
	f.Text(5, 102, fmt.Sprintf("Version    %s", version.Version), s.deps.Fonts.Small)
	f.Text(5, 116, "ESC=Back", s.deps.Fonts.Small)
}

func formatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	sec := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, sec)
}

func (s *settingsScreen) valueString(row settingRow) string {
	switch row.kind {
	case rowBool:
		if s.deps.Settings.Bool(row.key, false) {
			return "On"
		}
		return "Off"
	case rowEnum:
		return s.deps.Settings.String(row.key, row.strChoices[0])
	case rowInt:
		v := s.deps.Settings.Int(row.key, row.intChoices[0])
		if v == 0 {
			return "Never"
		}
		return fmt.Sprintf("%dm", v)
	case rowZip:
		if zip := s.deps.Settings.String(row.key, ""); zip != "" {
			return zip
		}
		return "(not set)"
	default:
		return "..."
	}
}

func (s *settingsScreen) HandleKey(k input.Key) Action {
	switch s.mode {
	case settingsZip:
		return s.handleZip(k)
	case settingsInfo:
		if k.Kind == input.KindEsc {
			s.mode = settingsList
			return redraw()
		}
		return stay
	case settingsConfirmReset:
		return s.handleConfirmReset(k)
	default:
		return s.handleList(k)
	}
}

func (s *settingsScreen) handleList(k input.Key) Action {
	switch {
	case k.Kind == input.KindUp || k.Rune == 'w':
		if s.selected > 0 {
			s.selected--
			if s.selected < s.scroll {
				s.scroll = s.selected
			}
			return redraw()
		}
	case k.Kind == input.KindDown || k.Rune == 's':
		if s.selected < len(settingRows)-1 {
			s.selected++
			if s.selected >= s.scroll+visibleSettings {
				s.scroll = s.selected - visibleSettings + 1
			}
			return redraw()
		}
	case k.Kind == input.KindEnter:
		return s.edit(settingRows[s.selected])
	case k.Kind == input.KindEsc:
		return goTo(ScreenMainMenu)
	}
	return stay
}

func (s *settingsScreen) edit(row settingRow) Action {
	switch row.kind {
	case rowBool, rowEnum, rowInt:
		s.cycle(row)
		// A dark-mode flip repaints everything, so take the full refresh.
		return redrawFull()
	case rowZip:
		s.zipIn = newTextInput("ZIP Code:", zipMaxLen)
		s.mode = settingsZip
		return redraw()
	case rowInfo:
		s.mode = settingsInfo
		return redraw()
	default:
		s.mode = settingsConfirmReset
		return redraw()
	}
}

// cycle advances a finite-choice row to its next value and persists.
func (s *settingsScreen) cycle(row settingRow) {
	var next any
	switch row.kind {
	case rowBool:
		next = !s.deps.Settings.Bool(row.key, false)
	case rowEnum:
		cur := s.deps.Settings.String(row.key, row.strChoices[0])
		next = row.strChoices[nextIndex(len(row.strChoices), func(i int) bool { return row.strChoices[i] == cur })]
	case rowInt:
		cur := s.deps.Settings.Int(row.key, row.intChoices[0])
		next = row.intChoices[nextIndex(len(row.intChoices), func(i int) bool { return row.intChoices[i] == cur })]
	}
	if err := s.deps.Settings.Set(row.key, next); err != nil {
		slog.Error("settings save failed", "key", row.key, "error", err)
	}
}

// nextIndex returns the index after the first match, wrapping; an unknown
// current value restarts at the first choice.
func nextIndex(n int, match func(int) bool) int {
	for i := 0; i < n; i++ {
		if match(i) {
			return (i + 1) % n
		}
	}
	return 0
}

func (s *settingsScreen) handleZip(k input.Key) Action {
	switch s.zipIn.handle(k) {
	case inputDone:
		if err := s.deps.Settings.Set(store.KeyZipCode, s.zipIn.text()); err != nil {
			slog.Error("settings save failed", "key", store.KeyZipCode, "error", err)
		}
		s.mode = settingsList
		return redraw()
	case inputAborted:
		s.mode = settingsList
		return redraw()
	default:
		return redraw()
	}
}

func (s *settingsScreen) handleConfirmReset(k input.Key) Action {
	switch k.Kind {
	case input.KindEnter:
		if err := s.deps.Notes.DeleteAll(); err != nil {
			slog.Error("factory reset: notes wipe failed", "error", err)
		}
		if err := s.deps.Settings.ResetDefaults(); err != nil {
			slog.Error("factory reset: settings reset failed", "error", err)
		}
		slog.Info("factory reset complete")
		s.mode = settingsList
		return redrawFull()
	case input.KindEsc:
		s.mode = settingsList
		return redraw()
	}
	return stay
}

func (s *settingsScreen) Tick(time.Time) Action {
	return stay
}
