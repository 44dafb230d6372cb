package render

// Seven-segment layout:
//
//	 aaa
//	f   b
//	 ggg
//	e   c
//	 ddd
var segments = map[byte][7]bool{
	'0': {true, true, true, true, true, true, false},
	'1': {false, true, true, false, false, false, false},
	'2': {true, true, false, true, true, false, true},
	'3': {true, true, true, true, false, false, true},
	'4': {false, true, true, false, false, true, true},
	'5': {true, false, true, true, false, true, true},
	'6': {true, false, true, true, true, true, true},
	'7': {true, true, true, false, false, false, false},
	'8': {true, true, true, true, true, true, true},
	'9': {true, true, true, true, false, true, true},
	' ': {false, false, false, false, false, false, false},
}

// Segment geometry shared by the digit and the advance calculations.
const (
	segWidth    = 4
	segLength   = 20
	digitAdv    = 30
	colonAdv    = 10
	sevenSegHgt = 2*segLength + 3*segWidth
)

// SevenSegWidth returns the advance of a digits-and-colons string, without
// the trailing gap.
func SevenSegWidth(s string) int {
	w := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ':' {
			w += colonAdv
		} else {
			w += digitAdv
		}
	}
	if w >= digitAdv {
		w -= digitAdv - (2*segWidth + segLength)
	}
	return w
}

// SevenSegTime draws a time string like "12:34" in seven-segment style with
// its top-left corner at (x, y). Characters outside [0-9 :] are skipped.
func (f *Frame) SevenSegTime(s string, x, y int) {
	cur := x
	for i := 0; i < len(s); i++ {
		if s[i] == ':' {
			f.FillRect(cur+3, y+15, cur+7, y+19)
			f.FillRect(cur+3, y+35, cur+7, y+39)
			cur += colonAdv
			continue
		}
		f.sevenSegDigit(s[i], cur, y)
		cur += digitAdv
	}
}

func (f *Frame) sevenSegDigit(digit byte, x, y int) {
	seg, ok := segments[digit]
	if !ok {
		return
	}
	w := segWidth
	l := segLength
	if seg[0] { // a, top
		f.FillRect(x+w, y, x+w+l, y+w)
	}
	if seg[1] { // b, top right
		f.FillRect(x+w+l, y+w, x+w+l+w, y+w+l)
	}
	if seg[2] { // c, bottom right
		f.FillRect(x+w+l, y+w+l+w, x+w+l+w, y+w+l+w+l)
	}
	if seg[3] { // d, bottom
		f.FillRect(x+w, y+w+l+w+l, x+w+l, y+w+l+w+l+w)
	}
	if seg[4] { // e, bottom left
		f.FillRect(x, y+w+l+w, x+w, y+w+l+w+l)
	}
	if seg[5] { // f, top left
		f.FillRect(x, y+w, x+w, y+w+l)
	}
	if seg[6] { // g, middle
		f.FillRect(x+w, y+w+l, x+w+l, y+w+l+w)
	}
}
