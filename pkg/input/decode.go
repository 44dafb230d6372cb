package input

// decoder turns raw terminal bytes into key tokens. Bytes may arrive split
// across reads, so an incomplete escape sequence is carried until the next
// feed; flush resolves a dangling sequence (a bare ESC press) after a read
// timeout.
type decoder struct {
	pending []byte
}

func (d *decoder) feed(b []byte) []Key {
	d.pending = append(d.pending, b...)
	var keys []Key
	for len(d.pending) > 0 {
		consumed, key, ok := decodeOne(d.pending)
		if !ok {
			// Incomplete escape sequence, wait for more bytes.
			break
		}
		d.pending = d.pending[consumed:]
		if key != nil {
			keys = append(keys, *key)
		}
	}
	if len(d.pending) == 0 {
		d.pending = nil
	}
	return keys
}

// flush resolves buffered bytes after a quiet period: a sequence that never
// completed degrades to ESC.
func (d *decoder) flush() []Key {
	if len(d.pending) == 0 {
		return nil
	}
	d.pending = nil
	return []Key{Esc}
}

// decodeOne decodes the first token in b. It returns ok=false when b holds
// the prefix of an escape sequence and more bytes are needed.
func decodeOne(b []byte) (consumed int, key *Key, ok bool) {
	switch c := b[0]; {
	case c == 0x1b:
		return decodeEscape(b)
	case c == '\r' || c == '\n':
		return 1, &Enter, true
	case c == 0x7f || c == 0x08:
		return 1, &Backspace, true
	case c == 0x03:
		k := Interrupt
		return 1, &k, true
	case c >= 0x20 && c < 0x7f:
		k := Rune(rune(c))
		return 1, &k, true
	default:
		// Control byte with no mapping.
		return 1, nil, true
	}
}

func decodeEscape(b []byte) (consumed int, key *Key, ok bool) {
	if len(b) < 2 {
		return 0, nil, false
	}
	if b[1] != '[' {
		// ESC followed by a non-CSI byte: treat as a bare ESC and leave the
		// second byte for the next round.
		return 1, &Esc, true
	}
	if len(b) < 3 {
		return 0, nil, false
	}
	switch b[2] {
	case 'A':
		return 3, &Up, true
	case 'B':
		return 3, &Down, true
	case 'C':
		return 3, &Right, true
	case 'D':
		return 3, &Left, true
	}
	// Unrecognized CSI: consume through its final byte and degrade to ESC.
	for i := 2; i < len(b); i++ {
		if b[i] >= 0x40 && b[i] <= 0x7e {
			return i + 1, &Esc, true
		}
	}
	return 0, nil, false
}
