package terminal

// SGRState tracks the style last emitted to the terminal so repeated styles cost nothing
// The zero value assumes the terminal is at its defaults, which holds after ResetText
type SGRState struct {
	last Style
}

// NewSGRState returns a state assuming the given style is active
func NewSGRState(active Style) SGRState {
	return SGRState{last: active.Resolved()}
}

// Last returns the style the terminal is known to be in
func (s *SGRState) Last() Style {
	return s.last
}

// Emit writes the minimal SGR sequence moving the terminal from the last style to st
// Returns false when nothing needed to be written
func (s *SGRState) Emit(w Writer, st Style, mode ColorMode) bool {
	st = st.Resolved()
	if st.Pack() == s.last.Pack() {
		return false
	}

	fgChanged := st.Fg != s.last.Fg
	bgChanged := st.Bg != s.last.Bg
	attrChanged := st.Attrs != s.last.Attrs

	switch {
	case attrChanged:
		// Attributes have no uniform off-codes, reset and rebuild the whole style
		writeFullSGR(w, st, mode)
	case fgChanged && bgChanged:
		w.Write(csi)
		st.Fg.writeParams(w, true, mode)
		w.WriteByte(';')
		st.Bg.writeParams(w, false, mode)
		w.WriteByte('m')
	case fgChanged:
		w.Write(csi)
		st.Fg.writeParams(w, true, mode)
		w.WriteByte('m')
	case bgChanged:
		w.Write(csi)
		st.Bg.writeParams(w, false, mode)
		w.WriteByte('m')
	}

	s.last = st
	return true
}

// writeFullSGR emits reset, attributes and both colors in one sequence
// Default channels are already covered by the leading reset
func writeFullSGR(w Writer, st Style, mode ColorMode) {
	w.Write(csi)
	w.WriteByte('0')
	for _, ac := range attrCodes {
		if st.Attrs&ac.attr != 0 {
			w.WriteByte(';')
			w.WriteByte(ac.code)
		}
	}
	if !st.Fg.IsDefault() {
		w.WriteByte(';')
		st.Fg.writeParams(w, true, mode)
	}
	if !st.Bg.IsDefault() {
		w.WriteByte(';')
		st.Bg.writeParams(w, false, mode)
	}
	w.WriteByte('m')
}
