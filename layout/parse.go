package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// String formats d in the syntax Parse accepts
func (d Dimension) String() string {
	switch d.kind {
	case KindAuto:
		return "auto"
	case KindMinContent:
		return "min-content"
	case KindMaxContent:
		return "max-content"
	case KindExpr:
		var sb strings.Builder
		for i, t := range d.terms {
			switch {
			case i == 0:
				sb.WriteString(t.String())
			case t.value < 0:
				sb.WriteString(" - ")
				sb.WriteString(t.Neg().String())
			default:
				sb.WriteString(" + ")
				sb.WriteString(t.String())
			}
		}
		return sb.String()
	default:
		return strconv.Itoa(d.value) + d.unit.String()
	}
}

// Parse reads a dimension: "10", "10ch", "4px", "50%", "20vw", "5vh", "auto",
// "min-content", "max-content", or a sum such as "50% - 2ch + 1vw"
// Operators in sums must be separated by whitespace; a bare number is in chars
func Parse(s string) (Dimension, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return Dimension{}, fmt.Errorf("layout: empty dimension")
	case "auto":
		return Auto, nil
	case "min-content", "mincontent":
		return MinContent, nil
	case "max-content", "maxcontent":
		return MaxContent, nil
	}

	fields := strings.Fields(s)
	if len(fields) == 1 {
		return parseUnit(s)
	}
	return parseExpr(fields)
}

func parseUnit(s string) (Dimension, error) {
	unit := Char
	num := s
	for u, suffix := range unitSuffix {
		if strings.HasSuffix(s, suffix) {
			unit = Unit(u)
			num = strings.TrimSuffix(s, suffix)
			break
		}
	}
	v, err := strconv.Atoi(num)
	if err != nil {
		return Dimension{}, fmt.Errorf("layout: invalid dimension %q", s)
	}
	return Of(v, unit), nil
}

func parseExpr(fields []string) (Dimension, error) {
	var terms []Dimension
	negate := false
	expectOperand := true
	for _, f := range fields {
		if f == "+" || f == "-" {
			if expectOperand {
				return Dimension{}, fmt.Errorf("layout: unexpected operator %q", f)
			}
			negate = f == "-"
			expectOperand = true
			continue
		}
		if !expectOperand {
			return Dimension{}, fmt.Errorf("layout: missing operator before %q", f)
		}
		d, err := parseUnit(f)
		if err != nil {
			return Dimension{}, err
		}
		if negate {
			d = d.Neg()
		}
		terms = append(terms, d)
		expectOperand = false
	}
	if expectOperand {
		return Dimension{}, fmt.Errorf("layout: expression ends with an operator")
	}
	return Sum(terms...)
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Dimension) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Dimension) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
