package layout

import (
	"errors"
	"testing"

	"github.com/BurntSushi/toml"
)

type fixedViewport struct{ w, h int }

func (v fixedViewport) Size() (int, int) { return v.w, v.h }

func TestResolve(t *testing.T) {
	vp := fixedViewport{w: 120, h: 40}
	tests := []struct {
		name   string
		d      Dimension
		parent int
		want   int
	}{
		{"percent of 80", Pct(50), 80, 40},
		{"char ignores parent", Chars(10), 999, 10},
		{"char zero parent", Chars(10), 0, 10},
		{"pixel", Pixels(7), 3, 7},
		{"zero value", Zero, 50, 0},
		{"percent rounds half up", Pct(50), 5, 3},
		{"percent rounds down", Pct(33), 10, 3},
		{"percent rounds up", Pct(66), 10, 7},
		{"negative percent", Pct(-50), 5, -3},
		{"viewport width", VW(50), 7, 60},
		{"viewport height", VH(25), 7, 10},
		{"viewport rounds", VH(3), 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.d.Resolve(tt.parent, vp)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%s, %d) = %d, want %d", tt.d, tt.parent, got, tt.want)
			}
		})
	}
}

func TestResolveSentinelsFail(t *testing.T) {
	for _, d := range []Dimension{Auto, MinContent, MaxContent} {
		t.Run(d.String(), func(t *testing.T) {
			_, err := d.Resolve(80, fixedViewport{80, 24})
			if !errors.Is(err, ErrUnresolvableDimension) {
				t.Errorf("err = %v, want ErrUnresolvableDimension", err)
			}
			if d.Resolvable() {
				t.Error("sentinel reports resolvable")
			}
		})
	}

	if _, err := VW(10).Resolve(80, nil); !errors.Is(err, ErrUnresolvableDimension) {
		t.Errorf("viewport unit without viewport: %v", err)
	}
	// Percent never consults the viewport
	if v, err := Pct(10).Resolve(80, nil); err != nil || v != 8 {
		t.Errorf("percent without viewport = %d, %v", v, err)
	}
}

func TestExpression(t *testing.T) {
	e, err := Sum(Pct(50), Chars(-2), VW(10))
	if err != nil {
		t.Fatal(err)
	}
	got, err := e.Resolve(80, fixedViewport{100, 30})
	if err != nil {
		t.Fatal(err)
	}
	if got != 40-2+10 {
		t.Errorf("expression = %d", got)
	}

	nested, err := Sum(e, Chars(1))
	if err != nil {
		t.Fatal(err)
	}
	if len(nested.Terms()) != 4 {
		t.Errorf("nested sum not flattened: %d terms", len(nested.Terms()))
	}

	if _, err := Sum(Chars(1), Auto); !errors.Is(err, ErrUnresolvableDimension) {
		t.Errorf("sum with auto: %v", err)
	}

	if _, err := e.Resolve(80, nil); err == nil {
		t.Error("expression with viewport term resolved without viewport")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Dimension
		str  string
	}{
		{"10", Chars(10), "10ch"},
		{"10ch", Chars(10), "10ch"},
		{" 4PX ", Pixels(4), "4px"},
		{"50%", Pct(50), "50%"},
		{"20vw", VW(20), "20vw"},
		{"5vh", VH(5), "5vh"},
		{"-3ch", Chars(-3), "-3ch"},
		{"auto", Auto, "auto"},
		{"min-content", MinContent, "min-content"},
		{"maxcontent", MaxContent, "max-content"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %s, want %s", tt.in, got, tt.want)
			}
			if got.String() != tt.str {
				t.Errorf("String() = %q, want %q", got.String(), tt.str)
			}
		})
	}
}

func TestParseExpression(t *testing.T) {
	d, err := Parse("50% - 2ch + 1vw")
	if err != nil {
		t.Fatal(err)
	}
	if !d.IsExpr() {
		t.Fatalf("kind %d", d.Kind())
	}
	if got := d.String(); got != "50% - 2ch + 1vw" {
		t.Errorf("String() = %q", got)
	}
	v, err := d.Resolve(100, fixedViewport{200, 50})
	if err != nil || v != 50 {
		t.Errorf("Resolve = %d, %v", v, err)
	}

	again, err := Parse(d.String())
	if err != nil || !again.Equal(d) {
		t.Errorf("reparse = %s, %v", again, err)
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "ten", "10em", "- 5ch", "5ch +", "5ch 6ch", "auto + 1ch", "50 %"} {
		t.Run(in, func(t *testing.T) {
			if d, err := Parse(in); err == nil {
				t.Errorf("Parse(%q) = %s, want error", in, d)
			}
		})
	}
}

func TestDimensionTOML(t *testing.T) {
	var doc struct {
		Width  Dimension `toml:"width"`
		Height Dimension `toml:"height"`
	}
	if _, err := toml.Decode("width = \"30% + 2ch\"\nheight = \"auto\"\n", &doc); err != nil {
		t.Fatal(err)
	}
	if v := doc.Width.MustResolve(100, nil); v != 32 {
		t.Errorf("width = %d", v)
	}
	if !doc.Height.IsAuto() {
		t.Errorf("height = %s", doc.Height)
	}
}
