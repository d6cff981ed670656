package layout

// FontRef selects one of the two fonts the assembler declares.
type FontRef int

const (
	Regular FontRef = iota
	Bold
)

// String returns the resource name the font is registered under.
func (f FontRef) String() string {
	if f == Bold {
		return "F2"
	}
	return "F1"
}

// Type sizes and wrap widths. Widths are in characters.
const (
	NormalFontSize      = 11
	EmphasizedFontSize  = 16
	NormalWrapWidth     = 85
	EmphasizedWrapWidth = 75

	// BlankLineHeight is the vertical space an empty record consumes.
	BlankLineHeight = 12

	lineSpacing = 1.4
	// glyphWidthRatio approximates an average Latin glyph as half an em.
	glyphWidthRatio = 0.5
)

// Record is one flattened paragraph or line. Empty content is a spacer.
type Record struct {
	Content    string
	Emphasized bool
}

// DrawCommand places one line of text at an absolute position.
type DrawCommand struct {
	Font FontRef
	Size float64
	X    float64
	Y    float64
	Text string
}

// Page holds the draw commands of one sealed page, top to bottom.
type Page struct {
	Commands []DrawCommand
}

// Compose lays records out across pages of geometry g. The geometry is
// validated first; after that, layout cannot fail. The result always holds
// at least one page, even when records is empty or only contains blanks.
func Compose(records []Record, g Geometry) ([]Page, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	c := newCompositor(g)
	for _, r := range records {
		c.add(r)
	}
	return c.finish(), nil
}

// compositor is the vertical cursor walking down the current page.
type compositor struct {
	geom    Geometry
	cursorY float64
	current []DrawCommand
	sealed  []Page
}

func newCompositor(g Geometry) *compositor {
	return &compositor{geom: g, cursorY: g.Top()}
}

func (c *compositor) add(r Record) {
	if r.Content == "" {
		c.cursorY -= BlankLineHeight
		if c.cursorY < c.geom.Margin {
			c.seal()
		}
		return
	}

	font, size, width := Regular, float64(NormalFontSize), NormalWrapWidth
	if r.Emphasized {
		font, size, width = Bold, EmphasizedFontSize, EmphasizedWrapWidth
	}
	lh := lineHeight(size)

	for _, line := range Wrap(r.Content, width) {
		if c.cursorY-lh < c.geom.Margin {
			c.seal()
		}
		x := c.geom.Margin
		if r.Emphasized {
			x = c.centeredX(line, size)
		}
		c.current = append(c.current, DrawCommand{
			Font: font,
			Size: size,
			X:    x,
			Y:    c.cursorY,
			Text: line,
		})
		c.cursorY -= lh
	}
}

// centeredX centers line horizontally using a monospace width estimate,
// never placing it left of the margin.
func (c *compositor) centeredX(line string, size float64) float64 {
	x := (c.geom.Width - ApproxTextWidth(line, size)) / 2
	if x < c.geom.Margin {
		return c.geom.Margin
	}
	return x
}

func (c *compositor) seal() {
	c.sealed = append(c.sealed, Page{Commands: c.current})
	c.current = nil
	c.cursorY = c.geom.Top()
}

// finish seals the page in progress, even if it is empty.
func (c *compositor) finish() []Page {
	c.seal()
	return c.sealed
}

// ApproxTextWidth estimates the rendered width of s at the given size.
func ApproxTextWidth(s string, size float64) float64 {
	return float64(len([]rune(s))) * size * glyphWidthRatio
}

func lineHeight(size float64) float64 {
	return size * lineSpacing
}
