package report

import "strings"

// Page geometry in millimetres on A4 portrait. Content flows from
// contentTop down to contentTop+ContentHeight; the footer band below it is
// stamped separately on every page.
const (
	pageMarginLeft = 14.0
	contentTop     = 20.0
	contentWidth   = 182.0
	footerY        = 285.0

	// ContentHeight is the fixed per-page budget the paginator works with.
	ContentHeight = 260.0

	lineHeight     = 7.0
	headingHeight  = 10.0
	titleHeight    = 10.0
	subtitleHeight = 10.0
	tableRowHeight = 8.0
	spacerHeight   = 5.0

	// WrapWidth is the paragraph wrapping width in characters. Wrapping is
	// character-based so pagination stays deterministic and independent of
	// font metrics.
	WrapWidth = 95
)

// BlockKind discriminates the layout block variants.
type BlockKind int

const (
	BlockTitle BlockKind = iota
	BlockSubtitle
	BlockHeading
	BlockSubheading
	BlockLine
	BlockTable
	BlockSpacer
)

// Block is one measured layout element. The compositor emits a flat block
// sequence; Paginate distributes it across pages without knowing anything
// about the rendering backend.
type Block struct {
	Kind    BlockKind
	Text    string     // title, headings, and single lines
	Indent  float64    // extra left offset in mm for lines
	Columns []string   // table header
	Rows    [][]string // table body
}

// Height returns the block's vertical extent in millimetres.
func (b Block) Height() float64 {
	switch b.Kind {
	case BlockTitle:
		return titleHeight
	case BlockSubtitle:
		return subtitleHeight
	case BlockHeading:
		return headingHeight
	case BlockSubheading:
		return headingHeight
	case BlockLine:
		return lineHeight
	case BlockTable:
		return tableRowHeight * float64(1+len(b.Rows))
	case BlockSpacer:
		return spacerHeight
	}
	return 0
}

// Page is one laid-out page of blocks.
type Page struct {
	Blocks []Block
}

// Paginate performs the single layout pass: a running Y-cursor advances by
// each block's height, and a block that would overrun the remaining content
// height opens a new page first. Blocks are atomic; paragraphs must be
// pre-split into line blocks so they can break across pages. A block taller
// than a whole page still gets a page of its own rather than being dropped.
// Spacers that would land at the top of a page are discarded.
func Paginate(blocks []Block, contentHeight float64) []Page {
	pages := []Page{{}}
	y := 0.0

	for _, b := range blocks {
		cur := &pages[len(pages)-1]
		if b.Kind == BlockSpacer && len(cur.Blocks) == 0 {
			continue
		}

		h := b.Height()
		if y+h > contentHeight && len(cur.Blocks) > 0 {
			pages = append(pages, Page{})
			cur = &pages[len(pages)-1]
			y = 0
			if b.Kind == BlockSpacer {
				continue
			}
		}

		cur.Blocks = append(cur.Blocks, b)
		y += h
	}

	return pages
}

// WrapText wraps s into lines of at most width characters using greedy
// word wrapping. Words longer than the width are hard-split so no input is
// ever dropped. An empty string yields no lines.
func WrapText(s string, width int) []string {
	if width <= 0 {
		width = WrapWidth
	}

	var lines []string
	var line []rune

	flush := func() {
		if len(line) > 0 {
			lines = append(lines, string(line))
			line = line[:0]
		}
	}

	for _, word := range strings.Fields(s) {
		runes := []rune(word)

		// Hard-split oversized words.
		for len(runes) > width {
			flush()
			lines = append(lines, string(runes[:width]))
			runes = runes[width:]
		}
		if len(runes) == 0 {
			continue
		}

		switch {
		case len(line) == 0:
			line = append(line, runes...)
		case len(line)+1+len(runes) <= width:
			line = append(line, ' ')
			line = append(line, runes...)
		default:
			flush()
			line = append(line, runes...)
		}
	}
	flush()

	return lines
}
