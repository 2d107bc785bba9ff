package report

import (
	"reflect"
	"strings"
	"testing"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  []string
	}{
		{"empty", "", 10, nil},
		{"fits", "short line", 20, []string{"short line"}},
		{"wraps at boundary", "alpha beta gamma", 10, []string{"alpha beta", "gamma"}},
		{"collapses whitespace", "a  \t b", 10, []string{"a b"}},
		{"hard splits long word", "abcdefghij xy", 4, []string{"abcd", "efgh", "ij", "xy"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapText(tt.in, tt.width)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WrapText(%q, %d) = %v, want %v", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestWrapText_NoContentLost(t *testing.T) {
	in := strings.Repeat("persistent lower back pain radiating to the left leg ", 40)
	lines := WrapText(in, WrapWidth)

	joined := strings.Join(lines, " ")
	if joined != strings.Join(strings.Fields(in), " ") {
		t.Error("wrapped output does not reassemble to the input text")
	}
	for i, line := range lines {
		if len([]rune(line)) > WrapWidth {
			t.Errorf("line %d exceeds wrap width: %d runes", i, len([]rune(line)))
		}
	}
}

func TestPaginate_SplitsAtBudget(t *testing.T) {
	// 10 lines at 7mm each against a 35mm budget: 5 per page.
	var blocks []Block
	for i := 0; i < 10; i++ {
		blocks = append(blocks, Block{Kind: BlockLine, Text: "line"})
	}

	pages := Paginate(blocks, 35)
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
	if len(pages[0].Blocks) != 5 || len(pages[1].Blocks) != 5 {
		t.Errorf("expected 5 blocks per page, got %d and %d", len(pages[0].Blocks), len(pages[1].Blocks))
	}
}

func TestPaginate_KeepsOrder(t *testing.T) {
	var blocks []Block
	for i := 0; i < 25; i++ {
		blocks = append(blocks, Block{Kind: BlockLine, Text: string(rune('a' + i))})
	}

	var got []string
	for _, page := range Paginate(blocks, 50) {
		for _, b := range page.Blocks {
			got = append(got, b.Text)
		}
	}

	if len(got) != len(blocks) {
		t.Fatalf("expected %d blocks after pagination, got %d", len(blocks), len(got))
	}
	for i, b := range blocks {
		if got[i] != b.Text {
			t.Fatalf("block order broken at %d: got %q, want %q", i, got[i], b.Text)
		}
	}
}

func TestPaginate_TableMovesWhole(t *testing.T) {
	table := Block{
		Kind:    BlockTable,
		Columns: []string{"A", "B"},
		Rows:    [][]string{{"1", "2"}, {"3", "4"}, {"5", "6"}},
	}
	blocks := []Block{
		{Kind: BlockLine, Text: "filler"},
		{Kind: BlockLine, Text: "filler"},
		table,
	}

	// Two lines (14mm) plus a 32mm table against a 30mm budget: the table
	// must open page two intact.
	pages := Paginate(blocks, 30)
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
	if len(pages[1].Blocks) != 1 || pages[1].Blocks[0].Kind != BlockTable {
		t.Fatalf("expected the table alone on page 2, got %+v", pages[1].Blocks)
	}
	if len(pages[1].Blocks[0].Rows) != 3 {
		t.Error("table rows were split across pages")
	}
}

func TestPaginate_OversizedBlockGetsOwnPage(t *testing.T) {
	big := Block{Kind: BlockTable, Columns: []string{"A"}}
	for i := 0; i < 50; i++ {
		big.Rows = append(big.Rows, []string{"row"})
	}

	blocks := []Block{{Kind: BlockLine, Text: "before"}, big, {Kind: BlockLine, Text: "after"}}
	pages := Paginate(blocks, 100)

	if len(pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(pages))
	}
	if pages[1].Blocks[0].Kind != BlockTable {
		t.Error("oversized table was not placed on its own page")
	}
	if pages[2].Blocks[0].Text != "after" {
		t.Error("block after the oversized table lost its place")
	}
}

func TestPaginate_DropsSpacerAtPageTop(t *testing.T) {
	blocks := []Block{
		{Kind: BlockSpacer},
		{Kind: BlockLine, Text: "first"},
		{Kind: BlockLine, Text: "second"},
		{Kind: BlockSpacer},
		{Kind: BlockLine, Text: "third"},
	}

	// 14mm budget: two lines per page, the spacer would land at the top of
	// page two and must vanish.
	pages := Paginate(blocks, 14)
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
	for i, page := range pages {
		if page.Blocks[0].Kind == BlockSpacer {
			t.Errorf("page %d starts with a spacer", i+1)
		}
	}
}

func TestBlockHeight(t *testing.T) {
	table := Block{Kind: BlockTable, Columns: []string{"A"}, Rows: [][]string{{"1"}, {"2"}}}
	if got := table.Height(); got != 3*tableRowHeight {
		t.Errorf("table height = %v, want %v", got, 3*tableRowHeight)
	}
	if got := (Block{Kind: BlockLine}).Height(); got != lineHeight {
		t.Errorf("line height = %v, want %v", got, lineHeight)
	}
}
