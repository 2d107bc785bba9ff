package report

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

const (
	docSubject = "Medical Record"
	docAuthor  = "Clinidoc"
	docCreator = "Clinidoc Medical System"
)

// Brand colour used for the title, headings, and table header fill.
var brandColor = [3]int{41, 128, 185}

// Renderer draws laid-out documents as PDF. It only walks the page and
// block structure the compositor produced; all layout decisions are
// already made by the time a document reaches it.
type Renderer struct {
	orgName string
}

// NewRenderer returns a Renderer stamping orgName into the page footer.
func NewRenderer(orgName string) *Renderer {
	if orgName == "" {
		orgName = docCreator
	}
	return &Renderer{orgName: orgName}
}

// Render writes doc as a PDF to w. The document is rendered whole or not
// at all; any backend failure surfaces as an error without partial output
// reaching w.
func (r *Renderer) Render(doc *Document, w io.Writer) error {
	if doc == nil || len(doc.Pages) == 0 {
		return fmt.Errorf("render report: empty document")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Patient Record - "+doc.PatientName, true)
	pdf.SetSubject(docSubject, true)
	pdf.SetAuthor(docAuthor, true)
	pdf.SetCreator(docCreator, true)
	pdf.SetMargins(pageMarginLeft, contentTop, pageMarginLeft)
	pdf.SetAutoPageBreak(false, 0)

	generated := "Generated on: " + doc.GeneratedAt.Format("1/2/2006")
	pdf.SetFooterFunc(func() {
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.SetXY(pageMarginLeft, footerY)
		pdf.CellFormat(contentWidth/3, 5, generated, "", 0, "L", false, 0, "")
		pdf.CellFormat(contentWidth/3, 5, r.orgName, "", 0, "C", false, 0, "")
		pdf.CellFormat(contentWidth/3, 5, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	for _, page := range doc.Pages {
		pdf.AddPage()
		y := contentTop
		for _, b := range page.Blocks {
			r.renderBlock(pdf, b, y)
			y += b.Height()
		}
	}

	if pdf.Err() {
		return fmt.Errorf("render report: %w", pdf.Error())
	}
	return pdf.Output(w)
}

func (r *Renderer) renderBlock(pdf *fpdf.Fpdf, b Block, y float64) {
	switch b.Kind {
	case BlockTitle:
		pdf.SetFont("Helvetica", "B", 22)
		pdf.SetTextColor(brandColor[0], brandColor[1], brandColor[2])
		pdf.SetXY(pageMarginLeft, y)
		pdf.CellFormat(contentWidth, titleHeight, b.Text, "", 0, "C", false, 0, "")

	case BlockSubtitle:
		pdf.SetFont("Helvetica", "", 16)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetXY(pageMarginLeft, y)
		pdf.CellFormat(contentWidth, subtitleHeight, b.Text, "", 0, "C", false, 0, "")

	case BlockHeading:
		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetTextColor(brandColor[0], brandColor[1], brandColor[2])
		pdf.SetXY(pageMarginLeft, y)
		pdf.CellFormat(contentWidth, headingHeight, b.Text, "", 0, "L", false, 0, "")

	case BlockSubheading:
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetXY(pageMarginLeft, y)
		pdf.CellFormat(contentWidth, headingHeight, b.Text, "", 0, "L", false, 0, "")

	case BlockLine:
		pdf.SetFont("Helvetica", "", 11)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetXY(pageMarginLeft+b.Indent, y)
		pdf.CellFormat(contentWidth-b.Indent, lineHeight, b.Text, "", 0, "L", false, 0, "")

	case BlockTable:
		r.renderTable(pdf, b, y)

	case BlockSpacer:
		// Vertical gap only.
	}
}

func (r *Renderer) renderTable(pdf *fpdf.Fpdf, b Block, y float64) {
	if len(b.Columns) == 0 {
		return
	}
	colWidth := contentWidth / float64(len(b.Columns))

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFillColor(brandColor[0], brandColor[1], brandColor[2])
	pdf.SetXY(pageMarginLeft, y)
	for _, col := range b.Columns {
		pdf.CellFormat(colWidth, tableRowHeight, col, "1", 0, "L", true, 0, "")
	}
	y += tableRowHeight

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFillColor(245, 245, 245)
	for i, row := range b.Rows {
		pdf.SetXY(pageMarginLeft, y)
		fill := i%2 == 1
		for j := 0; j < len(b.Columns); j++ {
			cell := ""
			if j < len(row) {
				cell = row[j]
			}
			pdf.CellFormat(colWidth, tableRowHeight, cell, "1", 0, "L", fill, 0, "")
		}
		y += tableRowHeight
	}
}
