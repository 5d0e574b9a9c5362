// Package export renders match positions into printable artifacts.
package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"goban/internal/domain/match"
	"goban/internal/engine"
)

const (
	gridOrigin = 30.0 // mm from the page edge to the first line
	gridStep   = 8.0  // mm between lines
	stoneR     = 3.4
	starR      = 0.8
	markR      = 1.6
)

// WriteBoardDiagram renders the position carried by state as a one-page
// PDF diagram: grid, star points, stones, a ring on the last move, and
// a caption with captures and, for a finished match, the final score.
func WriteBoardDiagram(w io.Writer, state match.StateResponse) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("goban match "+state.MatchID, true)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 8)

	drawGrid(pdf)
	drawLabels(pdf)
	for _, cell := range state.Board {
		drawCell(pdf, cell)
	}
	drawCaption(pdf, state)

	return pdf.Output(w)
}

func gridEnd() float64 {
	return gridOrigin + gridStep*float64(engine.BoardSize-1)
}

func drawGrid(pdf *gofpdf.Fpdf) {
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
	for i := 0; i < engine.BoardSize; i++ {
		off := gridOrigin + float64(i)*gridStep
		pdf.Line(gridOrigin, off, gridEnd(), off)
		pdf.Line(off, gridOrigin, off, gridEnd())
	}
}

func drawLabels(pdf *gofpdf.Fpdf) {
	for i := 0; i < engine.BoardSize; i++ {
		off := gridOrigin + float64(i)*gridStep
		pdf.Text(off-1.2, gridOrigin-4, engine.ColumnLabel(i))
		pdf.Text(gridOrigin-9, off+1.2, engine.RowLabel(i))
	}
}

func drawCell(pdf *gofpdf.Fpdf, cell engine.IntersectionData) {
	x := gridOrigin + float64(cell.Col)*gridStep
	y := gridOrigin + float64(cell.Row)*gridStep

	switch cell.Stone {
	case engine.Black:
		pdf.SetFillColor(0, 0, 0)
		pdf.Circle(x, y, stoneR, "FD")
	case engine.White:
		pdf.SetFillColor(255, 255, 255)
		pdf.Circle(x, y, stoneR, "FD")
	default:
		if cell.IsStarPoint {
			pdf.SetFillColor(0, 0, 0)
			pdf.Circle(x, y, starR, "F")
		}
	}

	if cell.IsLastMove {
		pdf.SetDrawColor(200, 30, 30)
		pdf.Circle(x, y, markR, "D")
		pdf.SetDrawColor(0, 0, 0)
	}
}

func drawCaption(pdf *gofpdf.Fpdf, state match.StateResponse) {
	y := gridEnd() + 12
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(gridOrigin, y, fmt.Sprintf("Captures: black %d, white %d",
		state.BlackCaptured, state.WhiteCaptured))

	if state.Scores != nil {
		result := fmt.Sprintf("Final score: black %.1f - white %.1f", state.Scores.Black, state.Scores.White)
		if state.Scores.Winner != "draw" {
			result += fmt.Sprintf(" (%s wins)", state.Scores.Winner)
		}
		pdf.Text(gridOrigin, y+6, result)
	} else {
		pdf.Text(gridOrigin, y+6, fmt.Sprintf("To move: %s", state.CurrentPlayer))
	}
}
