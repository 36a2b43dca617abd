package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/sim"
)

// RowFill counts the occupied cells in each row of snap, top row first.
func RowFill(snap board.Snapshot) []int {
	fill := make([]int, snap.Height())
	for _, c := range snap.OccupiedCells() {
		fill[c.Row]++
	}
	return fill
}

// BoardInspector shows the falling piece and the last rendered frame.
type BoardInspector struct{}

func NewBoardInspector() *BoardInspector {
	return &BoardInspector{}
}

func (bi *BoardInspector) Render(frame sim.Frame, p *piece.Piece) {
	imgui.SetNextWindowPosV(imgui.NewVec2(340, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 520), imgui.CondOnce)

	if !imgui.BeginV("Board Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	shape := p.Shape()
	imgui.Text(fmt.Sprintf("Frame Tick: %d", frame.Tick))
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Shape: %s (%dx%d)", shape.Name, shape.Height(), shape.Width()))
	imgui.Text(fmt.Sprintf("Anchor: %s", p.Anchor()))
	if p.Grounded() {
		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "GROUNDED")
	} else {
		imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "FALLING")
	}

	if imgui.TreeNodeStr("Shape Matrix") {
		for _, line := range strings.Split(strings.TrimSuffix(shape.String(), "\n"), "\n") {
			imgui.Text(line)
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Frame") {
		composite := frame.Composite()
		for _, line := range strings.Split(strings.TrimSuffix(composite.String(), "\n"), "\n") {
			imgui.Text(line)
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Row Fill") {
		width := frame.Board.Width()
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
		if imgui.BeginTableV("RowFillTable", 2, tableFlags, imgui.NewVec2(0, 240), 0) {
			imgui.TableSetupColumn("Row")
			imgui.TableSetupColumn("Filled")
			imgui.TableHeadersRow()

			for row, n := range RowFill(frame.Board) {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", row))
				imgui.TableNextColumn()
				imgui.ProgressBarV(float32(n)/float32(width), imgui.NewVec2(-1, 0), fmt.Sprintf("%d/%d", n, width))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
