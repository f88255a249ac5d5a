package icons

import "github.com/1siamBot/combinedpe-icons/engine/pixel"

// WorkbenchFilename is the enhanced workbench block texture.
const WorkbenchFilename = "enhanced_workbench.png"

// WorkbenchColor is the plank color the workbench face is filled with.
var WorkbenchColor = pixel.RGB(139, 90, 43)

var (
	colWoodGrain = pixel.RGB(160, 110, 60)
	colWoodGrid  = pixel.RGB(80, 50, 20)
)

// RenderWorkbench draws a crafting table face with a 3×3 grid and an EMC
// glow in the top-right corner.
func RenderWorkbench() *pixel.Canvas {
	cv := pixel.NewIcon()
	cv.Rect(0, 0, 15, 15, WorkbenchColor)

	for x := 0; x < pixel.IconSize; x += 4 {
		cv.Line(x, 0, x, 15, colWoodGrain)
	}

	for x := 5; x < 12; x += 3 {
		cv.Line(x, 4, x, 11, colWoodGrid)
	}
	for y := 4; y < 12; y += 3 {
		cv.Line(5, y, 11, y, colWoodGrid)
	}

	cv.Set(14, 1, colDeepPink)
	cv.Set(14, 2, colDeepPink)
	cv.Set(13, 1, colDeepPink)
	return cv
}
