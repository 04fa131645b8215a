package core

// Canvas is the drawing boundary between the world and the renderer.
// The world only hands over geometry, colors and text; how a world pixel
// maps onto the output device is up to the implementation.
type Canvas interface {
	// DrawRect fills a rectangle given in world pixels, shifted by the camera offset.
	DrawRect(world Rect, camera Point, c Color, fill rune)

	// DrawRectScreen fills a rectangle given in screen cells.
	DrawRectScreen(r Rect, c Color, fill rune)

	// DrawBoxScreen outlines a rectangle given in screen cells.
	DrawBoxScreen(r Rect, c Color)

	// RenderText writes a single line of text at a screen cell position.
	RenderText(text string, x, y int, c Color)

	// RenderWrappedText writes text wrapped to width cells and returns the
	// number of lines used.
	RenderWrappedText(text string, x, y, width int, c Color) int

	// Size reports the canvas size in screen cells.
	Size() (w, h int)
}
