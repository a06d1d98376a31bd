package render

// FrameBuffer is a Width×Height raster of intensity values (0-255),
// row-major. Presentation (terminal cells, canvas, GPU) is the host's
// concern; the engine only fills intensities.
type FrameBuffer struct {
	Width  int
	Height int
	pix    []uint8
}

// NewFrameBuffer allocates a zeroed buffer.
func NewFrameBuffer(width, height int) *FrameBuffer {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &FrameBuffer{
		Width:  width,
		Height: height,
		pix:    make([]uint8, width*height),
	}
}

// At returns the intensity at (x, y); out-of-range reads are 0.
func (b *FrameBuffer) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return 0
	}
	return b.pix[y*b.Width+x]
}

// Set writes the intensity at (x, y); out-of-range writes are dropped.
func (b *FrameBuffer) Set(x, y int, v uint8) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	b.pix[y*b.Width+x] = v
}

// Clear zeroes every pixel.
func (b *FrameBuffer) Clear() {
	for i := range b.pix {
		b.pix[i] = 0
	}
}

// Pixels exposes the backing slice, row-major. Callers must treat it
// as read-only between Render passes.
func (b *FrameBuffer) Pixels() []uint8 {
	return b.pix
}
