package stackimg

import "fmt"

// Planes is a planar image: per-plane pixel rows, per-plane row strides in
// bytes, and the luma height in rows. Chroma planes (indices 1 and 2) are
// vertically subsampled by ChromaShift (log2); all other planes use the
// full height.
type Planes struct {
	Data        [][]byte
	Stride      []int
	Height      int
	ChromaShift int
}

// View selects sub-frames out of a vertically stacked composite image.
type View struct {
	frames int
}

// New creates a View for composites holding framesPerContainer stacked
// sub-frames. A non-positive count is a configuration error.
func New(framesPerContainer int) (*View, error) {
	if framesPerContainer <= 0 {
		return nil, fmt.Errorf("stackimg: invalid number of frames per container %d", framesPerContainer)
	}
	return &View{frames: framesPerContainer}, nil
}

// FramesPerContainer returns the configured sub-frame count.
func (v *View) FramesPerContainer() int { return v.frames }

// Sub returns sub-frame k of the composite as a view over the same plane
// memory. The returned Planes carry the sub-frame height; strides and
// chroma subsampling are unchanged.
func (v *View) Sub(img Planes, k int) (Planes, error) {
	if k < 0 || k >= v.frames {
		return Planes{}, fmt.Errorf("stackimg: sub-frame index %d out of range [0,%d)", k, v.frames)
	}
	if len(img.Data) != len(img.Stride) {
		return Planes{}, fmt.Errorf("stackimg: %d planes with %d strides", len(img.Data), len(img.Stride))
	}
	if img.Height%v.frames != 0 {
		return Planes{}, fmt.Errorf("stackimg: height %d not divisible by %d sub-frames", img.Height, v.frames)
	}

	sub := Planes{
		Data:        make([][]byte, len(img.Data)),
		Stride:      img.Stride,
		Height:      img.Height / v.frames,
		ChromaShift: img.ChromaShift,
	}

	for i, plane := range img.Data {
		h := planeHeight(sub.Height, i, img.ChromaShift)
		offset := k * h * img.Stride[i]
		if offset > len(plane) {
			return Planes{}, fmt.Errorf("stackimg: plane %d too short for sub-frame %d", i, k)
		}
		sub.Data[i] = plane[offset:]
	}
	return sub, nil
}

// planeHeight returns the row count of plane i for a given luma height,
// rounding subsampled chroma planes up.
func planeHeight(height, i, chromaShift int) int {
	if i == 1 || i == 2 {
		return (height + (1 << chromaShift) - 1) >> chromaShift
	}
	return height
}
