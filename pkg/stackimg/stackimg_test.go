package stackimg

import (
	"bytes"
	"testing"
)

func TestNew(t *testing.T) {
	if _, err := New(0); err == nil {
		t.Errorf("zero frames per container accepted")
	}
	if _, err := New(-3); err == nil {
		t.Errorf("negative frames per container accepted")
	}
	v, err := New(4)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if v.FramesPerContainer() != 4 {
		t.Errorf("frames=%d", v.FramesPerContainer())
	}
}

// A 4x4 luma composite holding two stacked 4x2 sub-frames, with 4:2:0
// chroma (2x2 composite chroma planes, one row per sub-frame).
func testComposite() Planes {
	luma := make([]byte, 16)
	cb := make([]byte, 4)
	cr := make([]byte, 4)
	for i := range luma {
		luma[i] = byte(i)
	}
	for i := range cb {
		cb[i] = byte(0x40 + i)
		cr[i] = byte(0x80 + i)
	}
	return Planes{
		Data:        [][]byte{luma, cb, cr},
		Stride:      []int{4, 2, 2},
		Height:      4,
		ChromaShift: 1,
	}
}

func TestSub(t *testing.T) {
	v, err := New(2)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	img := testComposite()

	t.Run("first sub-frame", func(t *testing.T) {
		sub, err := v.Sub(img, 0)
		if err != nil {
			t.Fatalf("sub: %v", err)
		}
		if sub.Height != 2 {
			t.Errorf("height=%d, want 2", sub.Height)
		}
		if &sub.Data[0][0] != &img.Data[0][0] {
			t.Errorf("sub-frame 0 does not alias the composite")
		}
	})

	t.Run("second sub-frame", func(t *testing.T) {
		sub, err := v.Sub(img, 1)
		if err != nil {
			t.Fatalf("sub: %v", err)
		}
		// Luma advances by 2 rows of stride 4, chroma by 1 row of stride 2.
		if !bytes.Equal(sub.Data[0][:8], img.Data[0][8:16]) {
			t.Errorf("luma offset wrong: %v", sub.Data[0])
		}
		if sub.Data[1][0] != 0x42 || sub.Data[2][0] != 0x82 {
			t.Errorf("chroma offsets wrong: %#x %#x", sub.Data[1][0], sub.Data[2][0])
		}
	})

	t.Run("index out of range", func(t *testing.T) {
		if _, err := v.Sub(img, 2); err == nil {
			t.Errorf("index 2 accepted")
		}
		if _, err := v.Sub(img, -1); err == nil {
			t.Errorf("index -1 accepted")
		}
	})

	t.Run("indivisible height", func(t *testing.T) {
		v3, err := New(3)
		if err != nil {
			t.Fatalf("new: %v", err)
		}
		if _, err := v3.Sub(img, 0); err == nil {
			t.Errorf("height 4 with 3 sub-frames accepted")
		}
	})
}
