package timsdf_test

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ims-labs/timsdf/pkg/timsdf"
)

// ExampleOpen demonstrates opening a store and iterating its frames.
func ExampleOpen() {
	// Open a .d acquisition directory
	h, err := timsdf.Open("/data/run_2024.d")
	if err != nil {
		// Every open failure wraps ErrStoreOpen
		fmt.Println("open failed:", errors.Is(err, timsdf.ErrStoreOpen))
		return
	}
	defer h.Close()

	ctx := context.Background()
	it := h.Frames()
	for {
		frame, err := it.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// A failing frame does not stall iteration; skip or abort here
			continue
		}
		fmt.Printf("frame %d: %d peaks\n", frame.FrameID, frame.NumPeaks())
	}

	// Output: open failed: true
}

// ExampleHandle_Frame demonstrates random access to a single frame.
func ExampleHandle_Frame() {
	h, err := timsdf.Open("/data/run_2024.d")
	if err != nil {
		fmt.Println("open failed:", errors.Is(err, timsdf.ErrStoreOpen))
		return
	}
	defer h.Close()

	frame, err := h.Frame(context.Background(), 42)
	if errors.Is(err, timsdf.ErrFrameNotFound) {
		fmt.Println("no such frame")
		return
	}
	if err != nil {
		fmt.Println("decode failed:", err)
		return
	}
	fmt.Printf("%s frame with %d peaks\n", frame.MsType, frame.NumPeaks())

	// Output: open failed: true
}
