package capture

import (
	"reflect"
	"unsafe"

	"github.com/gen2brain/malgo"
)

// windower packs arbitrary-length sample bursts into overlapping
// fixed-size analysis windows. Each emitted window shares the internal
// buffer, so callers must not retain it across calls.
type windower struct {
	size int
	hop  int
	acc  []float32
}

func newWindower(size, hop int) *windower {
	if hop <= 0 || hop > size {
		hop = size
	}
	return &windower{size: size, hop: hop}
}

func (w *windower) feed(samples []float32) [][]float32 {
	w.acc = append(w.acc, samples...)
	var windows [][]float32
	for len(w.acc) >= w.size {
		windows = append(windows, w.acc[:w.size])
		w.acc = w.acc[w.hop:]
	}
	return windows
}

func preferredSampleRate(info *malgo.DeviceInfo) uint32 {
	for _, f := range info.Formats {
		if f.SampleRate > 0 {
			return f.SampleRate
		}
	}
	return 0
}

func bytesToFloat32Slice(b []byte) []float32 {
	hdr := *(*reflect.SliceHeader)(unsafe.Pointer(&b))
	hdr.Len /= 4
	hdr.Cap /= 4
	return *(*[]float32)(unsafe.Pointer(&hdr))
}
