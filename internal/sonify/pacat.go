package sonify

import (
	"encoding/binary"
	"io"
	"math"
)

// encode writes samples as little-endian float32, the format pacat expects.
func encode(w io.Writer, samples []float32, scratch []byte) ([]byte, error) {
	need := len(samples) * 4
	if cap(scratch) < need {
		scratch = make([]byte, need)
	}
	scratch = scratch[:need]
	for i, s := range samples {
		binary.LittleEndian.PutUint32(scratch[i*4:], math.Float32bits(s))
	}
	_, err := w.Write(scratch)
	return scratch, err
}
