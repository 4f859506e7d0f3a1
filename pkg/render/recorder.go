// pkg/render/recorder.go
package render

import "image/color"

// Op identifies a recorded draw call.
type Op int

const (
	OpFill Op = iota
	OpCircle
)

// Call is one draw call captured by a Recorder. X, Y and Radius are zero for
// OpFill.
type Call struct {
	Op     Op
	X, Y   float32
	Radius float32
	Color  color.Color
}

// Recorder is a Canvas that keeps every draw call in order instead of
// rasterizing it.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) Fill(c color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpFill, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, radius float32, c color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpCircle, X: cx, Y: cy, Radius: radius, Color: c})
}

// Circles returns only the OpCircle calls, in draw order.
func (r *Recorder) Circles() []Call {
	var out []Call
	for _, call := range r.Calls {
		if call.Op == OpCircle {
			out = append(out, call)
		}
	}
	return out
}

func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
