package orrery

import (
	"fmt"
	"math"
	"strings"

	"github.com/tdewolff/canvas"
)

// Sink receives the drawing commands emitted by a Cursor. Angles are in degrees, an arc runs counter clockwise when theta0 < theta1.
type Sink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(cx, cy, r, theta0, theta1 float64)
}

// Op is the kind of a recorded drawing command.
type Op int

const (
	MoveToOp Op = iota
	LineToOp
	ArcOp
)

func (op Op) String() string {
	switch op {
	case MoveToOp:
		return "M"
	case LineToOp:
		return "L"
	case ArcOp:
		return "A"
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// Command is a recorded drawing command. X and Y are the end point, the arc fields are only set for ArcOp.
type Command struct {
	Op             Op
	X, Y           float64
	CX, CY, R      float64
	Theta0, Theta1 float64
}

func (cmd Command) String() string {
	if cmd.Op == ArcOp {
		return fmt.Sprintf("A%g %g %g %g %g", cmd.CX, cmd.CY, cmd.R, cmd.Theta0, cmd.Theta1)
	}
	return fmt.Sprintf("%v%g %g", cmd.Op, cmd.X, cmd.Y)
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	X0, Y0, X1, Y1 float64
}

func (b Bounds) add(x, y float64) Bounds {
	return Bounds{math.Min(b.X0, x), math.Min(b.Y0, y), math.Max(b.X1, x), math.Max(b.Y1, y)}
}

// Recorder is a Sink that keeps every command it receives.
type Recorder struct {
	Commands []Command
}

// MoveTo records the start of a subpath.
func (r *Recorder) MoveTo(x, y float64) {
	r.Commands = append(r.Commands, Command{Op: MoveToOp, X: x, Y: y})
}

// LineTo records a straight line to (x,y).
func (r *Recorder) LineTo(x, y float64) {
	r.Commands = append(r.Commands, Command{Op: LineToOp, X: x, Y: y})
}

// Arc records an arc, its end point is stored as the command position.
func (r *Recorder) Arc(cx, cy, radius, theta0, theta1 float64) {
	x, y := arcPos(cx, cy, radius, theta1)
	r.Commands = append(r.Commands, Command{ArcOp, x, y, cx, cy, radius, theta0, theta1})
}

// Ops returns the kinds of the recorded commands in order.
func (r *Recorder) Ops() []Op {
	ops := make([]Op, len(r.Commands))
	for i, cmd := range r.Commands {
		ops[i] = cmd.Op
	}
	return ops
}

// Count returns the number of recorded commands of the given kind.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, cmd := range r.Commands {
		if cmd.Op == op {
			n++
		}
	}
	return n
}

// Bounds returns the bounding box of everything drawn, including the extrema of arcs. It returns false if nothing was recorded.
func (r *Recorder) Bounds() (Bounds, bool) {
	if len(r.Commands) == 0 {
		return Bounds{}, false
	}
	first := r.Commands[0]
	if first.Op == ArcOp {
		first.X, first.Y = arcPos(first.CX, first.CY, first.R, first.Theta0)
	}
	b := Bounds{first.X, first.Y, first.X, first.Y}
	for _, cmd := range r.Commands {
		b = b.add(cmd.X, cmd.Y)
		if cmd.Op == ArcOp {
			lo, hi := math.Min(cmd.Theta0, cmd.Theta1), math.Max(cmd.Theta0, cmd.Theta1)
			for k := math.Ceil(lo / 90.0); k*90.0 <= hi; k++ {
				b = b.add(arcPos(cmd.CX, cmd.CY, cmd.R, k*90.0))
			}
		}
	}
	return b, true
}

func (r *Recorder) String() string {
	sb := strings.Builder{}
	for i, cmd := range r.Commands {
		if i != 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(cmd.String())
	}
	return sb.String()
}

////////////////////////////////////////////////////////////////

// PathSink appends the drawing commands to a canvas path.
type PathSink struct {
	*canvas.Path
}

// NewPathSink returns a sink writing into a new, empty path.
func NewPathSink() *PathSink {
	return &PathSink{&canvas.Path{}}
}

func (s *PathSink) MoveTo(x, y float64) {
	s.Path.MoveTo(x, y)
}

func (s *PathSink) LineTo(x, y float64) {
	s.Path.LineTo(x, y)
}

// Arc adds the arc as elliptical arc segments of at most 90 degrees, which also allows for full circles.
func (s *PathSink) Arc(cx, cy, r, theta0, theta1 float64) {
	if r == 0.0 || theta0 == theta1 {
		return
	}
	n := int(math.Ceil(math.Abs(theta1-theta0) / 90.0))
	sweep := theta0 < theta1
	for i := 1; i <= n; i++ {
		theta := theta0 + (theta1-theta0)*float64(i)/float64(n)
		x, y := arcPos(cx, cy, r, theta)
		s.Path.ArcTo(r, r, 0.0, false, sweep, x, y)
	}
}

func arcPos(cx, cy, r, theta float64) (float64, float64) {
	sin, cos := math.Sincos(theta * math.Pi / 180.0)
	return cx + r*cos, cy + r*sin
}
