package orrery

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

var (
	// ErrInvalidRecord is returned when a body record is missing a required attribute or holds an out-of-range value.
	ErrInvalidRecord = errors.New("invalid body record")

	// ErrDegenerateLayout is returned when no positive, finite scale factor can be resolved.
	ErrDegenerateLayout = errors.New("degenerate layout")

	// ErrRendering is returned when the vector or raster output could not be produced.
	ErrRendering = errors.New("rendering failed")
)

// Direction is the sense of traversal of a secondary around its primary.
type Direction int

const (
	Retrograde Direction = -1
	Prograde   Direction = 1
)

func (d Direction) Valid() bool {
	return d == Prograde || d == Retrograde
}

func (d Direction) String() string {
	switch d {
	case Prograde:
		return "prograde"
	case Retrograde:
		return "retrograde"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Body is a primary or secondary body. Distances are in arbitrary units that are consistent across a System.
type Body struct {
	Name      string
	Diameter  float64
	Orbit     float64
	Rotation  uint64
	Period    uint64
	Direction Direction
}

// OrbitThousands returns the orbital distance in thousands of distance units, rounded down.
func (b Body) OrbitThousands() uint64 {
	return uint64(math.Floor(b.Orbit / 1000.0))
}

func (b Body) String() string {
	if b.Name != "" {
		return b.Name
	}
	return fmt.Sprintf("body(d=%g)", b.Diameter)
}

// System is a primary body and its secondaries in drawing order.
type System struct {
	Primary     Body
	Secondaries []Body
}

// Validate checks the invariants of the bodies of the system.
func (sys *System) Validate() error {
	if err := validateBody(0, sys.Primary, false); err != nil {
		return err
	}
	for i, b := range sys.Secondaries {
		if err := validateBody(i+1, b, true); err != nil {
			return err
		}
	}
	return nil
}

// maxOrbitThousands bounds orbital distances so that OrbitThousands fits in an uint64.
const maxOrbitThousands = float64(1 << 64)

func validateBody(i int, b Body, secondary bool) error {
	if math.IsNaN(b.Diameter) || math.IsInf(b.Diameter, 0) || b.Diameter < 0.0 {
		return recordError(i, b.Name, "diameter", "must be finite and non-negative, got %v", b.Diameter)
	} else if math.IsNaN(b.Orbit) || math.IsInf(b.Orbit, 0) || b.Orbit < 0.0 {
		return recordError(i, b.Name, "orbit", "must be finite and non-negative, got %v", b.Orbit)
	} else if maxOrbitThousands <= math.Floor(b.Orbit/1000.0) {
		return recordError(i, b.Name, "orbit", "must be below %v, got %v", 1000.0*maxOrbitThousands, b.Orbit)
	} else if secondary && !b.Direction.Valid() {
		return recordError(i, b.Name, "direction", "must be -1 or 1, got %d", int(b.Direction))
	}
	return nil
}

func recordError(i int, name, key, format string, args ...interface{}) error {
	where := fmt.Sprintf("record %d", i)
	if name != "" {
		where += fmt.Sprintf(" (%s)", name)
	}
	return fmt.Errorf("%w: %s: %s %s", ErrInvalidRecord, where, key, fmt.Sprintf(format, args...))
}

////////////////////////////////////////////////////////////////

type bodyRecord struct {
	Name      string   `json:"name"`
	Diameter  *float64 `json:"diameter"`
	Orbit     *float64 `json:"orbit"`
	Rotation  *int64   `json:"rotation"`
	Period    *int64   `json:"period"`
	Direction *int     `json:"direction"`
}

func (r bodyRecord) body(i int, secondary bool) (Body, error) {
	b := Body{Name: r.Name}
	if r.Diameter == nil {
		return b, recordError(i, r.Name, "diameter", "is missing")
	}
	b.Diameter = *r.Diameter

	if r.Orbit == nil {
		return b, recordError(i, r.Name, "orbit", "is missing")
	}
	b.Orbit = *r.Orbit

	if r.Period == nil {
		return b, recordError(i, r.Name, "period", "is missing")
	} else if *r.Period < 0 {
		return b, recordError(i, r.Name, "period", "must be non-negative, got %d", *r.Period)
	}
	b.Period = uint64(*r.Period)

	if !secondary {
		if r.Rotation == nil {
			return b, recordError(i, r.Name, "rotation", "is missing")
		} else if *r.Rotation < 0 {
			return b, recordError(i, r.Name, "rotation", "must be non-negative, got %d", *r.Rotation)
		}
		b.Rotation = uint64(*r.Rotation)
	} else {
		if r.Direction == nil {
			return b, recordError(i, r.Name, "direction", "is missing")
		}
		b.Direction = Direction(*r.Direction)
		if r.Rotation != nil && 0 <= *r.Rotation {
			b.Rotation = uint64(*r.Rotation)
		}
	}
	return b, validateBody(i, b, secondary)
}

// Parse reads a JSON array of body records. The first record is the primary, the remaining records are its secondaries.
func Parse(r io.Reader) (*System, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	records := []bodyRecord{}
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	} else if len(records) == 0 {
		return nil, fmt.Errorf("%w: no primary body", ErrInvalidRecord)
	} else if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after body records", ErrInvalidRecord)
	}

	sys := &System{}
	for i, record := range records {
		b, err := record.body(i, 0 < i)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			sys.Primary = b
		} else {
			sys.Secondaries = append(sys.Secondaries, b)
		}
	}
	return sys, nil
}

// Load parses the body records in the given file.
func Load(filename string) (*System, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	sys, err := Parse(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return sys, nil
}
