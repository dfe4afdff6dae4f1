/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package surface

import (
	"fmt"
	"math"
	"strings"

	"github.com/voedger/idfkit/pkg/idd"
)

// Returns is class is detailed surface class
func IsSurfaceClass(class string) bool {
	for _, c := range SurfaceClasses {
		if strings.EqualFold(c, class) {
			return true
		}
	}
	return false
}

// Reads surface vertices.
//
// If «Number of Vertices» is a number then reads that many vertices, otherwise
// reads vertices until first blank or absent coordinate.
func Coords(r FieldReader) ([]Vertex, error) {
	limit := -1
	if v, err := r.Get(numberOfVerticesField); err == nil {
		if n, ok := v.Int(); ok && n > 0 {
			limit = int(n)
		}
	}

	var vv []Vertex
	for i := 1; limit < 0 || i <= limit; i++ {
		var c [3]float64
		for j, axis := range []string{"X", "Y", "Z"} {
			v, err := r.Get(fmt.Sprintf(vertexFieldFmt, i, axis))
			if err != nil || v.IsBlank() {
				if limit < 0 && j == 0 {
					return vv, nil
				}
				if err == nil {
					err = idd.EnrichError(ErrNotNumber, "vertex %d %s-coordinate is blank", i, axis)
				}
				return nil, err
			}
			f, ok := v.Float()
			if !ok {
				return nil, idd.EnrichError(ErrNotNumber, "vertex %d %s-coordinate «%s»", i, axis, v)
			}
			c[j] = f
		}
		vv = append(vv, Vertex{X: c[0], Y: c[1], Z: c[2]})
	}
	return vv, nil
}

// Returns surface area
func Area(r FieldReader) (float64, error) {
	vv, err := Coords(r)
	if err != nil {
		return 0, err
	}
	n, err := newellNormal(vv)
	if err != nil {
		return 0, err
	}
	return length(n) / 2, nil
}

// Returns angle between outward normal and vertical axis, degrees.
//
// Roofs are 0, walls are 90, floors are 180.
func Tilt(r FieldReader) (float64, error) {
	n, err := unitNormal(r)
	if err != nil {
		return 0, err
	}
	return degrees(math.Acos(clamp(n.Z))), nil
}

// Returns outward normal direction clockwise from north, degrees in [0, 360).
// Horizontal surfaces are 0.
func Azimuth(r FieldReader) (float64, error) {
	n, err := unitNormal(r)
	if err != nil {
		return 0, err
	}
	if math.Abs(n.X) < epsilon && math.Abs(n.Y) < epsilon {
		return 0, nil
	}
	a := degrees(math.Atan2(n.X, n.Y))
	if a < 0 {
		a += 360
	}
	return a, nil
}

// Returns surface height: vertical extent along surface plane.
// For horizontal surfaces returns extent along Y axis.
func Height(r FieldReader) (float64, error) {
	vv, err := Coords(r)
	if err != nil {
		return 0, err
	}
	n, err := newellNormal(vv)
	if err != nil {
		return 0, err
	}
	n = scale(n, 1/length(n))
	sin := math.Sqrt(n.X*n.X + n.Y*n.Y)
	if sin < epsilon {
		lo, hi := extent(vv, func(v Vertex) float64 { return v.Y })
		return hi - lo, nil
	}
	lo, hi := extent(vv, func(v Vertex) float64 { return v.Z })
	return (hi - lo) / sin, nil
}

// Returns surface width: area divided by height
func Width(r FieldReader) (float64, error) {
	a, err := Area(r)
	if err != nil {
		return 0, err
	}
	h, err := Height(r)
	if err != nil {
		return 0, err
	}
	if h < epsilon {
		return 0, ErrDegenerated
	}
	return a / h, nil
}

func unitNormal(r FieldReader) (Vertex, error) {
	vv, err := Coords(r)
	if err != nil {
		return Vertex{}, err
	}
	n, err := newellNormal(vv)
	if err != nil {
		return Vertex{}, err
	}
	return scale(n, 1/length(n)), nil
}

// Returns polygon normal by Newell method. Normal length is twice polygon area
func newellNormal(vv []Vertex) (n Vertex, err error) {
	if len(vv) < 3 {
		return n, ErrDegenerated
	}
	for i, a := range vv {
		b := vv[(i+1)%len(vv)]
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
	}
	if length(n) < epsilon {
		return n, ErrDegenerated
	}
	return n, nil
}

func length(v Vertex) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func scale(v Vertex, k float64) Vertex {
	return Vertex{X: v.X * k, Y: v.Y * k, Z: v.Z * k}
}

func extent(vv []Vertex, coord func(Vertex) float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range vv {
		c := coord(v)
		lo, hi = math.Min(lo, c), math.Max(hi, c)
	}
	return lo, hi
}

func clamp(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
