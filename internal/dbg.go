package internal

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/voronoiable/dbg"
)

// DbgName colors a triangle's readable name by its shape: green for acute, cyan
// for right, yellow for obtuse and red for degenerate.
func (t Triangle) DbgName() string {
	name := dbg.Name(t)
	switch Classify(t) {
	case Acute:
		return aurora.Green(name).String()
	case Right:
		return aurora.Cyan(name).String()
	case Obtuse:
		return aurora.Yellow(name).String()
	}
	return aurora.Red(name).String()
}

// Plain coordinates, so it is safe in error messages. Use DbgName for a
// readable name.
func (t Triangle) String() string {
	return fmt.Sprintf("Triangle <A: %s, B: %s, C: %s>", t.A, t.B, t.C)
}

func (p Point) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", p.X, p.Y)
}

// Defers DbgName until a log entry is actually written.
type dbgNamer Triangle

func (d dbgNamer) String() string {
	return Triangle(d).DbgName()
}
