package cuberobot

import "strings"

// CubeFace is a face of the simulated cube. It is distinct from Face, which
// is used for move notation, and from FaceSlot, which orders the state string.
type CubeFace int

const (
	CubeFaceU CubeFace = iota // Up (White)
	CubeFaceD                 // Down (Yellow)
	CubeFaceF                 // Front (Green)
	CubeFaceB                 // Back (Blue)
	CubeFaceR                 // Right (Red)
	CubeFaceL                 // Left (Orange)
)

func (f CubeFace) String() string {
	switch f {
	case CubeFaceU:
		return "U"
	case CubeFaceD:
		return "D"
	case CubeFaceF:
		return "F"
	case CubeFaceB:
		return "B"
	case CubeFaceR:
		return "R"
	case CubeFaceL:
		return "L"
	default:
		return "?"
	}
}

func (f CubeFace) solvedColor() Color {
	switch f {
	case CubeFaceU:
		return White
	case CubeFaceD:
		return Yellow
	case CubeFaceF:
		return Green
	case CubeFaceB:
		return Blue
	case CubeFaceR:
		return Red
	case CubeFaceL:
		return Orange
	default:
		return NoColor
	}
}

func cubeFaceOf(f Face) CubeFace {
	switch f {
	case FaceD:
		return CubeFaceD
	case FaceF:
		return CubeFaceF
	case FaceB:
		return CubeFaceB
	case FaceR:
		return CubeFaceR
	case FaceL:
		return CubeFaceL
	default:
		return CubeFaceU
	}
}

// strip is three facelets on one face that travel together during a turn.
type strip struct {
	face CubeFace
	pos  [3]int
}

// adjacent lists, for each face, the four neighbouring strips in the order a
// clockwise quarter turn carries them: strip 0 moves to strip 1, and so on.
var adjacent = map[CubeFace][4]strip{
	CubeFaceU: {{CubeFaceF, [3]int{0, 1, 2}}, {CubeFaceL, [3]int{0, 1, 2}}, {CubeFaceB, [3]int{0, 1, 2}}, {CubeFaceR, [3]int{0, 1, 2}}},
	CubeFaceD: {{CubeFaceF, [3]int{6, 7, 8}}, {CubeFaceR, [3]int{6, 7, 8}}, {CubeFaceB, [3]int{6, 7, 8}}, {CubeFaceL, [3]int{6, 7, 8}}},
	CubeFaceF: {{CubeFaceU, [3]int{6, 7, 8}}, {CubeFaceR, [3]int{0, 3, 6}}, {CubeFaceD, [3]int{2, 1, 0}}, {CubeFaceL, [3]int{8, 5, 2}}},
	CubeFaceB: {{CubeFaceU, [3]int{2, 1, 0}}, {CubeFaceL, [3]int{0, 3, 6}}, {CubeFaceD, [3]int{6, 7, 8}}, {CubeFaceR, [3]int{8, 5, 2}}},
	CubeFaceR: {{CubeFaceU, [3]int{2, 5, 8}}, {CubeFaceB, [3]int{6, 3, 0}}, {CubeFaceD, [3]int{2, 5, 8}}, {CubeFaceF, [3]int{2, 5, 8}}},
	CubeFaceL: {{CubeFaceU, [3]int{0, 3, 6}}, {CubeFaceF, [3]int{0, 3, 6}}, {CubeFaceD, [3]int{0, 3, 6}}, {CubeFaceB, [3]int{8, 5, 2}}},
}

// cycles holds, per face, the disjoint 4-cycles of sticker indices making up
// one clockwise quarter turn.
var cycles = buildCycles()

func buildCycles() map[CubeFace][][4]int {
	out := make(map[CubeFace][][4]int, FaceCount)
	for face, ring := range adjacent {
		base := int(face) * FaceletsPerFace
		cs := [][4]int{
			{base + 0, base + 2, base + 8, base + 6}, // corners
			{base + 1, base + 5, base + 7, base + 3}, // edges
		}
		for k := 0; k < 3; k++ {
			var c [4]int
			for i, s := range ring {
				c[i] = int(s.face)*FaceletsPerFace + s.pos[k]
			}
			cs = append(cs, c)
		}
		out[face] = cs
	}
	return out
}

// Cube is a facelet-level 3x3 cube simulator. Each face is indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
type Cube struct {
	facelets [StateLength]Color
}

// NewCube returns a solved cube, White up and Green front.
func NewCube() *Cube {
	c := &Cube{}
	for f := CubeFaceU; f <= CubeFaceL; f++ {
		for i := 0; i < FaceletsPerFace; i++ {
			c.facelets[int(f)*FaceletsPerFace+i] = f.solvedColor()
		}
	}
	return c
}

// Clone returns an independent copy.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// Equal reports whether both cubes show the same colors everywhere.
func (c *Cube) Equal(o *Cube) bool {
	return c.facelets == o.facelets
}

// Facelets returns the nine colors of a face.
func (c *Cube) Facelets(f CubeFace) [FaceletsPerFace]Color {
	var out [FaceletsPerFace]Color
	copy(out[:], c.facelets[int(f)*FaceletsPerFace:])
	return out
}

// IsSolved returns true if every face is a single color.
func (c *Cube) IsSolved() bool {
	for f := CubeFaceU; f <= CubeFaceL; f++ {
		face := c.Facelets(f)
		for _, col := range face {
			if col != face[4] {
				return false
			}
		}
	}
	return true
}

func (c *Cube) quarterTurn(f CubeFace) {
	old := c.facelets
	for _, cyc := range cycles[f] {
		c.facelets[cyc[1]] = old[cyc[0]]
		c.facelets[cyc[2]] = old[cyc[1]]
		c.facelets[cyc[3]] = old[cyc[2]]
		c.facelets[cyc[0]] = old[cyc[3]]
	}
}

// ApplyMove applies a single move.
func (c *Cube) ApplyMove(m Move) {
	n := 0
	switch m.Turn {
	case CW:
		n = 1
	case Double:
		n = 2
	case CCW:
		n = 3
	}
	face := cubeFaceOf(m.Face)
	for i := 0; i < n; i++ {
		c.quarterTurn(face)
	}
}

// ApplyMoves applies a sequence of moves in order.
func (c *Cube) ApplyMoves(moves []Move) {
	for _, m := range moves {
		c.ApplyMove(m)
	}
}

// String returns an unfolded net of the cube.
func (c *Cube) String() string {
	var b strings.Builder

	writeRow := func(f CubeFace, row int) {
		face := c.Facelets(f)
		for col := 0; col < 3; col++ {
			b.WriteString(face[row*3+col].String())
			b.WriteByte(' ')
		}
	}

	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(CubeFaceU, row)
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		for _, f := range []CubeFace{CubeFaceL, CubeFaceF, CubeFaceR, CubeFaceB} {
			writeRow(f, row)
		}
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(CubeFaceD, row)
		b.WriteByte('\n')
	}

	return b.String()
}
