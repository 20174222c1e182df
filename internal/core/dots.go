package core

// Braille dot layout: each cell holds a 2x4 grid of dots.
const (
	DotsPerCellX = 2
	DotsPerCellY = 4
)

// dotBits maps (x, y) inside a cell to its braille bit.
var dotBits = [DotsPerCellY][DotsPerCellX]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Dots is a monochrome-per-cell dot canvas rendered with braille runes.
// Each cell takes the color of the last dot set in it.
type Dots struct {
	cols   int
	rows   int
	bits   []uint8
	colors []Color
}

// NewDots creates a canvas covering cols x rows screen cells.
func NewDots(cols, rows int) *Dots {
	d := &Dots{}
	d.Resize(cols, rows)
	return d
}

// Resize changes the canvas size in cells and clears it.
func (d *Dots) Resize(cols, rows int) {
	d.cols, d.rows = Max(cols, 0), Max(rows, 0)
	d.bits = make([]uint8, d.cols*d.rows)
	d.colors = make([]Color, d.cols*d.rows)
}

// Width returns the canvas width in dots.
func (d *Dots) Width() int {
	return d.cols * DotsPerCellX
}

// Height returns the canvas height in dots.
func (d *Dots) Height() int {
	return d.rows * DotsPerCellY
}

// Clear removes every dot.
func (d *Dots) Clear() {
	for i := range d.bits {
		d.bits[i] = 0
		d.colors[i] = ColorDefault
	}
}

// Set lights the dot at (x, y). Out-of-bounds dots are ignored.
func (d *Dots) Set(x, y int, c Color) {
	if x < 0 || y < 0 || x >= d.Width() || y >= d.Height() {
		return
	}
	i := (y/DotsPerCellY)*d.cols + x/DotsPerCellX
	d.bits[i] |= dotBits[y%DotsPerCellY][x%DotsPerCellX]
	d.colors[i] = c
}

// IsSet reports whether the dot at (x, y) is lit.
func (d *Dots) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x >= d.Width() || y >= d.Height() {
		return false
	}
	i := (y/DotsPerCellY)*d.cols + x/DotsPerCellX
	return d.bits[i]&dotBits[y%DotsPerCellY][x%DotsPerCellX] != 0
}

// Line lights every dot on the segment (x0, y0)-(x1, y1) using Bresenham's
// algorithm. radius > 0 stamps a square brush at each step. Only the part
// of the segment that can reach the canvas is walked.
func (d *Dots) Line(x0, y0, x1, y1, radius int, c Color) {
	if !d.clip(&x0, &y0, &x1, &y1, radius) {
		return
	}

	dx := Abs(x1 - x0)
	dy := -Abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		d.stamp(x0, y0, radius, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (d *Dots) stamp(x, y, radius int, c Color) {
	for oy := -radius; oy <= radius; oy++ {
		for ox := -radius; ox <= radius; ox++ {
			d.Set(x+ox, y+oy, c)
		}
	}
}

// clip trims the segment to the canvas grown by margin (Liang-Barsky).
// Returns false when nothing is visible.
func (d *Dots) clip(x0, y0, x1, y1 *int, margin int) bool {
	minX, minY := float64(-margin), float64(-margin)
	maxX, maxY := float64(d.Width()-1+margin), float64(d.Height()-1+margin)

	fx0, fy0 := float64(*x0), float64(*y0)
	dx, dy := float64(*x1)-fx0, float64(*y1)-fy0
	t0, t1 := 0.0, 1.0

	edges := [4][2]float64{
		{-dx, fx0 - minX},
		{dx, maxX - fx0},
		{-dy, fy0 - minY},
		{dy, maxY - fy0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return false
			}
			if r < t1 {
				t1 = r
			}
		}
	}

	*x0, *y0 = Round(fx0+t0*dx), Round(fy0+t0*dy)
	*x1, *y1 = Round(fx0+t1*dx), Round(fy0+t1*dy)
	return true
}

// Render copies every non-empty cell onto dst with its top-left at (x, y).
func (d *Dots) Render(dst *Screen, x, y int) {
	for row := 0; row < d.rows; row++ {
		for col := 0; col < d.cols; col++ {
			i := row*d.cols + col
			if d.bits[i] == 0 {
				continue
			}
			dst.SetCell(x+col, y+row, Cell{
				Rune:  rune(0x2800 + int(d.bits[i])),
				Color: d.colors[i],
			})
		}
	}
}
