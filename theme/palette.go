package theme

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type RGB [3]uint8

type Palette struct {
	Name   string
	Colors []RGB
}

// DefaultPalette is a warm wood-and-brass ramp, dark to bright.
func DefaultPalette() *Palette {
	return &Palette{
		Name: "tobacco",
		Colors: []RGB{
			{24, 16, 12},    // near black
			{59, 38, 24},    // dark wood
			{102, 68, 38},   // walnut
			{140, 98, 52},   // worn fretboard
			{186, 140, 78},  // maple
			{214, 168, 96},  // brass
			{235, 200, 120}, // bright brass
			{250, 232, 170}, // string shine
		},
	}
}

// LoadGPL reads a GIMP palette file, for players who want their own colors.
func LoadGPL(path string) (*Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p := &Palette{}
	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "Name:") {
			p.Name = strings.TrimSpace(strings.TrimPrefix(line, "Name:"))
			continue
		}
		if line == "" || line[0] == '#' || strings.HasPrefix(line, "GIMP") || strings.HasPrefix(line, "Columns") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) >= 3 {
			r, err1 := strconv.Atoi(fields[0])
			g, err2 := strconv.Atoi(fields[1])
			b, err3 := strconv.Atoi(fields[2])
			if err1 == nil && err2 == nil && err3 == nil {
				p.Colors = append(p.Colors, RGB{uint8(r), uint8(g), uint8(b)})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(p.Colors) == 0 {
		return nil, fmt.Errorf("no colors found in palette %s", path)
	}
	return p, nil
}

// Lookup interpolates a color for a normalized position 0-1.
func (p *Palette) Lookup(norm float64) RGB {
	if norm < 0 {
		norm = 0
	}
	if norm > 1 {
		norm = 1
	}
	if len(p.Colors) == 1 {
		return p.Colors[0]
	}

	pos := norm * float64(len(p.Colors)-1)
	i := int(pos)
	if i >= len(p.Colors)-1 {
		return p.Colors[len(p.Colors)-1]
	}
	frac := pos - float64(i)

	a, b := p.Colors[i], p.Colors[i+1]
	return RGB{
		uint8(float64(a[0]) + frac*(float64(b[0])-float64(a[0]))),
		uint8(float64(a[1]) + frac*(float64(b[1])-float64(a[1]))),
		uint8(float64(a[2]) + frac*(float64(b[2])-float64(a[2]))),
	}
}
