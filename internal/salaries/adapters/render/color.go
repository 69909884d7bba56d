package render

import (
	"fmt"
	"math"
)

type rgb struct {
	r, g, b float64
}

func hex(s string) rgb {
	var c [3]uint8
	_, _ = fmt.Sscanf(s, "%02x%02x%02x", &c[0], &c[1], &c[2])
	return rgb{float64(c[0]), float64(c[1]), float64(c[2])}
}

func (c rgb) String() string {
	clamp := func(v float64) uint8 { return uint8(math.Max(0, math.Min(255, math.Round(v)))) }
	return fmt.Sprintf("#%02x%02x%02x", clamp(c.r), clamp(c.g), clamp(c.b))
}

// orange ramp, light to dark
var oranges = []rgb{
	hex("fff5eb"), hex("fee6ce"), hex("fdd0a2"), hex("fdae6b"), hex("fd8d3c"),
	hex("f16913"), hex("d94801"), hex("a63603"), hex("7f2704"),
}

// interpolate maps t in [0,1] onto the ramp.
func interpolate(ramp []rgb, t float64) rgb {
	if math.IsNaN(t) || t <= 0 {
		return ramp[0]
	}
	if t >= 1 {
		return ramp[len(ramp)-1]
	}
	pos := t * float64(len(ramp)-1)
	i := int(pos)
	f := pos - float64(i)
	a, b := ramp[i], ramp[i+1]
	return rgb{a.r + (b.r-a.r)*f, a.g + (b.g-a.g)*f, a.b + (b.b-a.b)*f}
}

var set1 = []string{"e41a1c", "377eb8", "4daf4a", "984ea3", "ff7f00", "ffff33", "a65628", "f781bf", "999999"}

var category10 = []string{
	"1f77b4", "ff7f0e", "2ca02c", "d62728", "9467bd",
	"8c564b", "e377c2", "7f7f7f", "bcbd22", "17becf",
}

// ordinal assigns palette colors to keys in first-seen order.
type ordinal struct {
	palette []string
	seen    map[string]int
}

func newOrdinal(palette []string) *ordinal {
	return &ordinal{palette: palette, seen: map[string]int{}}
}

func (o *ordinal) color(key string) string {
	i, ok := o.seen[key]
	if !ok {
		i = len(o.seen)
		o.seen[key] = i
	}
	return o.palette[i%len(o.palette)]
}
