package renderer

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// ppmLineLimit is the longest line the plain PPM format allows
const ppmLineLimit = 70

// WritePPM writes the canvas as a plain (P3) PPM image
func WritePPM(w io.Writer, canvas *Canvas) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", canvas.Width(), canvas.Height()); err != nil {
		return err
	}

	for y := 0; y < canvas.Height(); y++ {
		lineLen := 0
		for x := 0; x < canvas.Width(); x++ {
			c := toRGBA(canvas.PixelAt(x, y))
			for _, v := range [3]uint8{c.R, c.G, c.B} {
				s := strconv.Itoa(int(v))
				if lineLen > 0 && lineLen+1+len(s) > ppmLineLimit {
					if err := bw.WriteByte('\n'); err != nil {
						return err
					}
					lineLen = 0
				}
				if lineLen > 0 {
					if err := bw.WriteByte(' '); err != nil {
						return err
					}
					lineLen++
				}
				if _, err := bw.WriteString(s); err != nil {
					return err
				}
				lineLen += len(s)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
