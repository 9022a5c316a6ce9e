package model

import (
	"bufio"
	"fmt"
	"image/color"
	"os"
	"os/exec"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	macosClearCmd = "clear"
)

var (
	AliveColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	DeadColor  = color.RGBA{A: 0xff}
)

// TerminalRenderer implements basic terminal rendering on top of ExportImage
type TerminalRenderer struct {
	frame []color.RGBA
}

// Display renders the grid to the terminal
func (r *TerminalRenderer) Display(e *Engine) error {
	if n := e.GetWidth() * e.GetHeight(); len(r.frame) != n {
		r.frame = make([]color.RGBA, n)
	}
	if err := e.ExportImage(r.frame, AliveColor, DeadColor); err != nil {
		return err
	}

	w := bufio.NewWriter(os.Stdout)
	for i, c := range r.frame {
		if c == AliveColor {
			w.WriteString(gridPosBlock)
		} else {
			w.WriteString(gridPosEmpty)
		}
		if (i+1)%e.GetWidth() == 0 {
			w.WriteByte('\n')
		}
	}
	return w.Flush()
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
