package model

import (
	"fmt"
	"io"

	"github.com/wildstyl3r/graftsas/internal/utils"
)

type Point struct {
	Q float64 `csv:"q"` // [Å^-1]
	I float64 `csv:"I"` // [cm^-1]
}

// Curve is a sampled intensity of one model.
type Curve struct {
	Model  string
	Points []Point
}

func (c Curve) Q() []float64 {
	qs := make([]float64, len(c.Points))
	for i := range c.Points {
		qs[i] = c.Points[i].Q
	}
	return qs
}

func (c Curve) I() []float64 {
	is := make([]float64, len(c.Points))
	for i := range c.Points {
		is[i] = c.Points[i].I
	}
	return is
}

func (c Curve) WriteCSV(w io.Writer) error {
	return utils.WriteCSV(w, c.Points)
}

// Save writes the curve to outputPath/<name>.csv.
func (c Curve) Save(makeDir bool, outputPath, name string) error {
	file, err := utils.CreateFile(makeDir, outputPath, name+".csv")
	if err != nil {
		return fmt.Errorf("unable to save %s: %w", c.Model, err)
	}
	if err := c.WriteCSV(file); err != nil {
		file.Close()
		return fmt.Errorf("unable to save %s: %w", c.Model, err)
	}
	return file.Close()
}
