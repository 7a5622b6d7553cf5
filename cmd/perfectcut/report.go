package main

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/perfectcut"
)

// writeReport prints the evaluation of the current knife and, when res is
// not nil, the search trajectory. Numbers follow the conventions of tag.
func writeReport(w io.Writer, tag language.Tag, s perfectcut.Session, eval perfectcut.Evaluation, res *perfectcut.SearchResult) error {
	p := message.NewPrinter(tag)

	if _, err := p.Fprintf(w, "Shape: %d vertices, total area %.4f\n", s.Shape.Len(), s.TotalArea); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "Knife: position %.3f, angle %.1f°\n", s.Knife.Position, s.Knife.Angle); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "Your cut: %.4f (error %+.3f%%, %v)\n", eval.CutArea, eval.Error, eval.Tier); err != nil {
		return err
	}
	if res == nil {
		return nil
	}

	if _, err := p.Fprintf(w, "\nBisection at %.1f°:\n", res.Angle); err != nil {
		return err
	}
	for i := range res.PositionHistory {
		_, err := p.Fprintf(w, "  %3d  position %+.6f  area %.6f  error %+.5f%%\n",
			i+1, res.PositionHistory[i], res.AreaHistory[i], res.ErrorHistory[i])
		if err != nil {
			return err
		}
	}
	_, err := p.Fprintf(w, "Optimal position: %.5f\n", res.OptimalPosition)
	return err
}
