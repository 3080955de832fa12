// Package export serializes computed schedules as JSON.
package export

import (
	"io"

	json "github.com/goccy/go-json"

	"github.com/curvelab/lrplot/internal/schedule"
)

// Document is the JSON shape written by the export command and returned by
// the preview server's schedule endpoint.
type Document struct {
	Steps     int     `json:"steps"`
	Warmup    int     `json:"warmup_steps"`
	InitialLR float64 `json:"learning_rate"`
	FinalLR   float64 `json:"lr_end"`
	Curves    []Curve `json:"curves"`
}

// Curve is one schedule in the document, rates indexed by step.
type Curve struct {
	Power float64   `json:"power"`
	Rates []float64 `json:"rates"`
}

// Build assembles a document from a validated config and its curves.
func Build(cfg schedule.Config, curves []schedule.Curve) Document {
	doc := Document{
		Steps:     cfg.Steps,
		Warmup:    cfg.Warmup,
		InitialLR: cfg.InitialLR,
		FinalLR:   cfg.FinalLR,
		Curves:    make([]Curve, 0, len(curves)),
	}
	for _, c := range curves {
		doc.Curves = append(doc.Curves, Curve{Power: c.Power, Rates: c.Rates})
	}
	return doc
}

// Marshal encodes a document as indented JSON.
func Marshal(doc Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// Write encodes a document to w, trailing newline included.
func Write(w io.Writer, doc Document) error {
	b, err := Marshal(doc)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
