// Package export writes temperature sweeps as CSV or JSON.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/boltzmannizer/internal/sweep"
)

var ErrGridMismatch = errors.New("export: series do not share a temperature grid")

type Column struct {
	Name   string    `json:"name"`
	Color  string    `json:"color,omitempty"`
	Values []float64 `json:"values"`
}

type Document struct {
	Quantity     string    `json:"quantity"`
	XLabel       string    `json:"x_label"`
	YLabel       string    `json:"y_label"`
	Temperatures []float64 `json:"temperatures"`
	Series       []Column  `json:"series"`
}

// NewDocument collects series sampled on a common grid.
func NewDocument(q sweep.Quantity, xLabel, yLabel string, series []sweep.Series) (Document, error) {
	temps, err := commonGrid(series)
	if err != nil {
		return Document{}, err
	}
	doc := Document{
		Quantity:     q.String(),
		XLabel:       xLabel,
		YLabel:       yLabel,
		Temperatures: temps,
		Series:       make([]Column, len(series)),
	}
	for i, s := range series {
		doc.Series[i] = Column{Name: s.Name, Color: s.Color, Values: s.Values}
	}
	return doc, nil
}

func WriteJSON(w io.Writer, doc Document) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

// WriteCSV writes a temperature column followed by one column per series.
func WriteCSV(w io.Writer, series []sweep.Series) error {
	temps, err := commonGrid(series)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := []string{"temperature"}
	for _, s := range series {
		header = append(header, s.Name)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, T := range temps {
		row := []string{strconv.FormatFloat(T, 'f', 6, 64)}
		for _, s := range series {
			row = append(row, strconv.FormatFloat(s.Values[i], 'f', 6, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func commonGrid(series []sweep.Series) ([]float64, error) {
	if len(series) == 0 {
		return []float64{}, nil
	}
	temps := series[0].Temperatures
	for _, s := range series {
		if len(s.Values) != len(temps) || !floats.Equal(s.Temperatures, temps) {
			return nil, fmt.Errorf("%w: %s", ErrGridMismatch, s.Name)
		}
	}
	return temps, nil
}
