package main

import (
	"fmt"
	"io"

	"v1-esp/internal/config"
	"v1-esp/internal/display"
	"v1-esp/internal/render"
)

func buildPackets(alerts []config.AlertConfig) ([][]byte, error) {
	out := make([][]byte, 0, len(alerts))
	for i, a := range alerts {
		sel, err := a.Selection()
		if err != nil {
			return nil, fmt.Errorf("alert %d: %w", i, err)
		}
		pkt, err := display.Frame(sel)
		if err != nil {
			return nil, fmt.Errorf("alert %d: %w", i, err)
		}
		out = append(out, pkt)
	}
	return out, nil
}

func writePackets(w io.Writer, format string, packets [][]byte) error {
	for _, pkt := range packets {
		var err error
		switch format {
		case "raw":
			_, err = w.Write(pkt)
		case "hex":
			_, err = fmt.Fprintln(w, render.Hex(pkt))
		default:
			_, err = fmt.Fprintln(w, render.CArray(pkt))
		}
		if err != nil {
			return err
		}
	}
	return nil
}
