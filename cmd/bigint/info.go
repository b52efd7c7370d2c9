package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/govalues/bigint"
)

var labelColor = color.New(color.FgCyan)

type infoPayload struct {
	Value         bigint.Int `json:"value"`
	Sign          int        `json:"sign"`
	Digits        int        `json:"digits"`
	TrailingZeros int        `json:"trailing_zeros"`
	Segments      []uint32   `json:"segments"`
}

func newInfoCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info number",
		Short: "Describe the representation of a number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cmd.Flags().GetString("format")
			if err != nil {
				return fmt.Errorf("failed to get format flag: %w", err)
			}
			x, err := a.calc.parse(args[0])
			if err != nil {
				return err
			}
			p := infoPayload{
				Value:         x,
				Sign:          x.Sign(),
				Digits:        x.Prec(),
				TrailingZeros: x.TrailingZeros(),
				Segments:      x.Segments(),
			}
			switch format {
			case "text":
				return writeInfoText(cmd.OutOrStdout(), p)
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(p)
			default:
				return fmt.Errorf("unknown format: %s", format)
			}
		},
	}
	cmd.Flags().String("format", "text", "output format (text|json)")
	return cmd
}

// writeInfoText prints p as aligned label/value lines.
// Counts are grouped by thousands.
func writeInfoText(w io.Writer, p infoPayload) error {
	printer := message.NewPrinter(language.English)
	lines := []struct {
		label string
		value string
	}{
		{"value", p.Value.String()},
		{"sign", printer.Sprintf("%d", p.Sign)},
		{"digits", printer.Sprintf("%d", p.Digits)},
		{"trailing zeros", printer.Sprintf("%d", p.TrailingZeros)},
		{"segments", printer.Sprintf("%d", len(p.Segments))},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%s %s\n", labelColor.Sprintf("%-15s", l.label+":"), l.value); err != nil {
			return err
		}
	}
	return nil
}
