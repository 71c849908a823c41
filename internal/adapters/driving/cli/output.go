package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/custodia-labs/topgg-sampler/internal/core/domain"
)

// tableHeaders are the columns of the table format.
var tableHeaders = []string{"ID", "NAME", "VOTES", "MEMBERS"}

// renderSample writes sample to w in the requested format.
func renderSample(w io.Writer, format domain.OutputFormat, sample *domain.Sample) error {
	switch format {
	case domain.OutputFormatDump, "":
		return writeJSON(w, sample.Entities)
	case domain.OutputFormatJSON:
		return writeJSON(w, sample)
	case domain.OutputFormatTable:
		return writeTable(w, sample.Entities)
	default:
		return fmt.Errorf("%w: unknown format %q", domain.ErrInvalidInput, format)
	}
}

// writeJSON prints v as indented JSON without escaping HTML characters.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode sample: %w", err)
	}
	return nil
}

func writeTable(w io.Writer, entities []domain.Entity) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
			Header: tw.CellConfig{
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{
					ShowHeader: tw.Off,
				},
			},
		}),
	)

	rows := make([][]string, 0, len(entities))
	for _, e := range entities {
		rows = append(rows, []string{
			e.ID(),
			e.Name(),
			e.Field(domain.EntityKeyVotes),
			e.Field(domain.EntityKeySocialCount),
		})
	}

	table.Header(tableHeaders)
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("failed to build table: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}
