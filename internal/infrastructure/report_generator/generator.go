package report_generator

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kurochkinivan/onep_client/internal/domain"
)

const (
	rowHeight    = 7
	headerHeight = 12
	// rejected timestamps listed per alias before the rest is summarized
	maxRejectedListed = 20
)

var (
	titleStyle  = props.Text{Size: 14, Style: fontstyle.Bold, Align: align.Center}
	labelStyle  = props.Text{Size: 9, Style: fontstyle.Bold}
	valueStyle  = props.Text{Size: 9}
	headerStyle = props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Center}
	cellStyle   = props.Text{Size: 9, Align: align.Center}
)

type ReportGenerator struct{}

func New() *ReportGenerator {
	return &ReportGenerator{}
}

// GenerateReport renders one upload result as a PDF at outputPath.
func (g *ReportGenerator) GenerateReport(outputPath string, result *domain.UploadResult) error {
	cfg := config.NewBuilder().
		WithLeftMargin(10).
		WithTopMargin(15).
		WithRightMargin(10).
		Build()

	m := maroto.New(cfg)

	m.AddRow(headerHeight, text.NewCol(12, "Spool upload report", titleStyle))
	m.AddRows(summaryRows(result)...)
	m.AddRows(line.NewRow(4))
	m.AddRows(outcomeRows(result.Outcomes)...)
	m.AddRows(rejectedRows(result.Outcomes)...)

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate pdf: %w", err)
	}

	if err := doc.Save(outputPath); err != nil {
		return fmt.Errorf("failed to save pdf: %w", err)
	}

	return nil
}

func summaryRows(result *domain.UploadResult) []core.Row {
	device := result.Device

	fields := [][2]string{
		{"File", filepath.Base(result.Filename)},
		{"Status", string(result.Status)},
		{"Uploaded at", result.UploadedAt.Format(time.RFC3339)},
		{"Device", fmt.Sprintf("%s / %s / %s", device.Vendor, device.Model, device.Serial)},
		{"Client version", device.Version},
		{"Activated", strconv.FormatBool(device.Activated)},
		{"Online", strconv.FormatBool(device.Online)},
	}

	if result.Error != nil {
		fields = append(fields, [2]string{"Error", result.Error.Error()})
	}

	rows := make([]core.Row, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, row.New(rowHeight).Add(
			text.NewCol(3, f[0], labelStyle),
			text.NewCol(9, f[1], valueStyle),
		))
	}

	return rows
}

func outcomeRows(outcomes []*domain.AliasOutcome) []core.Row {
	if len(outcomes) == 0 {
		return []core.Row{row.New(rowHeight).Add(text.NewCol(12, "No records were sent.", valueStyle))}
	}

	rows := make([]core.Row, 0, len(outcomes)+1)
	rows = append(rows, row.New(rowHeight).Add(
		text.NewCol(4, "Alias", headerStyle),
		text.NewCol(2, "Sent", headerStyle),
		text.NewCol(2, "Accepted", headerStyle),
		text.NewCol(4, "Error", headerStyle),
	))

	for _, o := range outcomes {
		var errText string
		if o.Error != nil {
			errText = o.Error.String()
		}

		rows = append(rows, row.New(rowHeight).Add(
			text.NewCol(4, o.Alias, cellStyle),
			text.NewCol(2, strconv.Itoa(o.Sent), cellStyle),
			text.NewCol(2, o.Success.String(), cellStyle),
			text.NewCol(4, errText, cellStyle),
		))
	}

	return rows
}

func rejectedRows(outcomes []*domain.AliasOutcome) []core.Row {
	var rows []core.Row

	for _, o := range outcomes {
		if len(o.Rejected) == 0 {
			continue
		}

		timestamps := make([]string, 0, min(len(o.Rejected), maxRejectedListed))
		for _, r := range o.Rejected[:min(len(o.Rejected), maxRejectedListed)] {
			timestamps = append(timestamps, r.Timestamp())
		}

		listed := strings.Join(timestamps, ", ")
		if rest := len(o.Rejected) - len(timestamps); rest > 0 {
			listed += fmt.Sprintf(" and %d more", rest)
		}

		rows = append(rows, row.New(rowHeight*2).Add(
			text.NewCol(3, "Rejected "+o.Alias, labelStyle),
			text.NewCol(9, listed, valueStyle),
		))
	}

	return rows
}
