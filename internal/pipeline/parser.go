package pipeline

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/onep_client/internal/domain"
)

type Parser struct {
	log          *slog.Logger
	files        <-chan string
	parseResults chan<- *domain.ParseResult
}

func NewParser(log *slog.Logger, files <-chan string, parseResults chan<- *domain.ParseResult) *Parser {
	return &Parser{
		log:          log,
		files:        files,
		parseResults: parseResults,
	}
}

func (p *Parser) Run(ctx context.Context) error {
	defer close(p.parseResults)

	for {
		select {
		case filename, ok := <-p.files:
			if !ok {
				return nil
			}

			p.log.DebugContext(ctx, "received file to parse", slog.String("filename", filename))

			records, err := p.parseRecordsFromFile(filename)
			if err != nil {
				p.log.ErrorContext(ctx, "failed to parse records",
					slog.String("filename", filename),
					slog.String("err", err.Error()),
				)
			}

			select {
			case p.parseResults <- &domain.ParseResult{
				Filename: filename,
				Records:  records,
				Error:    err,
			}:
			case <-ctx.Done():
				return ctx.Err()
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (p *Parser) parseRecordsFromFile(filename string) (_ []*domain.SpoolRecord, err error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	return p.parseRecords(f)
}

// parseRecords decodes a header led TSV of alias, timestamp and value
// columns. One bad row fails the whole file.
func (p *Parser) parseRecords(r io.Reader) ([]*domain.SpoolRecord, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.LazyQuotes = true

	dec, err := csvutil.NewDecoder(reader)
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	var records []*domain.SpoolRecord
	for {
		var record domain.SpoolRecord

		err := dec.Decode(&record)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to decode record #%d: %w", len(records)+1, err)
		}

		if err := record.Validate(); err != nil {
			return nil, fmt.Errorf("invalid record #%d: %w", len(records)+1, err)
		}

		records = append(records, &record)
	}

	p.log.Debug("successfully parsed records", slog.Int("record_count", len(records)))

	return records, nil
}
