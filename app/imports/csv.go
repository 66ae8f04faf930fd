package imports

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/joefazee/wagerlog/models"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Sheet is a decoded CSV upload. Broken records are kept aside with their line.
type Sheet struct {
	Header []string
	Rows   []RawRow
	Lines  []int
	Broken []RejectedRow
}

// Len returns the number of records read, broken ones included
func (s *Sheet) Len() int {
	return len(s.Rows) + len(s.Broken)
}

// ReadCSV decodes an upload into raw rows keyed by the header line.
// maxRows caps the number of records; zero disables the cap.
func ReadCSV(r io.Reader, maxRows int) (*Sheet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read import file: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: file is empty", models.ErrInvalidImportFile)
		}
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidImportFile, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	sheet := &Sheet{Header: header}
	for index := 0; ; index++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if maxRows > 0 && sheet.Len() >= maxRows {
			return nil, fmt.Errorf("%w: more than %d rows", models.ErrImportTooLarge, maxRows)
		}

		line := index + firstDataLine
		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return nil, fmt.Errorf("failed to read import file: %w", err)
			}
			sheet.Broken = append(sheet.Broken, RejectedRow{
				Line:   line,
				Reason: fmt.Sprintf("%s: %v", models.ErrRowParse, parseErr.Err),
				Row:    RawRow{},
			})
			continue
		}
		sheet.Rows = append(sheet.Rows, toRawRow(header, record))
		sheet.Lines = append(sheet.Lines, line)
	}
	return sheet, nil
}

// toRawRow pads short records with empty values and drops extra fields
func toRawRow(header, record []string) RawRow {
	row := make(RawRow, len(header))
	for i, name := range header {
		if name == "" {
			continue
		}
		if i < len(record) {
			row[name] = record[i]
		} else {
			row[name] = ""
		}
	}
	return row
}
