package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"assetledger/report"
)

// BOM lets spreadsheet applications detect UTF-8.
const BOM = "\uFEFF"

// WriteCSV writes one section with a UTF-8 BOM, every field double-quoted
// and rows separated by "\n".
func WriteCSV(w io.Writer, rep *report.Report, section Section) error {
	header, rows, err := table(rep, section)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(BOM); err != nil {
		return err
	}
	writeLine(bw, header)
	for _, row := range rows {
		fields := make([]string, len(row))
		for i, v := range row {
			fields[i] = fmt.Sprint(v)
		}
		writeLine(bw, fields)
	}
	return bw.Flush()
}

func writeLine(bw *bufio.Writer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			bw.WriteByte(',')
		}
		bw.WriteByte('"')
		bw.WriteString(strings.ReplaceAll(f, `"`, `""`))
		bw.WriteByte('"')
	}
	bw.WriteByte('\n')
}
