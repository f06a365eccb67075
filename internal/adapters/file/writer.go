package file

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// reportFilePermission is the mode of newly created report files.
const reportFilePermission = 0o644

// WriteLines writes each line followed by a newline.
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteReport creates or truncates path and writes the lines to it.
func WriteReport(path string, lines []string) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, reportFilePermission)
	if err != nil {
		return fmt.Errorf("open report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close report: %w", cerr)
		}
	}()

	if err := WriteLines(f, lines); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
