// Package csvio reads CSV header rows for dataset validation.
package csvio

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadHeaderRow reads the first line of a local CSV file and splits it on the
// separator. The split is used as-is: duplicate headers are preserved and
// comparison stays exact-string.
func ReadHeaderRow(path, separator string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return nil, fmt.Errorf("read %s: file is empty", path)
	}
	return SplitHeaderLine(scanner.Text(), separator), nil
}

// SplitHeaderLine splits a raw header line on the separator, trimming only a
// trailing carriage return.
func SplitHeaderLine(line, separator string) []string {
	return strings.Split(strings.TrimSuffix(line, "\r"), separator)
}
