package tree

import (
	"bufio"
	"os"

	"github.com/pkg/errors"
)

// ReadLines slurps a path-line file into a slice of raw lines. A missing or
// unreadable file is fatal for the run; there is no transient-failure domain
// in a single-shot batch tool.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	// Generous buffer for very long path lines
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return lines, nil
}
