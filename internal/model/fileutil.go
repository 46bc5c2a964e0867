package model

import (
	"bufio"
	"fmt"
	"os"
)

// SourceContext holds a path line from an input file together with up to two
// surrounding lines, so the UI can show where a node was introduced.
type SourceContext struct {
	LineNumber int      // 1-based target line
	Before     []string // Up to two lines preceding the target
	Target     string   // The path line itself
	After      []string // Up to two lines following the target
	ErrorMsg   string   // Set if the file could not be read
}

// GetSourceContext reads filePath and returns the target line with its
// surrounding context.
func GetSourceContext(filePath string, lineNumber int) SourceContext {
	result := SourceContext{LineNumber: lineNumber}

	file, err := os.Open(filePath)
	if err != nil {
		result.ErrorMsg = fmt.Sprintf("Could not read file: %v", err)
		return result
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		result.ErrorMsg = fmt.Sprintf("Error reading file: %v", err)
		return result
	}

	if lineNumber < 1 || lineNumber > len(lines) {
		result.ErrorMsg = fmt.Sprintf("Line %d out of range (file has %d lines)", lineNumber, len(lines))
		return result
	}

	result.Target = lines[lineNumber-1]
	start := lineNumber - 3
	if start < 0 {
		start = 0
	}
	result.Before = lines[start : lineNumber-1]
	end := lineNumber + 2
	if end > len(lines) {
		end = len(lines)
	}
	result.After = lines[lineNumber:end]

	return result
}
