package controllers

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// readIdentifierFile reads one "owner/name" per line. Blank lines and lines
// starting with '#' are skipped.
func readIdentifierFile(path string) ([]string, error) {
	//nolint:gosec // G304: path comes from the --file flag
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open identifier file: %w", err)
	}
	//nolint:errcheck // read-only file
	defer file.Close()

	var identifiers []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		identifiers = append(identifiers, line)
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return nil, fmt.Errorf("failed to read identifier file: %w", scanErr)
	}
	return identifiers, nil
}
