package annotation

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadProbeList reads a newline-delimited probe ID list from path.
// Leading and trailing whitespace is trimmed from each line and blank
// lines are ignored; order is otherwise preserved exactly as written.
func ReadProbeList(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open probe list: %w", err)
	}
	defer f.Close()

	var ids []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		id := strings.TrimSpace(scanner.Text())
		if id == "" {
			continue
		}
		ids = append(ids, id)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read probe list: %w", err)
	}

	return ids, nil
}
