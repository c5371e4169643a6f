// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package seeds reads the user-editable researcher list that seeds the
// collaboration graph.
package seeds

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// DefaultFile is the researcher list read when no input path is given.
const DefaultFile = "researchers.txt"

// Load reads one researcher name per line from path. Lines are trimmed;
// blank lines and exact-text duplicates are dropped. Order is preserved.
// A missing or unreadable file is an error; individual odd lines are not.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading researcher list %s: %w", path, err)
	}
	defer f.Close()

	seen := make(map[string]bool)
	var names []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading researcher list %s: %w", path, err)
	}

	return names, nil
}
