package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Line is one log line with the severity parsed out of it.
type Line struct {
	Text  string
	Level string // "debug", "info", "warning", "error", ... or "" when unknown
}

// Read returns at most maxLines from the end of the file at path. A missing
// file yields no lines and no error.
func Read(path string, maxLines int) ([]Line, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	start := 0
	if count == maxLines {
		start = idx
	}
	lines := make([]Line, count)
	for i := 0; i < count; i++ {
		text := ring[(start+i)%maxLines]
		lines[i] = Line{Text: text, Level: Level(text)}
	}
	return lines, nil
}

// Level extracts the logrus level from a text-formatted ("level=warning") or
// JSON-formatted ({"level":"warning"}) line.
func Level(line string) string {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "{") {
		var entry struct {
			Level string `json:"level"`
		}
		if err := json.Unmarshal([]byte(trimmed), &entry); err == nil {
			return strings.ToLower(entry.Level)
		}
		return ""
	}
	for _, field := range strings.Fields(trimmed) {
		if value, ok := strings.CutPrefix(field, "level="); ok {
			return strings.ToLower(strings.Trim(value, `"`))
		}
	}
	return ""
}
