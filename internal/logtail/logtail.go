package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/five82/pokedex/internal/logging"
)

// Read returns the last n lines of the log at path, oldest first.
// A missing file yields no lines. n <= 0 returns the whole file.
func Read(path string, n int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	var tail []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		tail = append(tail, scanner.Text())
		if n > 0 && len(tail) > 2*n {
			tail = append(tail[:0], tail[len(tail)-n:]...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	if n > 0 && len(tail) > n {
		tail = tail[len(tail)-n:]
	}
	return tail, nil
}

var levelPattern = regexp.MustCompile(`(?:^|\s)level=([A-Za-z]+)|"level"\s*:\s*"([A-Za-z]+)"`)

// Level extracts the record level from a console or JSON log line.
func Level(line string) (slog.Level, bool) {
	match := levelPattern.FindStringSubmatch(line)
	if match == nil {
		return 0, false
	}
	name := match[1]
	if name == "" {
		name = match[2]
	}
	return logging.ParseLevel(name), true
}

// FilterLevel keeps lines whose level is at least min. An empty min keeps
// everything; lines without a level are dropped once a minimum is set.
func FilterLevel(lines []string, min string) []string {
	if strings.TrimSpace(min) == "" {
		return lines
	}
	threshold := logging.ParseLevel(min)
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if level, ok := Level(line); ok && level >= threshold {
			kept = append(kept, line)
		}
	}
	return kept
}
