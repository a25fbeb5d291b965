package urlhandler

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Custom errors for input file operations. An unreadable input file is fatal
// to the run, so callers are expected to abort on any of these.
var (
	ErrFileNotFound   = errors.New("input file not found")
	ErrFilePermission = errors.New("permission denied reading input file")
	ErrFileEmpty      = errors.New("input file contains no URLs")
	ErrReadingFile    = errors.New("error reading input file")
)

// ReadURLsFromFile reads a line-oriented URL file. Blank lines are skipped
// and duplicate lines are collapsed by exact string equality, preserving
// first-seen order.
func ReadURLsFromFile(filePath string, logger zerolog.Logger) ([]string, error) {
	fileLogger := logger.With().Str("file_path", filePath).Logger()

	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, filePath)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s (%v)", ErrReadingFile, filePath, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrReadingFile, filePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrFilePermission, filePath)
		}
		return nil, fmt.Errorf("%w: %s (%v)", ErrReadingFile, filePath, err)
	}
	defer file.Close()

	var urls []string
	seen := make(map[string]struct{})
	totalLines := 0
	duplicates := 0

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		totalLines++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if _, ok := seen[line]; ok {
			duplicates++
			continue
		}
		seen[line] = struct{}{}
		urls = append(urls, line)
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return nil, fmt.Errorf("%w: %s (%v)", ErrReadingFile, filePath, scanErr)
	}

	if len(urls) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrFileEmpty, filePath)
	}

	fileLogger.Info().
		Int("total_lines", totalLines).
		Int("unique_urls", len(urls)).
		Int("duplicates", duplicates).
		Msg("Finished reading input file")

	return urls, nil
}
