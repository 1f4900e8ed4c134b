package app

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"go.trai.ch/objcache/internal/core/domain"
	"go.trai.ch/zerr"
)

// ReadHeadersFile reads a newline separated list of header paths.
// Blank lines and lines starting with '#' are ignored.
func ReadHeadersFile(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, errors.Join(domain.ErrHeadersFileReadFailed, zerr.With(err, "path", path))
	}
	defer f.Close() //nolint:errcheck // Read-only file

	var headers []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		headers = append(headers, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Join(domain.ErrHeadersFileReadFailed, zerr.With(err, "path", path))
	}

	return headers, nil
}
