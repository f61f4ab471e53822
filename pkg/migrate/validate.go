package migrate

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/multierr"
)

var sqlFileRe = regexp.MustCompile(`^(\d{14})_[a-z0-9_]+\.sql$`)

const (
	annotationUp             = "-- +goose Up"
	annotationDown           = "-- +goose Down"
	annotationStatementBegin = "-- +goose StatementBegin"
	annotationStatementEnd   = "-- +goose StatementEnd"
)

// ValidateDir checks every .sql file in dir and reports all problems at once:
// filename shape, duplicate versions, an Up section followed by a Down section,
// and balanced StatementBegin/StatementEnd blocks.
func ValidateDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("dir is required")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read dir %q: %w", dir, err)
	}

	var errs error
	versions := map[string]string{}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".sql") {
			continue
		}

		m := sqlFileRe.FindStringSubmatch(name)
		if m == nil {
			errs = multierr.Append(errs, fmt.Errorf("invalid migration filename %q (expected YYYYMMDDHHMMSS_name.sql)", name))
			continue
		}
		if prev, ok := versions[m[1]]; ok {
			errs = multierr.Append(errs, fmt.Errorf("duplicate migration version %s in %q and %q", m[1], prev, name))
		}
		versions[m[1]] = name

		body, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("read file %q: %w", name, err))
			continue
		}
		errs = multierr.Append(errs, checkAnnotations(name, body))
	}
	return errs
}

func checkAnnotations(name string, body []byte) error {
	var (
		upLine, downLine int
		openBlock        int
		errs             error
	)

	scanner := bufio.NewScanner(bytes.NewReader(body))
	for line := 1; scanner.Scan(); line++ {
		switch strings.TrimSpace(scanner.Text()) {
		case annotationUp:
			upLine = line
		case annotationDown:
			downLine = line
			if openBlock != 0 {
				errs = multierr.Append(errs, fmt.Errorf("migration %q: Down at line %d starts inside an open statement block", name, line))
			}
		case annotationStatementBegin:
			if openBlock != 0 {
				errs = multierr.Append(errs, fmt.Errorf("migration %q: nested StatementBegin at line %d", name, line))
			}
			openBlock = line
		case annotationStatementEnd:
			if openBlock == 0 {
				errs = multierr.Append(errs, fmt.Errorf("migration %q: StatementEnd at line %d without StatementBegin", name, line))
			}
			openBlock = 0
		}
	}
	if err := scanner.Err(); err != nil {
		return multierr.Append(errs, fmt.Errorf("scan %q: %w", name, err))
	}

	switch {
	case upLine == 0:
		errs = multierr.Append(errs, fmt.Errorf("migration %q missing %q", name, annotationUp))
	case downLine == 0:
		errs = multierr.Append(errs, fmt.Errorf("migration %q missing %q", name, annotationDown))
	case downLine < upLine:
		errs = multierr.Append(errs, fmt.Errorf("migration %q has Down before Up", name))
	}
	if openBlock != 0 {
		errs = multierr.Append(errs, fmt.Errorf("migration %q: StatementBegin at line %d is never closed", name, openBlock))
	}
	return errs
}
