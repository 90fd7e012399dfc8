// Package samples reads latency sample files written by the lock benchmark.
package samples

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Loader reads sample files named <primitive>_<metric>.dat from a single
// directory. Each file holds one base-10 integer per line, a latency
// measurement in nanoseconds.
type Loader struct {
	Dir string
}

// NewLoader creates a Loader rooted at dir.
func NewLoader(dir string) *Loader {
	return &Loader{Dir: dir}
}

// Path returns the sample file path for a (primitive, metric) pair.
func (l *Loader) Path(primitive, metric string) string {
	return filepath.Join(l.Dir, primitive+"_"+metric+".dat")
}

// Load returns the samples for one (primitive, metric) pair in file order.
// Blank lines are skipped; any other line that does not parse as an integer
// fails the load, as does a file with no samples at all.
func (l *Loader) Load(primitive, metric string) ([]int64, error) {
	path := l.Path(primitive, metric)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open samples: %w", err)
	}
	defer f.Close()

	var values []int64
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: parse sample %q: %w", path, line, text, err)
		}
		values = append(values, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%s: no samples", path)
	}
	return values, nil
}
