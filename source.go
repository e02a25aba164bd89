package gazetteer

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/sync/errgroup"
)

// Source yields the flat record sequence the engine indexes. How the records
// are obtained (bundled file, network fetch, embedded asset) is the caller's
// concern; the engine only consumes the sequence once, during Init.
type Source interface {
	Records(ctx context.Context) ([]Record, error)
}

// namedSource lets a Source identify itself in DatasetLoadError.
type namedSource interface {
	Name() string
}

func sourceName(src Source) string {
	if n, ok := src.(namedSource); ok {
		return n.Name()
	}
	return ""
}

// SliceSource serves records from memory. Useful for tests and for callers
// that bundle the dataset into the binary.
type SliceSource []Record

// Records implements Source.
func (s SliceSource) Records(_ context.Context) ([]Record, error) {
	return s, nil
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) ([]Record, error)

// Records implements Source.
func (f SourceFunc) Records(ctx context.Context) ([]Record, error) {
	return f(ctx)
}

// FileSource reads a tab-separated dataset file with columns
//
//	state <tab> district <tab> city <tab> pincode [<tab> locality]
//
// Files whose name ends in ".gz" are transparently gunzipped. Rows with too
// few columns or a malformed pincode are skipped rather than failing the
// whole load; a file that yields nothing usable still fails Init.
type FileSource struct {
	Path string
}

// Name implements namedSource.
func (f FileSource) Name() string { return f.Path }

// Records implements Source.
func (f FileSource) Records(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fi, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset file: %w", err)
	}
	defer fi.Close()

	var r io.Reader = fi
	if strings.HasSuffix(f.Path, ".gz") {
		gz, err := gzip.NewReader(fi)
		if err != nil {
			return nil, fmt.Errorf("creating gzip reader: %w", err)
		}
		defer gz.Close()
		r = gz
	}

	return parseRecords(r)
}

func parseRecords(r io.Reader) ([]Record, error) {
	var recs []Record
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanLines)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 4 {
			continue
		}
		rec := Record{
			State:    strings.TrimSpace(fields[0]),
			District: strings.TrimSpace(fields[1]),
			City:     strings.TrimSpace(fields[2]),
			Pincode:  strings.TrimSpace(fields[3]),
		}
		if len(fields) > 4 {
			rec.Locality = strings.TrimSpace(fields[4])
		}
		if rec.valid() {
			recs = append(recs, rec)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}
	return recs, nil
}

// MultiSource combines several sources into one, fetching them concurrently.
// The combined record order follows the order the sources were given in, so
// canonical display casing (first record wins) stays deterministic.
func MultiSource(srcs ...Source) Source {
	return multiSource(srcs)
}

type multiSource []Source

// Records implements Source.
func (m multiSource) Records(ctx context.Context) ([]Record, error) {
	parts := make([][]Record, len(m))

	g, ctx := errgroup.WithContext(ctx)
	for i, src := range m {
		i, src := i, src
		g.Go(func() error {
			recs, err := src.Records(ctx)
			if err != nil {
				if name := sourceName(src); name != "" {
					return fmt.Errorf("source %s: %w", name, err)
				}
				return err
			}
			parts[i] = recs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []Record
	for _, p := range parts {
		out = append(out, p...)
	}
	return out, nil
}
