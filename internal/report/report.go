// Package report prints the materials verification summary used to check
// that the upload pipeline actually landed documents in Firestore.
package report

import (
	"context"
	"fmt"
	"io"
	"strings"
)

const (
	// sampleLimit caps the bounded read issued per course.
	sampleLimit = 10
	// sampleDisplay caps how many sampled documents are printed.
	sampleDisplay = 5
)

// MaterialSource fetches material documents for one course. A limit of zero
// or less means the full unbounded set. Satisfied by the store
// implementations and by fakes in tests.
type MaterialSource interface {
	Materials(ctx context.Context, courseID string, limit int) ([]map[string]interface{}, error)
}

// Reporter walks a fixed list of course identifiers and writes a
// human-readable count-and-sample summary for each.
type Reporter struct {
	source MaterialSource
	out    io.Writer
}

func New(source MaterialSource, out io.Writer) *Reporter {
	return &Reporter{source: source, out: out}
}

// Run verifies each course in order. Any error from the source aborts the
// whole run; nothing is retried.
func (r *Reporter) Run(ctx context.Context, courseIDs []string) error {
	banner := strings.Repeat("=", 60)

	fmt.Fprintln(r.out, banner)
	fmt.Fprintln(r.out, "Verifying Materials in Firestore")
	fmt.Fprintln(r.out, banner)

	for _, courseID := range courseIDs {
		fmt.Fprintf(r.out, "\n%s:\n", courseID)

		sample, err := r.source.Materials(ctx, courseID, sampleLimit)
		if err != nil {
			return err
		}

		// The total is computed by re-reading the full set rather than
		// counting server-side; the upload checker has always done it
		// this way and the output depends on it.
		all, err := r.source.Materials(ctx, courseID, 0)
		if err != nil {
			return err
		}

		fmt.Fprintf(r.out, "  Total materials: %d\n", len(all))

		if len(sample) == 0 {
			fmt.Fprintln(r.out, "  ⚠️  No materials found!")
			continue
		}

		fmt.Fprintln(r.out, "  Sample materials:")
		for i, doc := range sample {
			if i == sampleDisplay {
				break
			}
			fmt.Fprintf(r.out, "    - %v (Week %v, %v)\n",
				Field(doc, "filename"), Field(doc, "weekNumber"), Field(doc, "tier"))
		}
	}

	fmt.Fprintf(r.out, "\n%s\n", banner)
	fmt.Fprintln(r.out, "✅ Verification complete!")
	fmt.Fprintln(r.out, banner)

	return nil
}

// Field reads one value from a raw material document, substituting "None"
// when the key is absent. Documents are written by an external pipeline and
// carry no schema guarantee.
func Field(doc map[string]interface{}, key string) interface{} {
	if v, ok := doc[key]; ok && v != nil {
		return v
	}
	return "None"
}
