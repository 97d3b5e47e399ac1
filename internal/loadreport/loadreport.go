// Package loadreport declares the collaborator interfaces that sit at the
// edges of a pipeline run: how a collection is loaded in, and how a result
// is rendered back out. Neither has a production implementation in scope —
// real artifact discovery (directory walking, format detection) and report
// rendering are both explicitly out of scope; only the seams are defined
// here, plus a Static loader for tests and embedding callers that already
// have a *model.Collection in hand.
package loadreport

import (
	"context"

	"github.com/artifactqa/quality-assessment/internal/model"
	"github.com/artifactqa/quality-assessment/internal/pipeline"
)

// Loader builds a Collection from whatever source path means to it — a
// directory of artifact files, a single manifest, a remote fetch. The one
// implementation in this module is Static, which ignores path entirely.
type Loader interface {
	Load(ctx context.Context, path string) (*model.Collection, error)
}

// Exporter renders a pipeline Result into a named output format. No
// concrete exporter ships in this module, and cmd/qualitycli never calls
// one: its --export flag only logs that no Exporter is wired in.
type Exporter interface {
	Export(format string, result pipeline.Result) ([]byte, error)
}

// Static is a Loader that always returns a pre-built collection, regardless
// of the path argument. It exists for tests and for callers that have
// already parsed their own artifacts into a *model.Collection.
type Static struct {
	Collection *model.Collection
}

// NewStatic wraps an already-built collection as a Loader.
func NewStatic(c *model.Collection) Static {
	return Static{Collection: c}
}

// Load returns the wrapped collection, ignoring ctx and path.
func (s Static) Load(_ context.Context, _ string) (*model.Collection, error) {
	return s.Collection, nil
}
