package driven

import (
	"time"

	"github.com/custodia-labs/docsuggest/internal/core/domain"
)

// IndexMetrics records figures about the title index.
type IndexMetrics interface {
	// ObserveBuild records one completed build.
	ObserveBuild(reason domain.RebuildReason, stats domain.IndexStats)

	// ObserveBuildFailure records a build that could not load its snapshot.
	ObserveBuildFailure(reason domain.RebuildReason)

	// ObserveQuery records one suggestion query.
	ObserveQuery(results int, elapsed time.Duration, err error)
}

// RebuildTrigger asks for an index rebuild without waiting for it.
type RebuildTrigger interface {
	Trigger(reason domain.RebuildReason)
}
