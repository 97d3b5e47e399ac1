package coherence

import "github.com/artifactqa/quality-assessment/internal/model"

// FlowDesignLevel classifies a flow-design observation. These never adjust
// a maturity or health score — see §4.3.3.
type FlowDesignLevel string

const (
	FlowDesignNone    FlowDesignLevel = "none"
	FlowDesignInfo    FlowDesignLevel = "info"
	FlowDesignWarning FlowDesignLevel = "warning"
)

// FlowDesignInfoResult is the non-scoring observation derived from a single use
// case's main-flow length.
type FlowDesignInfoResult struct {
	UseCaseID      string
	MainFlowLength int
	Level          FlowDesignLevel
	Message        string
}

// checkFlowDesignInfo classifies a use case's main-flow length: a single
// step may be fine for a simple notification or read-only flow; more than
// fifteen suggests splitting it up.
func checkFlowDesignInfo(uc *model.UseCase) FlowDesignInfoResult {
	n := len(uc.MainFlow)
	r := FlowDesignInfoResult{UseCaseID: uc.ID, MainFlowLength: n, Level: FlowDesignNone}

	switch {
	case n == 1:
		r.Level = FlowDesignInfo
		r.Message = "a single-step flow may be fine for a simple notification or read-only use case"
	case n > 15:
		r.Level = FlowDesignWarning
		r.Message = "flow has more than 15 steps; consider splitting it into alternative flows or separate use cases"
	}
	return r
}
