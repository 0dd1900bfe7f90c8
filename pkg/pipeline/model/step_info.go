package model

type stepKind string

const (
	StartKind stepKind = "start"
	StepKind  stepKind = "step"
	EndKind   stepKind = "end"
)

// StepInfo describes one step of a pipeline to the attached options.
// Name is a display label only, it is never consulted during execution.
type StepInfo struct {
	Kind  stepKind
	Name  string
	Index int
}

var (
	StartStep = &StepInfo{Kind: StartKind, Name: "start", Index: -1}
	EndStep   = &StepInfo{Kind: EndKind, Name: "end", Index: -1}
)
