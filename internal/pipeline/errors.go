package pipeline

import "fmt"

// Pipeline stages, used to tag a PipelineError
const (
	StageGenerate  = "generate"
	StageTransform = "transform"
	StageRender    = "render"
	StageStore     = "store"
	StageDelay     = "delay"
)

// PipelineError reports a failure inside one stage of a run
type PipelineError struct {
	Stage string
	Err   error
}

// Error implements the error interface
func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying cause for errors.Is/As support
func (e *PipelineError) Unwrap() error {
	return e.Err
}

func stageError(stage string, err error) error {
	if err == nil {
		return nil
	}
	return &PipelineError{Stage: stage, Err: err}
}
