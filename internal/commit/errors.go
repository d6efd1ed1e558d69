package commit

import "fmt"

// Step identifies one stage of commit creation.
type Step int

const (
	StepWorkdir Step = iota
	StepOpenRepository
	StepReadIdentity
	StepReadIndex
	StepWriteTree
	StepResolveParent
	StepCreateCommit
)

var _stepNames = map[Step]string{
	StepWorkdir:        "determine working directory",
	StepOpenRepository: "open repository",
	StepReadIdentity:   "read identity",
	StepReadIndex:      "read index",
	StepWriteTree:      "write tree",
	StepResolveParent:  "resolve parent",
	StepCreateCommit:   "create commit",
}

func (s Step) String() string {
	if name, ok := _stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Step(%d)", int(s))
}

// StepError reports the step at which commit creation stopped.
// The current branch has not moved when it is returned.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

func stepErr(step Step, err error) error {
	return &StepError{Step: step, Err: err}
}
