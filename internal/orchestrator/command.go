package orchestrator

// Command is one operator action in interactive mode. The orchestrator only
// consumes commands from a channel; how they are produced (keyboard, test
// script) is the caller's concern.
type Command int

const (
	// Proceed runs the next URL through the pipeline.
	Proceed Command = iota
	// Skip drops the next URL without processing it.
	Skip
	// Pause holds submission until the next command arrives.
	Pause
	// Quit stops submission; in-flight work is allowed to finish.
	Quit
)

func (c Command) String() string {
	switch c {
	case Proceed:
		return "proceed"
	case Skip:
		return "skip"
	case Pause:
		return "pause"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}
