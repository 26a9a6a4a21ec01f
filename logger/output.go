package logger

// Output categories decide WHAT a command prints at each -v count,
// independent of log severity.
//
//	0 (default) - results, errors with hints
//	1 (-v)      - + per-artifact write status
//	2 (-vv)     - + discovered public paths and messages
//	3 (-vvv)    - + alias decisions, rendered artifact text

// OutputCategory defines a category of output that can be enabled/disabled
type OutputCategory int

const (
	OutputArtifact  OutputCategory = iota // per-artifact written/unchanged status
	OutputDiscovery                       // public paths and message keys
	OutputDecisions                       // skipped alias declarations
	OutputDataDump                        // full rendered artifact text
)

// categoryLevels maps each output category to its minimum verbosity level
var categoryLevels = map[OutputCategory]int{
	OutputArtifact:  VerbosityInfo,
	OutputDiscovery: VerbosityDebug,
	OutputDecisions: VerbosityTrace,
	OutputDataDump:  VerbosityTrace,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		// Unknown category, default to highest verbosity required
		return verbosity >= VerbosityTrace
	}
	return verbosity >= minLevel
}

var categoryNames = map[OutputCategory]string{
	OutputArtifact:  "artifact",
	OutputDiscovery: "discovery",
	OutputDecisions: "decisions",
	OutputDataDump:  "data-dump",
}

// CategoryName returns the human-readable name for an output category
func CategoryName(category OutputCategory) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return "unknown"
}
