package constants

// OutputFormat selects how simulation summaries are printed.
type OutputFormat string

const (
	// FormatText prints a human-readable table.
	FormatText OutputFormat = "text"

	// FormatJSON prints the summary mapping as JSON.
	FormatJSON OutputFormat = "json"

	// FormatYAML prints the summary mapping as YAML.
	FormatYAML OutputFormat = "yaml"
)

// Valid returns true if the format is a recognized value.
func (f OutputFormat) Valid() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return true
	}
	return false
}

// String returns the string representation of the format.
func (f OutputFormat) String() string {
	return string(f)
}
