package repository

// Codecs supported by the file driver.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)
