package models

// Example is a built-in prompt-engineering example shown on the examples
// screen. The canned Response stands in for a model reply; running an example
// only counts usage, it never calls a model.
type Example struct {
	Label    string
	Prompt   string
	Response string
}

// UsageStats maps example index to aggregated run count. The backend encodes
// it as a JSON object with stringified integer keys.
type UsageStats map[int]int64
