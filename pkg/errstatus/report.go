package errstatus

import "time"

// Rule identifies which step of the classification chain produced a result.
type Rule string

const (
	// RuleMissingParameters fires when the translate function or value
	// holder is absent.
	RuleMissingParameters Rule = "missing_parameters"

	// RuleAbort fires when the extracted message contains "aborted".
	RuleAbort Rule = "abort"

	// RuleTimeout fires when the extracted message contains "timeout".
	RuleTimeout Rule = "timeout"

	// RuleExactCode fires when the value itself is numeric and equals one
	// of the known HTTP status codes.
	RuleExactCode Rule = "exact_code"

	// RuleSubstringCode fires when the decimal form of a known code
	// appears in the extracted message.
	RuleSubstringCode Rule = "substring_code"

	// RuleCustom fires when the injected custom classifier returned a
	// non-empty message.
	RuleCustom Rule = "custom"

	// RuleDefault fires when no other rule matched.
	RuleDefault Rule = "default"

	// RuleUnexpected fires when classification itself faulted.
	RuleUnexpected Rule = "unexpected"
)

// Classification is the explain record for a single classification. It
// backs [Classifier.Explain] and the debug log output; UI callers that only
// need the status string use [Classifier.Classify] instead.
type Classification struct {
	// ID uniquely identifies this classification event, for correlating
	// debug logs with traces and support reports.
	ID string `json:"id"`

	// Rule is the chain step that produced the message.
	Rule Rule `json:"rule"`

	// Code is the matched HTTP status code, when Rule is RuleTimeout,
	// RuleExactCode, or RuleSubstringCode. Zero otherwise.
	Code int `json:"code,omitempty"`

	// Key is the catalog key the message was translated from. Empty when
	// Rule is RuleCustom (custom messages bypass translation).
	Key string `json:"key,omitempty"`

	// Message is the final human-readable status message.
	Message string `json:"message"`

	// At records when the classification ran, in UTC.
	At time.Time `json:"at"`
}
