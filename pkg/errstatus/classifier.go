package errstatus

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TranslateFunc resolves a dotted catalog key (e.g. "errStatus.404") to a
// localized message. The classifier treats it as a total function: it must
// return a string for every key it is asked about. Violations of this
// contract (including panics) are a caller responsibility; the classifier
// converts them into the unexpected-error message rather than propagating.
type TranslateFunc func(key string) string

// CustomClassifier is an optional override hook. It receives the original
// error value (not the extracted message) and returns a final, already
// human-readable message, or "" when it has no opinion. A non-empty result
// bypasses translation entirely.
type CustomClassifier func(value any) string

// Chain composes several custom classifiers into one. The composed
// classifier asks each in order and returns the first non-empty opinion.
func Chain(classifiers ...CustomClassifier) CustomClassifier {
	return func(value any) string {
		for _, c := range classifiers {
			if c == nil {
				continue
			}
			if msg := c(value); msg != "" {
				return msg
			}
		}
		return ""
	}
}

// Options configures diagnostic logging for a [Classifier].
type Options struct {
	// Debug enables diagnostic logging of every classification.
	Debug bool

	// ServerOnly restricts diagnostic logging to server execution
	// contexts (see ServerProbe). Meaningful only when Debug is true.
	ServerOnly bool
}

// Option customizes a [Classifier] created by [New].
type Option func(*Classifier)

// WithCustomClassifier installs a custom classifier consulted when no
// built-in rule matches. Use [Chain] to install more than one.
func WithCustomClassifier(custom CustomClassifier) Option {
	return func(c *Classifier) { c.custom = custom }
}

// WithOptions sets the diagnostic logging options.
func WithOptions(opts Options) Option {
	return func(c *Classifier) { c.opts = opts }
}

// WithLogger sets a custom [*slog.Logger] for diagnostic output. If not
// called, [slog.Default] is used. The logger is only consulted when
// [Options.Debug] is enabled.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Classifier) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithServerProbe injects the server-context probe used by the ServerOnly
// logging gate. If not called, [DefaultServerProbe] is used.
func WithServerProbe(probe ServerProbe) Option {
	return func(c *Classifier) {
		if probe != nil {
			c.probe = probe
		}
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider used for
// classification spans. If not called, the global provider is used.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Classifier) {
		if tp != nil {
			c.tracer = tp.Tracer(tracerName)
		}
	}
}

// Classifier turns error values into human-readable status messages. It is
// a stateless, pure read→string pipeline aside from optional debug logging
// and tracing; it never mutates the classified value and never panics to
// the caller. A Classifier is safe for concurrent use.
//
// Create one with [New] and classify either directly via
// [Classifier.Classify] or reactively via [Classifier.Watch].
type Classifier struct {
	translate TranslateFunc
	custom    CustomClassifier
	opts      Options
	logger    *slog.Logger
	probe     ServerProbe
	tracer    trace.Tracer
}

// New creates a Classifier using the given translate function. A nil
// translate function is tolerated: every classification then yields the
// missing-parameters status (rendered as the raw key, since there is no
// function to translate it).
func New(translate TranslateFunc, opts ...Option) *Classifier {
	c := &Classifier{
		translate: translate,
		logger:    slog.Default(),
		probe:     DefaultServerProbe,
		tracer:    otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify maps the given error value to a status message. The returned
// string is always non-empty as long as the translate function honors its
// totality contract. Classify never panics; faults inside the translate or
// custom-classifier callbacks produce the unexpected-error message.
func (c *Classifier) Classify(ctx context.Context, value any) string {
	return c.explain(ctx, value).Message
}

// Explain classifies the given error value and returns the full
// [Classification] record describing which rule matched. The Message field
// carries the same string [Classifier.Classify] would return.
func (c *Classifier) Explain(ctx context.Context, value any) Classification {
	return c.explain(ctx, value)
}

// holderAbsent is the sentinel classified when a Computed has no holder.
// It routes the missing-parameters guard through the normal pipeline so
// that logging and tracing stay uniform.
type holderAbsent struct{}

// explain runs the classification chain inside a span and under the
// recovery guard, then emits the gated diagnostic log record.
func (c *Classifier) explain(ctx context.Context, value any) (result Classification) {
	ctx, span := c.tracer.Start(ctx, "errstatus.Classify")
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			result = Classification{
				ID:      uuid.New().String(),
				Rule:    RuleUnexpected,
				Key:     KeyUnexpectedError,
				Message: c.safeTranslate(KeyUnexpectedError),
				At:      time.Now().UTC(),
			}
			span.SetAttributes(spanAttributes(result)...)
			c.log(ctx, result, r)
		}
	}()

	result = c.run(value)
	span.SetAttributes(spanAttributes(result)...)
	c.log(ctx, result, nil)
	return result
}

// run evaluates the priority chain. It may panic (translate, custom
// classifier, or a misbehaving error value); explain recovers.
func (c *Classifier) run(value any) Classification {
	cl := Classification{
		ID: uuid.New().String(),
		At: time.Now().UTC(),
	}

	// Missing-parameters guard.
	if _, absent := value.(holderAbsent); absent || c.translate == nil {
		cl.Rule = RuleMissingParameters
		cl.Key = KeyMissingParameters
		cl.Message = c.safeTranslate(KeyMissingParameters)
		return cl
	}

	// No current error: no text rule can match, but the custom classifier
	// still gets a chance before the default message.
	if value == nil {
		if msg := c.customOpinion(value); msg != "" {
			cl.Rule = RuleCustom
			cl.Message = msg
			return cl
		}
		cl.Rule = RuleDefault
		cl.Key = KeyDefaultStatusError
		cl.Message = c.translate(KeyDefaultStatusError)
		return cl
	}

	msg := extractMessage(value)

	// Special-case text matches. "aborted" outranks "timeout".
	if strings.Contains(msg, "aborted") {
		cl.Rule = RuleAbort
		cl.Key = KeyAbortError
		cl.Message = c.translate(KeyAbortError)
		return cl
	}
	if strings.Contains(msg, "timeout") {
		cl.Rule = RuleTimeout
		cl.Code = 408
		cl.Key = CodeKey(408)
		cl.Message = c.translate(cl.Key)
		return cl
	}

	// Exact numeric match against the known codes.
	if n, _, ok := numericValue(value); ok {
		for _, code := range StatusCodes {
			if n == float64(code) {
				cl.Rule = RuleExactCode
				cl.Code = code
				cl.Key = CodeKey(code)
				cl.Message = c.translate(cl.Key)
				return cl
			}
		}
	}

	// Substring scan in fixed order; first match wins. This is a heuristic
	// with known false positives ("1500ms" contains "500") that callers
	// depend on staying stable.
	for _, code := range StatusCodes {
		if strings.Contains(msg, strconv.Itoa(code)) {
			cl.Rule = RuleSubstringCode
			cl.Code = code
			cl.Key = CodeKey(code)
			cl.Message = c.translate(cl.Key)
			return cl
		}
	}

	if msg := c.customOpinion(value); msg != "" {
		cl.Rule = RuleCustom
		cl.Message = msg
		return cl
	}

	cl.Rule = RuleDefault
	cl.Key = KeyDefaultStatusError
	cl.Message = c.translate(KeyDefaultStatusError)
	return cl
}

// customOpinion invokes the custom classifier, if any, with the original
// error value.
func (c *Classifier) customOpinion(value any) string {
	if c.custom == nil {
		return ""
	}
	return c.custom(value)
}

// safeTranslate renders a key through the translate function, falling back
// to the raw key when the function is absent or faults. Used on the guard
// paths where a second fault must not escape.
func (c *Classifier) safeTranslate(key string) (msg string) {
	if c.translate == nil {
		return key
	}
	defer func() {
		if recover() != nil {
			msg = key
		}
	}()
	return c.translate(key)
}

// shouldLog implements the logging policy: emit only when Debug is set,
// and when ServerOnly is also set, only in a server execution context.
func (c *Classifier) shouldLog() bool {
	if !c.opts.Debug {
		return false
	}
	if c.opts.ServerOnly {
		return c.probe()
	}
	return true
}

// log emits the gated diagnostic record for a classification. Guard-path
// results (missing parameters, unexpected fault) log at Warn, everything
// else at Debug.
func (c *Classifier) log(ctx context.Context, cl Classification, fault any) {
	if !c.shouldLog() {
		return
	}
	attrs := []any{
		"id", cl.ID,
		"rule", string(cl.Rule),
		"key", cl.Key,
		"message", cl.Message,
	}
	if cl.Code != 0 {
		attrs = append(attrs, "code", cl.Code)
	}
	if fault != nil {
		attrs = append(attrs, "panic", fault)
	}
	switch cl.Rule {
	case RuleMissingParameters, RuleUnexpected:
		c.logger.WarnContext(ctx, "errstatus: classification guard triggered", attrs...)
	default:
		c.logger.DebugContext(ctx, "errstatus: classified error value", attrs...)
	}
}

// spanAttributes converts a classification into OTel span attributes.
func spanAttributes(cl Classification) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("errstatus.rule", string(cl.Rule)),
	}
	if cl.Key != "" {
		attrs = append(attrs, attribute.String("errstatus.key", cl.Key))
	}
	if cl.Code != 0 {
		attrs = append(attrs, attribute.Int("errstatus.code", cl.Code))
	}
	return attrs
}

// extractMessage derives the plain-text message used by the substring
// rules: strings verbatim, Go errors via Error(), numbers in decimal form,
// anything else the empty string.
func extractMessage(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case error:
		return v.Error()
	}
	if _, text, ok := numericValue(value); ok {
		return text
	}
	return ""
}

// numericValue reports whether the value is numeric, returning it as a
// float64 for exact-code comparison alongside its decimal string form.
func numericValue(value any) (float64, string, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), strconv.Itoa(v), true
	case int8:
		return float64(v), strconv.FormatInt(int64(v), 10), true
	case int16:
		return float64(v), strconv.FormatInt(int64(v), 10), true
	case int32:
		return float64(v), strconv.FormatInt(int64(v), 10), true
	case int64:
		return float64(v), strconv.FormatInt(v, 10), true
	case uint:
		return float64(v), strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return float64(v), strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return float64(v), strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return float64(v), strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return float64(v), strconv.FormatUint(v, 10), true
	case float32:
		return float64(v), strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case float64:
		return v, strconv.FormatFloat(v, 'f', -1, 64), true
	}
	return 0, "", false
}
