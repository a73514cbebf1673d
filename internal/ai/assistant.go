// Package ai defines the completion contract shared by providers. Completers
// never surface transport errors to the caller; every failure is folded into
// a tagged Result carrying a fixed operator-facing fallback message.
package ai

import (
	"context"

	"github.com/Sandjune/resumebot/internal/prompt"
)

// Completer sends an assembled prompt bundle to a chat-completion service.
type Completer interface {
	Complete(ctx context.Context, bundle prompt.Bundle) Result
}

// FailureKind classifies why a completion produced no generated text.
type FailureKind string

const (
	FailureNone              FailureKind = ""
	FailureMissingCredential FailureKind = "missing-credential"
	FailureClientInit        FailureKind = "client-init"
	FailureTransport         FailureKind = "transport"
)

// Fixed fallback prose shown to the user instead of generated text. The
// transport message deliberately lists the likely causes in prose rather than
// distinguishing them programmatically.
const (
	MissingCredentialMessage = "Missing or invalid OpenAI setup. Please configure OPENAI_API_KEY in the environment, " +
		"a .env file, or the llm section of the configuration file."
	ClientInitFailureMessage = "The LLM client could not be initialized. Check your SDK version and configuration."
	TransportFailureMessage  = "There was an error calling the LLM. Check your API key, billing, SDK version, and model name."
)

// Result is the single-shot outcome of a completion request: either the
// generated text or a classified failure with a human-readable fallback.
type Result struct {
	// Text is the generated output; empty unless Kind is FailureNone.
	Text string
	// Kind tags the failure class so callers can branch structurally.
	Kind FailureKind
	// Message is the fallback sentence displayed in place of generated text.
	Message string
}

func Success(text string) Result {
	return Result{Text: text}
}

func Failure(kind FailureKind, message string) Result {
	return Result{Kind: kind, Message: message}
}

// OK reports whether the completion produced generated text.
func (r Result) OK() bool { return r.Kind == FailureNone }

// Display returns the user-visible string for the result area.
func (r Result) Display() string {
	if r.OK() {
		return r.Text
	}
	return r.Message
}

// Unconfigured is the Completer wired when no credential could be resolved.
// It abstains before any network call and always returns the same fallback.
type Unconfigured struct {
	message string
}

func NewUnconfigured(message string) *Unconfigured {
	if message == "" {
		message = MissingCredentialMessage
	}
	return &Unconfigured{message: message}
}

func (u *Unconfigured) Complete(context.Context, prompt.Bundle) Result {
	return Failure(FailureMissingCredential, u.message)
}
