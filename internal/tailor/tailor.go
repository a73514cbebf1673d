// Package tailor orchestrates one generation request: validate the session
// inputs, assemble the prompt bundle, and issue a single completion call.
package tailor

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/Sandjune/resumebot/internal/ai"
	"github.com/Sandjune/resumebot/internal/logger"
	"github.com/Sandjune/resumebot/internal/prompt"
	"github.com/Sandjune/resumebot/internal/session"

	"go.uber.org/zap"
)

// Validation errors block generation before any network call is made.
var (
	ErrMissingJobDescription = errors.New("please provide a job description (upload or paste)")
	ErrMissingProfile        = errors.New("please provide your resume (upload) or profile text")
)

const defaultMaxLogLength = 200

// Pipeline wires the completion client behind the validation step. Document
// extraction happens upstream in the presentation layer, which owns the
// uploaded bytes.
type Pipeline struct {
	completer ai.Completer
	logger    *zap.Logger
	maxLogLen int
}

func New(completer ai.Completer, log *zap.Logger, maxLogLength int) *Pipeline {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Pipeline{
		completer: completer,
		logger:    log,
		maxLogLen: maxLogLength,
	}
}

// Generate validates the session and requests a completion for the given
// task. A validation error means no request was issued; otherwise the tagged
// result carries either the generated text or a fallback message.
func (p *Pipeline) Generate(ctx context.Context, s *session.Session, task prompt.Task) (ai.Result, error) {
	if err := validate(s); err != nil {
		return ai.Result{}, err
	}

	bundle := prompt.Assemble(s.JobDescription, s.ResumeText, s.Notes, task)

	p.logger.Debug("assembled prompt bundle",
		zap.String("task", string(task)),
		zap.Int("user_directive_length", utf8.RuneCountInString(bundle.User)),
		zap.String("user_directive_preview", logger.TruncateForLog(bundle.User, p.maxLogLen)),
	)

	result := p.completer.Complete(ctx, bundle)

	if result.OK() {
		p.logger.Info("completion succeeded",
			zap.String("task", string(task)),
			zap.Int("result_length", utf8.RuneCountInString(result.Text)),
		)
	} else {
		p.logger.Warn("completion fell back",
			zap.String("task", string(task)),
			zap.String("failure_kind", string(result.Kind)),
		)
	}

	return result, nil
}

func validate(s *session.Session) error {
	if s == nil || strings.TrimSpace(s.JobDescription) == "" {
		return ErrMissingJobDescription
	}

	if strings.TrimSpace(s.ResumeText) == "" && strings.TrimSpace(s.Notes) == "" {
		return ErrMissingProfile
	}

	return nil
}
