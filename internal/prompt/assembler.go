// Package prompt builds the two-message conversation sent to the completion
// service: a fixed system directive and a user directive interpolated from
// the job description, the candidate profile and the task instruction.
package prompt

import (
	"fmt"
	"strings"

	_ "embed"
)

// Task selects the generation goal.
type Task string

const (
	TaskCoverLetter Task = "cover-letter"
	TaskBullets     Task = "bullets"
)

// ParseTask maps a user-supplied task name to a Task.
func ParseTask(s string) (Task, error) {
	switch Task(strings.ToLower(strings.TrimSpace(s))) {
	case TaskCoverLetter:
		return TaskCoverLetter, nil
	case TaskBullets:
		return TaskBullets, nil
	}
	return "", fmt.Errorf("unknown task %q (expected %q or %q)", s, TaskCoverLetter, TaskBullets)
}

// Instruction returns the task-specific instruction line appended to the
// user directive.
func (t Task) Instruction() string {
	if t == TaskBullets {
		return "Write 6–8 quantified resume bullet points mapped to the JD, grouped by theme."
	}
	return "Write a tailored cover letter (<= 300 words)."
}

// systemDirective is constant across all requests.
const systemDirective = "You are a helpful assistant that writes tailored cover letters and bullet points " +
	"that map a resume to a given job description. Be concise and specific."

//go:embed user_prompt.md
var userTemplate string

// Bundle is an immutable pair of directives for one generation request.
type Bundle struct {
	System string
	User   string
}

// Assemble interpolates the four sections verbatim, in job description,
// profile, notes, task order. No truncation or sanitization is applied;
// arbitrarily large documents pass through as-is. Input validation is the
// caller's responsibility.
func Assemble(jobDescription, profileText, extraNotes string, task Task) Bundle {
	template := userTemplate
	if strings.TrimSpace(template) == "" {
		template = "JOB DESCRIPTION:\n{{JOB_DESCRIPTION}}\n\nRESUME / PROFILE:\n{{RESUME_PROFILE}}\n\n" +
			"EXTRA NOTES:\n{{EXTRA_NOTES}}\n\nTASK: {{TASK}}"
	}

	user := strings.ReplaceAll(template, "{{JOB_DESCRIPTION}}", jobDescription)
	user = strings.ReplaceAll(user, "{{RESUME_PROFILE}}", profileText)
	user = strings.ReplaceAll(user, "{{EXTRA_NOTES}}", extraNotes)
	user = strings.ReplaceAll(user, "{{TASK}}", task.Instruction())

	return Bundle{
		System: systemDirective,
		User:   user,
	}
}
