// Package session holds the per-invocation state entered through the
// presentation layer. The struct replaces ad hoc global state: it is created
// by the command, filled from flags and files, and passed by reference into
// the pipeline. Nothing is persisted across invocations.
package session

// Session carries the user-entered inputs for one generation request.
// All fields default to empty strings.
type Session struct {
	// JobDescription is the JD text, pasted directly or extracted from an
	// uploaded file.
	JobDescription string
	// ResumeText is the extracted resume content. May be empty when the
	// user supplies Notes instead.
	ResumeText string
	// Notes is optional free-text profile information (links, extra
	// context) supplied alongside or instead of a resume.
	Notes string
}

func New() *Session {
	return &Session{}
}
