// Package report renders the messages a user sees while an add-on is being
// generated. Every line carries a severity marker (INFO, DONE, WARNING,
// ERROR) styled with lipgloss. Diagnostic logging is separate and goes
// through an hclog logger that stays silent unless --verbose is set.
package report
