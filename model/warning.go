package model

// Warning is a human-readable, non-fatal message produced while converting.
// Warnings are data, not log lines: they travel with the result so the
// caller decides how to surface them.
type Warning string
