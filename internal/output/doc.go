// Package output delivers keyboard output to the host system.
//
// Every sink implements input.Sink. Keystroke requests (backspace, newline,
// paste and single characters) go through a Keystroker, which is the
// platform's key injection. This package ships a logging Keystroker only;
// platform injection is provided by the embedding program.
//
// Sinks:
//
//   - Log: logs every request, for headless runs
//   - Clipboard: copies flushed text to the system clipboard
//   - Recorder: keeps every request in memory
//
// Policy wraps any sink and types single ASCII letters and digits as
// keystrokes instead of going through the clipboard.
package output
