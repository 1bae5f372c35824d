/*
Package editor contains the editing session behind the vectorscope terminal
editor.

The Model owns one FrameSequence, a cursor on the current frame and the undo
history. User interfaces do not modify the sequence directly; they call the
methods returning an Action, e.g. model.Toggle().Do(), and read the state back
through the accessor methods. An Action advertises whether it is enabled, so
a UI can show which commands are currently available.

Errors and notices are not returned to the UI but collected as Alerts, which
the UI shows and dismisses. Saving, loading and exporting go through the
vectorscope package, with the settings taken from config.Preferences.
*/
package editor
