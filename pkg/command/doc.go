/*
Package command defines the interactive drawing commands.

A Command is a small state machine. The executor feeds it clicked points
(PushPoint) and typed tokens (ProcessInput); after each step the command
either asks for more input with a prompt or reports that it is done. The set
of commands is closed: every variant lives in this package and carries a
Kind tag, so hosts can switch on the concrete type instead of matching names.

Commands never keep the Context they are handed. Each step receives the
model, the current selection and the session flags by value.
*/
package command
