// Package ui contains the Bubble Tea program for the JSON inspector popup.
// The screen is split into an editor pane on the left (or top, on narrow
// terminals) and a display pane showing the rendered tree, the parser
// diagnostic or a placeholder.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Each message is
//     routed through a typed handler registry; anything without a handler is
//     forwarded to the textarea so its blink and paste messages keep working.
//   - Key presses are matched against global bindings first, then against the
//     focused pane. Editor keys go to the textarea and any change in its text
//     re-runs the input transition before the next message is processed.
//   - Clipboard reads run through the internal/ui/command bus with a timeout
//     and come back as a pasteResultMsg.
//
// State ownership:
//   - The document, validity status and display mode live in an
//     inspector.Controller.
//   - Cursor, viewport and key search for the tree pane live in
//     internal/ui/state.
package ui
