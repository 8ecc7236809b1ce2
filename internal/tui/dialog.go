package tui

import "github.com/example/ticketdesk/internal/panel"

type dialogKind int

const (
	dialogInfo dialogKind = iota
	dialogError
	dialogConfirm
)

// modalDialog is one message waiting to be shown over the form.
type modalDialog struct {
	kind    dialogKind
	title   string
	message string
}

// dialogQueue implements panel.Dialog for the event loop. Messages are
// queued and shown one at a time. A confirmation cannot block inside
// Update, so Confirm records the question and answers no; when the user
// accepts, the model reruns the action with approved set and the second
// Confirm answers yes.
type dialogQueue struct {
	messages     []modalDialog
	confirmation *modalDialog
	approved     bool
}

func (queue *dialogQueue) Error(title, message string) {
	queue.messages = append(queue.messages, modalDialog{kind: dialogError, title: title, message: message})
}

func (queue *dialogQueue) Info(title, message string) {
	queue.messages = append(queue.messages, modalDialog{kind: dialogInfo, title: title, message: message})
}

func (queue *dialogQueue) Confirm(title, message string) bool {
	if queue.approved {
		queue.approved = false
		return true
	}
	queue.confirmation = &modalDialog{kind: dialogConfirm, title: title, message: message}
	return false
}

// current returns the dialog to display, if any. A pending confirmation
// takes precedence over queued messages.
func (queue *dialogQueue) current() (modalDialog, bool) {
	if queue.confirmation != nil {
		return *queue.confirmation, true
	}
	if len(queue.messages) > 0 {
		return queue.messages[0], true
	}
	return modalDialog{}, false
}

// dismiss drops the message currently on screen.
func (queue *dialogQueue) dismiss() {
	if queue.confirmation != nil {
		queue.confirmation = nil
		return
	}
	if len(queue.messages) > 0 {
		queue.messages = queue.messages[1:]
	}
}

var _ panel.Dialog = (*dialogQueue)(nil)
