package domain

// Op is the single operation a turn resolves to
type Op uint8

// Operations
const (
	OpUnrecognized Op = iota
	OpLaunch
	OpSessionEnded
	OpStartAdd
	OpCompleteAdd
	OpRetrieve
	OpStartModify
	OpNext
	OpPrevious
	OpStartDelete
	OpConfirmDelete
	OpCancelDelete
	OpStartEdit
	OpCompleteEdit
	OpHelp
	OpCancelOrStop
	OpFallback
)

// Resolve maps a request plus session guards to exactly one operation.
// Yes and no are only confirmation answers while a delete is pending;
// without the flag they fall through to OpUnrecognized like any other
// unexpected utterance.
func Resolve(req Request, sess Session) Op {
	switch req.Type {
	case TypeLaunch:
		return OpLaunch
	case TypeSessionEnded:
		return OpSessionEnded
	case TypeIntent:
	default:
		return OpUnrecognized
	}

	switch req.Intent {
	case IntentAddEventRequest:
		return OpStartAdd
	case IntentAddEventType:
		return OpCompleteAdd
	case IntentRetrieveEvents:
		return OpRetrieve
	case IntentModifyEvents:
		return OpStartModify
	case IntentNextEvent:
		return OpNext
	case IntentPreviousEvent:
		return OpPrevious
	case IntentDeleteEvent:
		return OpStartDelete
	case IntentEditEvent:
		return OpStartEdit
	case IntentEditEventDescription:
		return OpCompleteEdit
	case IntentYes:
		if sess.PendingDelete {
			return OpConfirmDelete
		}
		return OpUnrecognized
	case IntentNo:
		if sess.PendingDelete {
			return OpCancelDelete
		}
		return OpUnrecognized
	case IntentHelp:
		return OpHelp
	case IntentCancel, IntentStop:
		return OpCancelOrStop
	case IntentFallback:
		return OpFallback
	default:
		return OpUnrecognized
	}
}
