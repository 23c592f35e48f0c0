package domain

import "testing"

func TestResolve_RequestTypes(t *testing.T) {
	if got := Resolve(Request{Type: TypeLaunch}, Session{}); got != OpLaunch {
		t.Fatalf("launch = %v", got)
	}
	if got := Resolve(Request{Type: TypeSessionEnded}, Session{}); got != OpSessionEnded {
		t.Fatalf("session ended = %v", got)
	}
	if got := Resolve(Request{Type: "Connections.Response"}, Session{}); got != OpUnrecognized {
		t.Fatalf("unknown type = %v", got)
	}
}

func TestResolve_Intents(t *testing.T) {
	cases := []struct {
		intent string
		want   Op
	}{
		{IntentAddEventRequest, OpStartAdd},
		{IntentAddEventType, OpCompleteAdd},
		{IntentRetrieveEvents, OpRetrieve},
		{IntentModifyEvents, OpStartModify},
		{IntentNextEvent, OpNext},
		{IntentPreviousEvent, OpPrevious},
		{IntentDeleteEvent, OpStartDelete},
		{IntentEditEvent, OpStartEdit},
		{IntentEditEventDescription, OpCompleteEdit},
		{IntentHelp, OpHelp},
		{IntentCancel, OpCancelOrStop},
		{IntentStop, OpCancelOrStop},
		{IntentFallback, OpFallback},
		{"SomeNewIntent", OpUnrecognized},
	}
	for _, tc := range cases {
		got := Resolve(Request{Type: TypeIntent, Intent: tc.intent}, Session{})
		if got != tc.want {
			t.Fatalf("Resolve(%q) = %v, want %v", tc.intent, got, tc.want)
		}
	}
}

func TestResolve_ConfirmationGating(t *testing.T) {
	pending := Session{PendingDelete: true}

	if got := Resolve(Request{Type: TypeIntent, Intent: IntentYes}, pending); got != OpConfirmDelete {
		t.Fatalf("yes with pending = %v", got)
	}
	if got := Resolve(Request{Type: TypeIntent, Intent: IntentNo}, pending); got != OpCancelDelete {
		t.Fatalf("no with pending = %v", got)
	}

	// without the flag the same intents are just noise
	if got := Resolve(Request{Type: TypeIntent, Intent: IntentYes}, Session{}); got != OpUnrecognized {
		t.Fatalf("bare yes = %v", got)
	}
	if got := Resolve(Request{Type: TypeIntent, Intent: IntentNo}, Session{}); got != OpUnrecognized {
		t.Fatalf("bare no = %v", got)
	}
}
