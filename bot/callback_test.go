package bot

import "testing"

func TestParseCallbackAccept(t *testing.T) {
	event, err := ParseCallback("accept_42")
	if err != nil {
		t.Fatalf("ParseCallback() error = %v", err)
	}
	accept, ok := event.(AcceptCallback)
	if !ok {
		t.Fatalf("ParseCallback() = %T, want AcceptCallback", event)
	}
	if accept.UserID != 42 {
		t.Errorf("UserID = %d, want 42", accept.UserID)
	}
}

func TestParseCallbackMalformed(t *testing.T) {
	for _, data := range []string{"", "accept", "accept_", "accept_abc", "accept_0", "accept_-1", "decline_42", "42"} {
		if _, err := ParseCallback(data); err == nil {
			t.Errorf("ParseCallback(%q) expected error", data)
		}
	}
}

func TestAcceptCallbackDataRoundTrip(t *testing.T) {
	data := AcceptCallbackData(7355608)
	if data != "accept_7355608" {
		t.Fatalf("AcceptCallbackData() = %q, want %q", data, "accept_7355608")
	}
	event, err := ParseCallback(data)
	if err != nil {
		t.Fatalf("ParseCallback() error = %v", err)
	}
	if event.(AcceptCallback).UserID != 7355608 {
		t.Errorf("UserID = %d, want 7355608", event.(AcceptCallback).UserID)
	}
}
