package theme

import "testing"

func TestToggle(t *testing.T) {
	defer Apply(Dark)
	Apply(Dark)

	cmd := Toggle()
	if Current() != Light {
		t.Fatalf("Current() = %q, want light", Current())
	}
	msg, ok := cmd().(ChangedMsg)
	if !ok || msg.Mode != Light {
		t.Errorf("expected ChangedMsg{Light}, got %#v", cmd())
	}
	if Primary != palettes[Light].Primary {
		t.Error("active colors should follow the mode")
	}

	Toggle()
	if Current() != Dark {
		t.Errorf("second toggle should return to dark, got %q", Current())
	}
}

func TestApplyUnknownFallsBackToDark(t *testing.T) {
	defer Apply(Dark)
	Apply(Light)
	Apply("sepia")
	if Current() != Dark {
		t.Errorf("Current() = %q, want dark", Current())
	}
}
