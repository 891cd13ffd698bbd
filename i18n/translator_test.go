package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("out_of_range", nil); msg != "value out of range" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("out_of_range", nil); msg == "value out of range" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_UnknownCodeAndTag(t *testing.T) {
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("unknown code should echo, got %q", msg)
	}
	if msg := T("unknown_variant", map[string]string{"tag": "legacy"}); msg != "unknown variant tag: legacy" {
		t.Fatalf("unexpected message %q", msg)
	}
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator(t *testing.T) {
	SetTranslator(upper{})
	defer SetTranslator(nil)
	if msg := T("required", nil); msg != "X:required" {
		t.Fatalf("custom translator not used: %q", msg)
	}
}
