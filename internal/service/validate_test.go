package service

import "testing"

func TestEvaluateRulesAllValid(t *testing.T) {
	verr := evaluateRules([]FieldRule{
		{Field: "email", Value: "alice@example.com", Required: true, Email: true},
		{Field: "password", Value: "secret-password", Required: true, MinLen: 6},
	})
	if verr != nil {
		t.Fatalf("expected no error, got %v", verr)
	}
}

func TestEvaluateRulesRequired(t *testing.T) {
	verr := evaluateRules([]FieldRule{
		{Field: "title", Value: "   ", Required: true},
	})
	if verr == nil {
		t.Fatal("expected validation error for blank required field")
	}
	if verr.Fields[0].Field != "title" {
		t.Fatalf("unexpected field: %s", verr.Fields[0].Field)
	}
}

func TestEvaluateRulesMinLenCountsRunes(t *testing.T) {
	if verr := evaluateRules([]FieldRule{{Field: "title", Value: "四个字呀", MinLen: 4}}); verr != nil {
		t.Fatalf("4 runes should satisfy MinLen 4, got %v", verr)
	}
	if verr := evaluateRules([]FieldRule{{Field: "title", Value: "短", MinLen: 4}}); verr == nil {
		t.Fatal("expected MinLen violation")
	}
}

func TestEvaluateRulesEmail(t *testing.T) {
	if verr := evaluateRules([]FieldRule{{Field: "email", Value: "not-an-email", Email: true}}); verr == nil {
		t.Fatal("expected invalid email violation")
	}
}

func TestEvaluateRulesOptionalBlankSkipsChecks(t *testing.T) {
	verr := evaluateRules([]FieldRule{
		{Field: "email", Value: "", Email: true, MinLen: 6},
	})
	if verr != nil {
		t.Fatalf("blank optional field should pass, got %v", verr)
	}
}

func TestEvaluateRulesAggregatesFields(t *testing.T) {
	verr := evaluateRules([]FieldRule{
		{Field: "email", Value: "nope", Required: true, Email: true},
		{Field: "password", Value: "ab", Required: true, MinLen: 6},
	})
	if verr == nil || len(verr.Fields) != 2 {
		t.Fatalf("expected both violations reported, got %v", verr)
	}
}
