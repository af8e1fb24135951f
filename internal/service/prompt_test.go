package service

import (
	"errors"
	"testing"
)

func TestPromptTemplateVariables(t *testing.T) {
	p := NewPromptTemplate("Hello {name}, you are {age} years old. Bye {name}.")
	vars := p.Variables()
	if len(vars) != 2 || vars[0] != "name" || vars[1] != "age" {
		t.Errorf("unexpected variables: %v", vars)
	}
}

func TestPromptTemplateFormat(t *testing.T) {
	p := NewPromptTemplate("Hi {name}")
	got, err := p.Format(map[string]string{"name": "Sam"})
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}
	if got != "Hi Sam" {
		t.Errorf("expected %q, got %q", "Hi Sam", got)
	}
}

func TestPromptTemplateFormatRepeatedPlaceholder(t *testing.T) {
	p := NewPromptTemplate("{x} and {x}")
	got, err := p.Format(map[string]string{"x": "one"})
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}
	if got != "one and one" {
		t.Errorf("expected repeated substitution, got %q", got)
	}
}

func TestPromptTemplateMissingVariable(t *testing.T) {
	p := NewPromptTemplate("Hi {name}")
	_, err := p.Format(map[string]string{})
	if err == nil {
		t.Fatal("expected mismatch error")
	}
	var mismatch *MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected *MismatchError, got %T", err)
	}
	if len(mismatch.Missing) != 1 || mismatch.Missing[0] != "name" {
		t.Errorf("unexpected missing list: %v", mismatch.Missing)
	}
}

func TestPromptTemplateExtraVariable(t *testing.T) {
	p := NewPromptTemplate("Hi {name}")
	_, err := p.Format(map[string]string{"name": "Sam", "age": "30"})
	if err == nil {
		t.Fatal("expected mismatch error")
	}
	var mismatch *MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected *MismatchError, got %T", err)
	}
	if len(mismatch.Extra) != 1 || mismatch.Extra[0] != "age" {
		t.Errorf("unexpected extra list: %v", mismatch.Extra)
	}
}

func TestPromptTemplateNoPlaceholders(t *testing.T) {
	p := NewPromptTemplate("static text")
	got, err := p.Format(map[string]string{})
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}
	if got != "static text" {
		t.Errorf("expected passthrough, got %q", got)
	}
}
