package ui

import (
	"bytes"
	"strings"
	"testing"
)

func headlessProgress(w *bytes.Buffer) Progress {
	theme := &Theme{NoColor: true}
	hm := NewHeadlessManager()
	hm.ForceHeadless(true)
	return newProgressImpl(theme, hm, w)
}

func TestHeadlessStepBar_WritesLogLines(t *testing.T) {
	var buf bytes.Buffer
	bar := headlessProgress(&buf).Steps(3)

	bar.Step(1, "first")
	bar.Step(2, "second")
	bar.Done()

	out := buf.String()
	if !strings.Contains(out, "[1/3] first") {
		t.Errorf("missing first step line, got:\n%s", out)
	}
	if !strings.Contains(out, "[2/3] second") {
		t.Errorf("missing second step line, got:\n%s", out)
	}
}

func TestHeadlessStepBar_ClampsToTotal(t *testing.T) {
	var buf bytes.Buffer
	bar := headlessProgress(&buf).Steps(2)

	bar.Step(5, "overshoot")

	if !strings.Contains(buf.String(), "[2/2] overshoot") {
		t.Errorf("step not clamped, got:\n%s", buf.String())
	}
}

func TestHeadlessManager_ForceOverridesDetection(t *testing.T) {
	hm := NewHeadlessManager()

	hm.ForceHeadless(true)
	if !hm.IsHeadless() {
		t.Error("IsHeadless() = false after ForceHeadless(true)")
	}

	hm.ForceHeadless(false)
	if hm.IsHeadless() {
		t.Error("IsHeadless() = true after ForceHeadless(false)")
	}
}

func TestSteps_HeadlessWhenNoColor(t *testing.T) {
	var buf bytes.Buffer
	theme := &Theme{NoColor: true}
	hm := NewHeadlessManager()
	hm.ForceHeadless(false) // interactive terminal, but NO_COLOR wins
	p := newProgressImpl(theme, hm, &buf)

	if _, ok := p.Steps(1).(*headlessStepBar); !ok {
		t.Error("expected headless bar when NoColor is set")
	}
}
