package project

import (
	"errors"
	"testing"
	"time"
)

func newProject() *Project {
	return &Project{ProjectID: "p1", Status: StatusInProgress, Steps: NewSteps()}
}

func TestNewSteps_FullyConfiguredInOrder(t *testing.T) {
	steps := NewSteps()
	if !IsFullyConfigured(steps) {
		t.Fatal("new steps not fully configured")
	}
	for i, s := range steps {
		if s.StepType != StepOrder[i] || s.Position != i+1 || s.Status != StepPending {
			t.Fatalf("step %d = %+v", i, s)
		}
	}
}

func TestIsFullyConfigured(t *testing.T) {
	steps := NewSteps()
	if IsFullyConfigured(steps[:4]) {
		t.Fatal("four steps reported fully configured")
	}

	dup := NewSteps()
	dup[4].StepType = StepDeposit
	if IsFullyConfigured(dup) {
		t.Fatal("duplicate step type reported fully configured")
	}

	// order of the slice does not matter, only the set
	shuffled := NewSteps()
	shuffled[0], shuffled[4] = shuffled[4], shuffled[0]
	if !IsFullyConfigured(shuffled) {
		t.Fatal("shuffled steps not fully configured")
	}
}

func TestStepType_Position(t *testing.T) {
	if StepDeposit.Position() != 1 || StepCompletion.Position() != 5 {
		t.Fatal("unexpected positions")
	}
	if StepType("ROOF_CHECK").Valid() {
		t.Fatal("unknown step valid")
	}
}

func TestCompleteStep_InOrderCompletesProject(t *testing.T) {
	p := newProject()
	now := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	for _, st := range StepOrder {
		s, err := p.CompleteStep(st, now)
		if err != nil {
			t.Fatalf("CompleteStep(%s): %v", st, err)
		}
		if s.Status != StepCompleted || s.CompletedAt == nil {
			t.Fatalf("step not completed: %+v", s)
		}
	}
	if !p.IsCompleted() {
		t.Fatalf("project status = %s, want COMPLETED", p.Status)
	}
	if p.EndDate == nil || !p.EndDate.Equal(now) {
		t.Fatalf("end date = %v", p.EndDate)
	}
}

func TestCompleteStep_OutOfOrder(t *testing.T) {
	p := newProject()
	if _, err := p.CompleteStep(StepInstallation, time.Now()); !errors.Is(err, ErrStepOutOfOrder) {
		t.Fatalf("err = %v, want ErrStepOutOfOrder", err)
	}
	if p.Steps[3].Status != StepPending {
		t.Fatal("step mutated on rejected transition")
	}
}

func TestCompleteStep_Errors(t *testing.T) {
	p := newProject()
	if _, err := p.CompleteStep("ROOF_CHECK", time.Now()); !errors.Is(err, ErrUnknownStep) {
		t.Fatalf("unknown step err = %v", err)
	}
	if _, err := p.CompleteStep(StepDeposit, time.Now()); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if _, err := p.CompleteStep(StepDeposit, time.Now()); !errors.Is(err, ErrStepAlreadyCompleted) {
		t.Fatalf("repeat err = %v, want ErrStepAlreadyCompleted", err)
	}

	partial := &Project{Status: StatusInProgress, Steps: NewSteps()[:3]}
	if _, err := partial.CompleteStep(StepDeposit, time.Now()); !errors.Is(err, ErrNotFullyConfigured) {
		t.Fatalf("partial err = %v, want ErrNotFullyConfigured", err)
	}

	done := &Project{Status: StatusCompleted, Steps: NewSteps()}
	if _, err := done.CompleteStep(StepDeposit, time.Now()); !errors.Is(err, ErrAlreadyCompleted) {
		t.Fatalf("completed err = %v, want ErrAlreadyCompleted", err)
	}
}
