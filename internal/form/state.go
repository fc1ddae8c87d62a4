package form

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"frizo/offering_engine/internal/offering"
)

var (
	ErrBelowMinimum = errors.New("minimum investment not met")
	ErrStepLocked   = errors.New("step is locked")
	ErrUnknownStep  = errors.New("unknown step")
	ErrIncomplete   = errors.New("form is incomplete")
)

// Step position in the three-step intake form
type Step int

const (
	StepProfile     Step = 1
	StepAmount      Step = 2
	StepInformation Step = 3
)

func (s Step) String() string {
	switch s {
	case StepProfile:
		return "investor-profile"
	case StepAmount:
		return "investment-amount"
	case StepInformation:
		return "investor-information"
	default:
		return "unknown"
	}
}

func (s Step) valid() bool {
	return s >= StepProfile && s <= StepInformation
}

// StepStatus how a step is rendered in the step indicator
type StepStatus int

const (
	StepIncomplete StepStatus = iota
	StepActive
	StepComplete
)

func (s StepStatus) String() string {
	switch s {
	case StepIncomplete:
		return "incomplete"
	case StepActive:
		return "active"
	case StepComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// ========================================================

// State snapshot of one investor's progress. Reducers below take a State and return a
// new one; a State value is never modified after it is returned.
type State struct {
	CurrentStep Step                           `json:"currentStep"`
	Profile     *InvestorProfile               `json:"investorProfile,omitempty"`
	Amount      decimal.Decimal                `json:"amount"`
	Tier        offering.InvestmentTier        `json:"tier"`
	Information *InvestorInformation           `json:"investorInformation,omitempty"`
	Calculation offering.InvestmentCalculation `json:"calculation"`

	completed [StepInformation + 1]bool
}

// NewState fresh form: step 1 open, default amount preselected for a non-accredited investor.
func NewState() State {
	s := State{
		CurrentStep: StepProfile,
		Amount:      offering.DefaultAmount,
	}
	// DefaultAmount is non-negative, errors are impossible here
	s.Tier, _ = offering.ResolveTier(s.Amount, false)
	s.Calculation, _ = offering.Calculate(s.Amount, false)
	return s
}

// Reset discard all progress.
func Reset() State {
	return NewState()
}

// IsAccredited accreditation from the profile, false until step 1 is done.
func (s State) IsAccredited() bool {
	return s.Profile != nil && s.Profile.IsAccredited
}

// IsStepComplete reports whether step has been submitted successfully.
func (s State) IsStepComplete(step Step) bool {
	return step.valid() && s.completed[step]
}

// IsComplete all three steps done, the state can be turned into a submission.
func (s State) IsComplete() bool {
	return s.IsStepComplete(StepProfile) && s.IsStepComplete(StepAmount) && s.IsStepComplete(StepInformation)
}

// CanGoToStep step 1 is always open, later steps need every earlier step complete.
func (s State) CanGoToStep(step Step) bool {
	switch step {
	case StepProfile:
		return true
	case StepAmount:
		return s.IsStepComplete(StepProfile)
	case StepInformation:
		return s.IsStepComplete(StepProfile) && s.IsStepComplete(StepAmount)
	default:
		return false
	}
}

// Status of step for display.
func (s State) Status(step Step) StepStatus {
	if s.IsStepComplete(step) {
		return StepComplete
	}
	if s.CurrentStep == step {
		return StepActive
	}
	return StepIncomplete
}

// CompletedSteps completed steps in ascending order.
func (s State) CompletedSteps() []Step {
	steps := make([]Step, 0, StepInformation)
	for step := StepProfile; step <= StepInformation; step++ {
		if s.completed[step] {
			steps = append(steps, step)
		}
	}
	return steps
}

// ========================================================

// GoToStep move to step if it is unlocked.
func GoToStep(s State, step Step) (State, error) {
	if !step.valid() {
		return s, fmt.Errorf("%w: %d", ErrUnknownStep, int(step))
	}
	if !s.CanGoToStep(step) {
		return s, fmt.Errorf("%w: %s", ErrStepLocked, step)
	}
	s.CurrentStep = step
	return s, nil
}

// MarkStepComplete flag step as done and open the next one.
func MarkStepComplete(s State, step Step) State {
	if !step.valid() {
		return s
	}
	s.completed[step] = true
	if s.CurrentStep == step && step < StepInformation {
		s.CurrentStep = step + 1
	}
	return s
}

// ApplyInvestorProfile record step 1. The calculation is re-derived because the
// accreditation flag selects the tier table.
func ApplyInvestorProfile(s State, profile InvestorProfile) (State, error) {
	if err := ValidateProfile(profile); err != nil {
		return s, err
	}

	s.Profile = &profile
	next, err := recalculate(s, s.Amount)
	if err != nil {
		return s, err
	}
	return MarkStepComplete(next, StepProfile), nil
}

// ApplyAmountSelected record step 2 with a fresh calculation for amount.
func ApplyAmountSelected(s State, amount decimal.Decimal) (State, error) {
	if amount.IsNegative() {
		return s, fmt.Errorf("%w: amount %s is negative", offering.ErrInvalidArgument, amount)
	}
	if amount.LessThan(offering.MinimumInvestment) {
		return s, fmt.Errorf("%w: %s is below %s", ErrBelowMinimum,
			offering.FormatCurrency(amount), offering.FormatCurrency(offering.MinimumInvestment))
	}

	next, err := recalculate(s, amount)
	if err != nil {
		return s, err
	}
	return MarkStepComplete(next, StepAmount), nil
}

// ApplyInvestorInformation record step 3.
func ApplyInvestorInformation(s State, info InvestorInformation) (State, error) {
	if err := ValidateInformation(info); err != nil {
		return s, err
	}

	info = info.clone()
	s.Information = &info
	return MarkStepComplete(s, StepInformation), nil
}

// --------------------------------------------------------------------------------------------
// private func
// --------------------------------------------------------------------------------------------

func recalculate(s State, amount decimal.Decimal) (State, error) {
	accredited := s.IsAccredited()

	calc, err := offering.Calculate(amount, accredited)
	if err != nil {
		return s, err
	}
	tier, err := offering.ResolveTier(amount, accredited)
	if err != nil {
		return s, err
	}

	s.Amount = amount
	s.Tier = tier
	s.Calculation = calc
	return s, nil
}
