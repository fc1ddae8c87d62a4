package submission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"frizo/offering_engine/internal/common"
	"frizo/offering_engine/internal/form"
	"frizo/offering_engine/internal/offering"
)

var (
	ErrNotFound  = errors.New("investment submission not found")
	ErrDuplicate = errors.New("investment submission already exists")
)

// Submission audit record of a completed intake form. The share figures are copied
// from the calculation the investor saw and are never recomputed on read.
type Submission struct {
	ID string `json:"id"`

	// investor profile
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	IsAccredited bool   `json:"isAccredited"`
	ConsentGiven bool   `json:"consentGiven"`

	// registration
	InvestorType        common.InvestorType      `json:"investorType"`
	InvestorInformation form.InvestorInformation `json:"investorInformation"`

	// calculation output
	InvestmentAmount    decimal.Decimal `json:"investmentAmount"`
	SharePrice          decimal.Decimal `json:"sharePrice"`
	BaseShares          int64           `json:"baseShares"`
	BonusShares         int64           `json:"bonusShares"`
	TotalShares         int64           `json:"totalShares"`
	EffectiveSharePrice decimal.Decimal `json:"effectiveSharePrice"`
	BonusPercentage     int             `json:"bonusPercentage"`
	TierLabel           string          `json:"tierLabel"`

	SubmittedAt time.Time `json:"submittedAt"`
}

// NewSubmission build the record for a completed form state.
func NewSubmission(state form.State, now time.Time) (*Submission, error) {
	if !state.IsComplete() || state.Profile == nil || state.Information == nil {
		return nil, fmt.Errorf("%w: completed steps %v", form.ErrIncomplete, state.CompletedSteps())
	}

	profile := *state.Profile
	info := *state.Information
	calc := state.Calculation

	return &Submission{
		ID:                  common.GenerateSubmissionID(),
		FirstName:           profile.FirstName,
		LastName:            profile.LastName,
		Email:               profile.Email,
		Phone:               profile.Phone,
		IsAccredited:        profile.IsAccredited,
		ConsentGiven:        profile.ConsentGiven,
		InvestorType:        info.Type,
		InvestorInformation: info,
		InvestmentAmount:    calc.TotalInvestment,
		SharePrice:          offering.SharePrice,
		BaseShares:          calc.BaseShares,
		BonusShares:         calc.BonusShares,
		TotalShares:         calc.TotalShares,
		EffectiveSharePrice: calc.EffectivePrice,
		BonusPercentage:     calc.BonusPercentage,
		TierLabel:           state.Tier.Label,
		// postgres keeps microseconds
		SubmittedAt: now.UTC().Truncate(time.Microsecond),
	}, nil
}

// Store persistence for submissions.
type Store interface {
	Create(ctx context.Context, s *Submission) error
	Get(ctx context.Context, id string) (*Submission, error)
	List(ctx context.Context) ([]*Submission, error)
	Close() error
}
