package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"frizo/offering_engine/internal/common"
	"frizo/offering_engine/internal/form"
	"frizo/offering_engine/internal/offering"
	"frizo/offering_engine/internal/submission"
	"frizo/offering_engine/pkg/utils"
)

type ErrorResponse struct {
	Message string                `json:"message"`
	Errors  form.ValidationErrors `json:"errors,omitempty"`
}

type TierPreview struct {
	offering.InvestmentTier
	TotalShares    int64           `json:"totalShares"`
	EffectivePrice decimal.Decimal `json:"effectivePrice"`
}

type TiersResponse struct {
	Accredited        bool            `json:"accredited"`
	SharePrice        decimal.Decimal `json:"sharePrice"`
	MinimumInvestment decimal.Decimal `json:"minimumInvestment"`
	Tiers             []TierPreview   `json:"tiers"`
}

type CalculateResponse struct {
	Accredited   bool                           `json:"accredited"`
	MeetsMinimum bool                           `json:"meetsMinimum"`
	Calculation  offering.InvestmentCalculation `json:"calculation"`
	Tier         offering.InvestmentTier        `json:"tier"`
	Display      map[string]interface{}         `json:"display"`
}

type CreateInvestmentRequest struct {
	InvestorProfile  form.InvestorProfile `json:"investorProfile"`
	InvestmentAmount struct {
		Amount decimal.Decimal `json:"amount"`
	} `json:"investmentAmount"`
	InvestorInformation form.InvestorInformation `json:"investorInformation"`
}

type CreateInvestmentResponse struct {
	Message     string    `json:"message"`
	ID          string    `json:"id"`
	SubmittedAt time.Time `json:"submittedAt"`
}

const (
	msgNotFound         = "Investment submission not found"
	msgValidationFailed = "Validation failed"
	msgInternal         = "Internal server error"
)

// ListTiers handles GET /api/tiers?accredited=bool
func (s *Server) ListTiers(c *gin.Context) {
	accredited := utils.ParseBoolDefault(c.Query("accredited"), false)

	previews := utils.Map(offering.Tiers(accredited), func(t offering.InvestmentTier) TierPreview {
		// thresholds are never negative, the error is unreachable
		calc, _ := offering.Calculate(t.Threshold, accredited)
		return TierPreview{
			InvestmentTier: t,
			TotalShares:    calc.TotalShares,
			EffectivePrice: calc.EffectivePrice,
		}
	})

	c.JSON(http.StatusOK, TiersResponse{
		Accredited:        accredited,
		SharePrice:        offering.SharePrice,
		MinimumInvestment: offering.MinimumInvestment,
		Tiers:             previews,
	})
}

// Calculate handles GET /api/calculate?amount=dec&accredited=bool
func (s *Server) Calculate(c *gin.Context) {
	accredited := utils.ParseBoolDefault(c.Query("accredited"), false)

	amount, err := decimal.NewFromString(c.Query("amount"))
	if err != nil {
		s.metrics.ObserveError("invalid_amount")
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "amount must be a decimal number"})
		return
	}

	calc, err := offering.Calculate(amount, accredited)
	if err != nil {
		s.metrics.ObserveError("invalid_amount")
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}
	tier, err := offering.ResolveTier(amount, accredited)
	if err != nil {
		s.metrics.ObserveError("invalid_amount")
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	s.metrics.ObserveCalculation(accredited, calc.BonusPercentage, tier.Label)
	c.JSON(http.StatusOK, CalculateResponse{
		Accredited:   accredited,
		MeetsMinimum: amount.GreaterThanOrEqual(offering.MinimumInvestment),
		Calculation:  calc,
		Tier:         tier,
		Display:      calc.GetDisplayInfo(),
	})
}

// CreateInvestment handles POST /api/investments. The three form steps are replayed
// through the reducer so the stored figures never come from the client.
func (s *Server) CreateInvestment(c *gin.Context) {
	var req CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.metrics.ObserveError("bad_request")
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body: " + err.Error()})
		return
	}

	state, problems, err := replayForm(req)
	if err != nil {
		s.internalError(c, "replay investment form", err)
		return
	}
	if len(problems) > 0 {
		s.metrics.ObserveError("validation")
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: msgValidationFailed, Errors: problems})
		return
	}

	sub, err := submission.NewSubmission(state, s.now())
	if err != nil {
		s.internalError(c, "build submission", err)
		return
	}
	if err := s.store.Create(c.Request.Context(), sub); err != nil {
		s.internalError(c, "store submission", err)
		return
	}

	s.metrics.ObserveCalculation(sub.IsAccredited, sub.BonusPercentage, sub.TierLabel)
	s.metrics.ObserveSubmission(sub.InvestorType.String())
	s.log.Info("investment submission created",
		"id", sub.ID,
		"investor_type", sub.InvestorType,
		"amount", sub.InvestmentAmount.String(),
		"total_shares", sub.TotalShares,
	)

	c.JSON(http.StatusCreated, CreateInvestmentResponse{
		Message:     "Investment submission created successfully",
		ID:          sub.ID,
		SubmittedAt: sub.SubmittedAt,
	})
}

// ListInvestments handles GET /api/investments[?investorType=joint]
func (s *Server) ListInvestments(c *gin.Context) {
	subs, err := s.store.List(c.Request.Context())
	if err != nil {
		s.internalError(c, "list submissions", err)
		return
	}

	if raw := c.Query("investorType"); raw != "" {
		investorType, err := common.ParseInvestorType(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
			return
		}
		subs = utils.Filter(subs, func(sub *submission.Submission) bool {
			return sub.InvestorType == investorType
		})
	}

	// Return empty array if no submissions
	if subs == nil {
		subs = []*submission.Submission{}
	}
	c.JSON(http.StatusOK, subs)
}

// GetInvestment handles GET /api/investments/:id
func (s *Server) GetInvestment(c *gin.Context) {
	id := c.Param("id")
	if !common.IsSubmissionID(id) {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: msgNotFound})
		return
	}

	sub, err := s.store.Get(c.Request.Context(), id)
	if errors.Is(err, submission.ErrNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: msgNotFound})
		return
	}
	if err != nil {
		s.internalError(c, "get submission", err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (s *Server) internalError(c *gin.Context, op string, err error) {
	s.log.Error(op, "error", err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Message: msgInternal})
}

// replayForm runs every step even after a failure so the client gets all field
// problems in one response. A non-nil error is anything other than bad input.
func replayForm(req CreateInvestmentRequest) (form.State, form.ValidationErrors, error) {
	var problems form.ValidationErrors
	state := form.NewState()

	next, err := form.ApplyInvestorProfile(state, req.InvestorProfile)
	if err != nil {
		fields, ok := fieldErrors("investorProfile.", err)
		if !ok {
			return state, nil, err
		}
		problems = append(problems, fields...)
	}
	state = next

	next, err = form.ApplyAmountSelected(state, req.InvestmentAmount.Amount)
	switch {
	case err == nil:
	case errors.Is(err, form.ErrBelowMinimum):
		problems = append(problems, form.FieldError{
			Field:   "investmentAmount.amount",
			Message: "Minimum investment is " + offering.FormatCurrency(offering.MinimumInvestment),
		})
	case errors.Is(err, offering.ErrInvalidArgument):
		msg := "Investment amount is too large"
		if req.InvestmentAmount.Amount.IsNegative() {
			msg = "Investment amount must not be negative"
		}
		problems = append(problems, form.FieldError{Field: "investmentAmount.amount", Message: msg})
	default:
		return state, nil, err
	}
	state = next

	next, err = form.ApplyInvestorInformation(state, req.InvestorInformation)
	if err != nil {
		fields, ok := fieldErrors("investorInformation.", err)
		if !ok {
			return state, nil, err
		}
		problems = append(problems, fields...)
	}
	state = next

	return state, problems, nil
}

func fieldErrors(prefix string, err error) (form.ValidationErrors, bool) {
	var ve form.ValidationErrors
	if !errors.As(err, &ve) {
		return nil, false
	}
	return utils.Map(ve, func(fe form.FieldError) form.FieldError {
		fe.Field = prefix + fe.Field
		return fe
	}), true
}
