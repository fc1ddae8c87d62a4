package form

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"frizo/offering_engine/internal/common"
)

var phonePattern = regexp.MustCompile(`^\(?([0-9]{3})\)?[-. ]?([0-9]{3})[-. ]?([0-9]{4})$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their wire name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// FieldError one failed field, Field uses the JSON name (nested with dots)
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors every problem found in one form step
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields names of the failed fields, in report order.
func (v ValidationErrors) Fields() []string {
	out := make([]string, len(v))
	for i, fe := range v {
		out[i] = fe.Field
	}
	return out
}

// ValidateProfile check step 1 input.
func ValidateProfile(p InvestorProfile) error {
	if errs := structErrors(p, ""); len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateInformation check step 3 input against the rules of its investor type.
func ValidateInformation(info InvestorInformation) error {
	if !info.Type.Valid() {
		return ValidationErrors{{Field: "type", Message: "Investor type is required"}}
	}

	errs := structErrors(info.Address, "")
	for _, rule := range informationRules[info.Type] {
		if err := validate.Var(rule.value(info), rule.tag); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) && len(verrs) > 0 {
				errs = append(errs, FieldError{Field: rule.field, Message: message(rule.field, verrs[0])})
			}
		}
	}

	if info.Type == common.Joint {
		if info.SecondInvestor == nil {
			errs = append(errs, FieldError{Field: "secondInvestor", Message: "Second investor is required"})
		} else {
			errs = append(errs, structErrors(*info.SecondInvestor, "secondInvestor.")...)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// --------------------------------------------------------------------------------------------
// private func
// --------------------------------------------------------------------------------------------

type fieldRule struct {
	field string
	tag   string
	value func(InvestorInformation) string
}

var (
	dateOfBirthRule = fieldRule{"dateOfBirth", "required", func(i InvestorInformation) string { return i.DateOfBirth }}
	tinOrSSNRule    = fieldRule{"tinOrSSN", "required,min=9", func(i InvestorInformation) string { return i.TinOrSSN }}
	entityNameRule  = fieldRule{"entityName", "required", func(i InvestorInformation) string { return i.EntityName }}
	taxIDRule       = fieldRule{"taxId", "required,min=9", func(i InvestorInformation) string { return i.TaxID }}
	signatoryRule   = fieldRule{"authorizedSignatory", "required", func(i InvestorInformation) string { return i.AuthorizedSignatory }}
)

var informationRules = map[common.InvestorType][]fieldRule{
	common.Individual: {dateOfBirthRule, tinOrSSNRule},
	common.Joint: {
		{"jointHoldingType", "required", func(i InvestorInformation) string { return i.JointHoldingType }},
		dateOfBirthRule,
		tinOrSSNRule,
	},
	common.Corporation: {
		entityNameRule,
		{"entityType", "required", func(i InvestorInformation) string { return i.EntityType }},
		taxIDRule,
		signatoryRule,
	},
	common.Trust: {entityNameRule, taxIDRule, signatoryRule},
	common.IRA: {
		{"custodianName", "required", func(i InvestorInformation) string { return i.CustodianName }},
		{"accountNumber", "required", func(i InvestorInformation) string { return i.AccountNumber }},
		{"iraType", "required", func(i InvestorInformation) string { return i.IRAType }},
		dateOfBirthRule,
		tinOrSSNRule,
	},
}

var fieldLabels = map[string]string{
	"firstName":           "First name",
	"lastName":            "Last name",
	"email":               "Email",
	"phone":               "Phone number",
	"streetAddress":       "Street address",
	"city":                "City",
	"zipCode":             "Zip code",
	"state":               "State",
	"country":             "Country",
	"dateOfBirth":         "Date of birth",
	"tinOrSSN":            "TIN or SSN",
	"jointHoldingType":    "Joint holding type",
	"entityName":          "Entity name",
	"entityType":          "Entity type",
	"taxId":               "Tax ID",
	"authorizedSignatory": "Authorized signatory",
	"custodianName":       "Custodian name",
	"accountNumber":       "Account number",
	"iraType":             "IRA type",
}

func structErrors(s interface{}, prefix string) ValidationErrors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ValidationErrors{{Field: strings.TrimSuffix(prefix, "."), Message: err.Error()}}
	}

	out := make(ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: prefix + fe.Field(), Message: message(fe.Field(), fe)})
	}
	return out
}

func message(field string, fe validator.FieldError) string {
	label, ok := fieldLabels[field]
	if !ok {
		label = field
	}

	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "max":
		return fmt.Sprintf("%s must be less than %s characters", label, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "email":
		return "Please enter a valid email address"
	case "phone":
		return "Please enter a valid phone number"
	case "eq":
		if field == "consentGiven" {
			return "You must give consent to continue"
		}
		return label + " has an invalid value"
	default:
		return label + " is invalid"
	}
}
