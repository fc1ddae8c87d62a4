package common

import "fmt"

// InvestorType legal form the shares are registered under
type InvestorType int

const (
	Individual InvestorType = iota + 1
	Joint
	Corporation
	Trust
	IRA
)

var investorTypeNames = map[InvestorType]string{
	Individual:  "individual",
	Joint:       "joint",
	Corporation: "corporation",
	Trust:       "trust",
	IRA:         "ira",
}

func (t InvestorType) String() string {
	if name, ok := investorTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether t is one of the known investor types.
func (t InvestorType) Valid() bool {
	_, ok := investorTypeNames[t]
	return ok
}

// ParseInvestorType inverse of String.
func ParseInvestorType(s string) (InvestorType, error) {
	for t, name := range investorTypeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown investor type %q", s)
}

func (t InvestorType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("unknown investor type %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *InvestorType) UnmarshalText(text []byte) error {
	parsed, err := ParseInvestorType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
