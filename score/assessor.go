package score

import (
	"time"

	"github.com/google/uuid"

	"github.com/parascreen/parascreen-api/schema"
)

// RiskAssessor chains validation, scoring and classification over one
// submission. It holds no state; every call is independent.
type RiskAssessor struct{}

func NewAssessor() *RiskAssessor {
	return &RiskAssessor{}
}

func (a *RiskAssessor) Assess(raw schema.RawSubmission, now time.Time) (*schema.RiskAssessment, []string) {
	in, errs := Validate(raw, now)
	if len(errs) > 0 {
		return nil, errs
	}

	s := RiskScore(*in)
	tier, label := Classify(s)

	return &schema.RiskAssessment{
		ID:    uuid.New().String(),
		Age:   in.Age,
		Score: s,
		Tier:  tier,
		Label: label,
	}, nil
}
