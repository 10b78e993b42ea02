package suppression

import (
	"fmt"
	"time"
)

// AccessRequestDetail is an append-only audit row recording who accessed a
// suppressed record and why.
type AccessRequestDetail struct {
	ID                    uint
	SuppressionID         uint
	DateRequested         time.Time
	SubjectPlateOrLicense string
	Requester             string
	Reason                string
	Duration              string
	Initials              string
	CreatedAt             time.Time
}

// NewAccessRequestDetail validates and builds an access-request row.
// DateRequested defaults to now when zero.
func NewAccessRequestDetail(suppressionID uint, dateRequested time.Time, subject, requester, reason, duration, initials string) (*AccessRequestDetail, error) {
	if suppressionID == 0 {
		return nil, fmt.Errorf("suppression ID is required")
	}
	if requester == "" {
		return nil, fmt.Errorf("requester is required")
	}
	if dateRequested.IsZero() {
		dateRequested = time.Now()
	}

	return &AccessRequestDetail{
		SuppressionID:         suppressionID,
		DateRequested:         dateRequested,
		SubjectPlateOrLicense: subject,
		Requester:             requester,
		Reason:                reason,
		Duration:              duration,
		Initials:              initials,
		CreatedAt:             time.Now(),
	}, nil
}

// IdentityAliasDetail records the prior identity a suppression is masking.
type IdentityAliasDetail struct {
	ID                uint
	SuppressionID     uint
	OldName           string
	OldPlateOrLicense string
	CreatedAt         time.Time
}

// NewIdentityAliasDetail validates and builds an identity-alias row.
func NewIdentityAliasDetail(suppressionID uint, oldName, oldPlateOrLicense string) (*IdentityAliasDetail, error) {
	if suppressionID == 0 {
		return nil, fmt.Errorf("suppression ID is required")
	}
	if oldName == "" && oldPlateOrLicense == "" {
		return nil, fmt.Errorf("at least one of old name or old plate/license is required")
	}

	return &IdentityAliasDetail{
		SuppressionID:     suppressionID,
		OldName:           oldName,
		OldPlateOrLicense: oldPlateOrLicense,
		CreatedAt:         time.Now(),
	}, nil
}
