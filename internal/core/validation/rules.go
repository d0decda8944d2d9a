package validation

import "strings"

// Violation messages. The two target messages distinguish whether the
// target flag was enabled or disabled when the amount disagreed.
const (
	MsgTitleBlank            = "title must not be blank"
	MsgSlugBlank             = "slug must not be blank"
	MsgTargetEnabledInvalid  = "target amount must be greater than zero when the target is enabled"
	MsgTargetDisabledInvalid = "target amount must be zero when the target is disabled"
)

// TitleNotBlank rejects a present-but-blank title. Absent titles (the
// partial input variant) are accepted.
func TitleNotBlank(in CampaignFields) Violations {
	value, present := in.TitleField()
	if present && strings.TrimSpace(value) == "" {
		return Violations{{Field: "title", Message: MsgTitleBlank}}
	}
	return nil
}

// SlugNotBlank rejects a present-but-blank slug. Absent slugs are
// accepted.
func SlugNotBlank(in CampaignFields) Violations {
	value, present := in.SlugField()
	if present && strings.TrimSpace(value) == "" {
		return Violations{{Field: "slug", Message: MsgSlugBlank}}
	}
	return nil
}

// TargetAmountConsistent is the cross-field rule tying the target
// amount to the target flag: a positive amount requires the flag and a
// disabled flag requires a zero amount. At most one violation is
// produced, always on target_amount.
func TargetAmountConsistent(in CampaignFields) Violations {
	hasTarget, amount := in.TargetFields()
	if hasTarget && amount <= 0 {
		return Violations{{Field: "target_amount", Message: MsgTargetEnabledInvalid}}
	}
	if !hasTarget && amount != 0 {
		return Violations{{Field: "target_amount", Message: MsgTargetDisabledInvalid}}
	}
	return nil
}
