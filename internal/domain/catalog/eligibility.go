package catalog

import "strings"

// EligibilityPolicy decides whether a postcode is serviceable. On top of
// each service's own postcode list it carries one environment-configured
// override list; a postcode on the override list is serviceable for every
// service. The override list widens eligibility, it never restricts it.
type EligibilityPolicy struct {
	overrides map[string]struct{}
}

func NewEligibilityPolicy(overridePostcodes []string) EligibilityPolicy {
	overrides := make(map[string]struct{}, len(overridePostcodes))
	for _, pc := range overridePostcodes {
		pc = strings.TrimSpace(pc)
		if pc == "" {
			continue
		}
		overrides[pc] = struct{}{}
	}
	return EligibilityPolicy{overrides: overrides}
}

func (p EligibilityPolicy) Allows(svc *Service, postcode string) bool {
	if svc.ServesPostcode(postcode) {
		return true
	}
	_, ok := p.overrides[strings.TrimSpace(postcode)]
	return ok
}
