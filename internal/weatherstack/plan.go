package weatherstack

import "strings"

// CodeUsageRestricted is returned when the account's plan does not cover the
// requested function.
const CodeUsageRestricted = 603

const (
	TypeHistoricalNotSupported   = "historical_queries_not_supported_on_plan"
	TypeBulkNotSupported         = "bulk_queries_not_supported_on_plan"
	TypeForecastDaysNotSupported = "forecast_days_not_supported_on_plan"
)

const PlansURL = "https://weatherstack.com/product"

type Plan string

const (
	PlanFree         Plan = "Free"
	PlanStandard     Plan = "Standard"
	PlanProfessional Plan = "Professional"
)

var planRestrictedTypes = map[string]struct{}{
	TypeHistoricalNotSupported:   {},
	TypeBulkNotSupported:         {},
	TypeForecastDaysNotSupported: {},
}

// Matched case-insensitively against ErrorDetail.Info. Wording is owned by the
// provider, so this list may need updating when it changes.
var planRestrictedPhrases = []string{
	"subscription plan",
	"upgrade your account",
	"does not support",
}

// IsPlanLimitation reports whether the error means the subscription tier does
// not include the requested feature.
func IsPlanLimitation(e ErrorDetail) bool {
	if e.Code == CodeUsageRestricted {
		return true
	}

	if _, ok := planRestrictedTypes[e.Type]; ok {
		return true
	}

	info := strings.ToLower(e.Info)
	for _, phrase := range planRestrictedPhrases {
		if strings.Contains(info, phrase) {
			return true
		}
	}

	return false
}

// PlanRemediation returns upgrade guidance for a plan-limited error.
func PlanRemediation(e ErrorDetail) string {
	switch {
	case strings.Contains(e.Type, "historical"):
		return "Historical weather data requires Standard plan or higher. See available plans at " + PlansURL
	case strings.Contains(strings.ToLower(e.Info), "marine"):
		return "Marine weather data requires Professional plan or higher. See available plans at " + PlansURL
	default:
		return "This feature requires a higher subscription plan. See available plans at " + PlansURL
	}
}

// RequiredPlan is the lowest plan that serves endpoint.
func RequiredPlan(endpoint Endpoint) Plan {
	switch endpoint {
	case EndpointHistorical:
		return PlanStandard
	case EndpointMarine:
		return PlanProfessional
	default:
		return PlanFree
	}
}
