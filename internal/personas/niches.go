package personas

import "strings"

const (
	NicheNutrition    = "nutrition"
	NicheFitness      = "fitness"
	NicheWomensHealth = "womens_health"
	NicheGeneral      = "general"
)

// funnelSuffixes are appended to niche names by the email automation when it
// tags a lead ("nutrition-webinar", "fitness-optin", ...).
var funnelSuffixes = []string{
	"-lead",
	"-optin",
	"-webinar",
	"-masterclass",
	"-quiz",
	"-vsl",
}

// NicheFromTag derives a niche category from a funnel tag by stripping the
// campaign suffix. Unknown or empty tags map to the general niche.
func NicheFromTag(tag string) string {
	niche := strings.ToLower(strings.TrimSpace(tag))
	for _, suffix := range funnelSuffixes {
		niche = strings.TrimSuffix(niche, suffix)
	}
	if _, ok := zombiesByNiche[niche]; ok {
		return niche
	}
	return NicheGeneral
}
