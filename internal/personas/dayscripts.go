package personas

// DayScript is the curriculum entry for one masterclass day. These seed the
// day_template table at migration time.
type DayScript struct {
	DayNumber   int
	LessonTitle string
	GapTopic    string
	HasOffer    bool
}

var dayScriptsByNiche = map[string][]DayScript{
	NicheNutrition: {
		{0, "Welcome to your pod", "why most nutrition advice fails real people", false},
		{1, "The habit ladder", "clients don't need meal plans, they need systems", false},
		{2, "Reading a real food diary", "what clients hide and why", false},
		{3, "Coaching conversations 101", "asking instead of prescribing", false},
		{4, "Your first client avatar", "who you can actually help in year one", false},
		{5, "Pricing without panic", "why undercharging kills coaching practices", true},
		{6, "The 15-minute consult", "turning a conversation into a client", false},
		{7, "Scope of practice", "where coaching ends and referral begins", false},
		{8, "Building your certification plan", "what certified coaches earn and why", true},
		{9, "Graduation day", "your next 90 days as a coach", true},
	},
	NicheFitness: {
		{0, "Welcome to your pod", "why gym knowledge doesn't equal coaching skill", false},
		{1, "Movement screens for normal people", "meeting clients where their body is", false},
		{2, "Programming for the unmotivated", "adherence beats optimization", false},
		{3, "The check-in that keeps clients", "accountability without nagging", false},
		{4, "Your first client avatar", "training generalists vs a niche you own", false},
		{5, "Pricing without panic", "session rates vs coaching packages", true},
		{6, "Coaching form over video", "what you can and can't fix remotely", false},
		{7, "Injuries and red flags", "when to stop and refer out", false},
		{8, "Building your certification plan", "what certified trainers-turned-coaches earn", true},
		{9, "Graduation day", "your next 90 days as a coach", true},
	},
	NicheWomensHealth: {
		{0, "Welcome to your pod", "why women's health coaching is exploding", false},
		{1, "Cycles, sleep, and stress", "the triad most coaches ignore", false},
		{2, "Listening past the symptom list", "what clients were dismissed about", false},
		{3, "Coaching conversations 101", "holding space without diagnosing", false},
		{4, "Your first client avatar", "the woman you were five years ago", false},
		{5, "Pricing without panic", "premium niches deserve premium rates", true},
		{6, "Working alongside doctors", "being the ally, not the replacement", false},
		{7, "Scope of practice", "hormones, supplements, and hard lines", false},
		{8, "Building your certification plan", "credibility in a skeptical market", true},
		{9, "Graduation day", "your next 90 days as a coach", true},
	},
	NicheGeneral: {
		{0, "Welcome to your pod", "what health coaching actually is", false},
		{1, "The coaching mindset", "advice-giving vs behavior change", false},
		{2, "Finding your niche", "why 'everyone' is not a client", false},
		{3, "Coaching conversations 101", "the power of one good question", false},
		{4, "Your first client avatar", "borrowing your own story", false},
		{5, "Pricing without panic", "charging before you feel ready", true},
		{6, "The 15-minute consult", "turning a conversation into a client", false},
		{7, "Scope of practice", "staying safe and legal", false},
		{8, "Building your certification plan", "what certification unlocks", true},
		{9, "Graduation day", "your next 90 days as a coach", true},
	},
}

// ScriptFor returns the curriculum for a niche, falling back to general.
func ScriptFor(niche string) []DayScript {
	if script, ok := dayScriptsByNiche[niche]; ok && len(script) > 0 {
		return script
	}
	return dayScriptsByNiche[NicheGeneral]
}

// DayFor returns the script entry for one day, or false past the end.
func DayFor(niche string, day int) (DayScript, bool) {
	script := ScriptFor(niche)
	for _, d := range script {
		if d.DayNumber == day {
			return d, true
		}
	}
	return DayScript{}, false
}

// TotalLessons is the curriculum length for a niche.
func TotalLessons(niche string) int {
	return len(ScriptFor(niche))
}

// AllNiches lists every niche with a curriculum, for seeding.
func AllNiches() []string {
	return []string{NicheNutrition, NicheFitness, NicheWomensHealth, NicheGeneral}
}
