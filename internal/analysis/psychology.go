package analysis

// PhaseWidth is the number of price samples covered by one market phase.
const PhaseWidth = 3

type Phase struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

type PsychologyCycle struct {
	Phases   []Phase   `json:"phases"`
	Emotions []string  `json:"emotions"`
	Prices   []float64 `json:"prices"`
}

// Psychology returns the fixed illustrative market cycle: four phases, twelve
// emotional states and thirteen price samples. Emotion i belongs to price i.
func Psychology() PsychologyCycle {
	names := []string{"Accumulation", "Markup", "Distribution", "Decline"}
	colors := []string{"skyblue", "lightgreen", "khaki", "lightcoral"}

	phases := make([]Phase, len(names))
	for i, name := range names {
		phases[i] = Phase{
			Name:  name,
			Color: colors[i],
			Start: i * PhaseWidth,
			End:   (i + 1) * PhaseWidth,
		}
	}

	return PsychologyCycle{
		Phases: phases,
		Emotions: []string{
			"Disbelief", "Hope", "Optimism", "Belief", "Thrill", "Euphoria",
			"Anxiety", "Denial", "Panic", "Capitulation", "Anger", "Depression",
		},
		Prices: []float64{1, 2, 4, 8, 16, 32, 20, 18, 15, 10, 5, 3, 2},
	}
}
