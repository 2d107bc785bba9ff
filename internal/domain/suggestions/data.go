package suggestions

// primarySuggestions is the default advice set, oriented around the
// headache presentation of the demo data.
var primarySuggestions = []Category{
	{
		Category: "Lifestyle",
		Items: []Item{
			{Title: "Improve sleep hygiene", Description: "Establish a regular sleep schedule and create a relaxing bedtime routine"},
			{Title: "Stress management", Description: "Practice relaxation techniques like deep breathing or meditation"},
			{Title: "Limit screen time", Description: "Reduce exposure to screens before bedtime to improve sleep quality"},
		},
	},
	{
		Category: "Nutrition",
		Items: []Item{
			{Title: "Stay hydrated", Description: "Drink at least 8 glasses of water daily to prevent dehydration headaches"},
			{Title: "Regular meals", Description: "Avoid skipping meals which can trigger headaches"},
			{Title: "Limit caffeine", Description: "Reduce caffeine intake, especially in the afternoon and evening"},
		},
	},
	{
		Category: "Medication",
		Items: []Item{
			{Title: "NSAIDs usage", Description: "Take prescribed NSAIDs with food to minimize gastrointestinal side effects"},
			{Title: "Medication timing", Description: "Take medication at the first sign of headache for maximum effectiveness"},
			{Title: "Avoid overuse", Description: "Limit use of pain relievers to prevent medication overuse headaches"},
		},
	},
}

var primaryInsights = []string{
	"Headache pattern suggests tension-type headaches rather than migraines due to lack of associated symptoms like nausea or visual disturbances.",
	"The correlation between increased work stress and headache onset indicates stress as a primary trigger.",
	"Irregular sleep patterns may be contributing to headache frequency and intensity.",
}

// alternativeSuggestions provides variety when no note is available.
var alternativeSuggestions = []Category{
	{
		Category: "Exercise",
		Items: []Item{
			{Title: "Low-impact activities", Description: "Incorporate walking, swimming, or cycling for 30 minutes daily"},
			{Title: "Strength training", Description: "Add light resistance training 2-3 times per week to improve overall health"},
			{Title: "Stretching routine", Description: "Perform gentle stretches daily to reduce muscle tension"},
		},
	},
	{
		Category: "Mental Health",
		Items: []Item{
			{Title: "Mindfulness practice", Description: "Spend 10 minutes daily on mindfulness meditation to reduce stress"},
			{Title: "Cognitive techniques", Description: "Practice identifying and challenging negative thought patterns"},
			{Title: "Social connections", Description: "Maintain regular contact with supportive friends and family"},
		},
	},
	{
		Category: "Preventive Care",
		Items: []Item{
			{Title: "Regular check-ups", Description: "Schedule annual physical examinations to monitor overall health"},
			{Title: "Vaccination", Description: "Stay up-to-date with recommended vaccinations"},
			{Title: "Health screenings", Description: "Follow age-appropriate screening guidelines for early detection"},
		},
	},
}

var alternativeInsights = []string{
	"Regular physical activity has been shown to improve mood and reduce symptoms of anxiety and depression.",
	"Consistent sleep patterns help regulate hormones that affect appetite, stress, and overall health.",
	"Social connections and community engagement are strongly linked to better health outcomes and longevity.",
}
