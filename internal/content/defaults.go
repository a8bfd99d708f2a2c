package content

var defaultWHO5Items = []string{
	"I have felt cheerful and in good spirits",
	"I have felt calm and relaxed",
	"I have felt active and vigorous",
	"I woke up feeling fresh and rested",
	"My daily life has been filled with things that interest me",
}

var defaultExercises = []Exercise{
	{
		ID:     "breathing_478",
		Title:  "Try 4-7-8 breathing",
		When:   "Anxious or restless; calm down in under 2 minutes.",
		What:   "Paced breathing that nudges the body toward calm.",
		Steps:  []string{"Inhale through the nose for 4s", "Hold for 7s", "Exhale slowly for 8s"},
		Cycles: 3,
	},
	{
		ID:     "grounding_54321",
		Title:  "Try 5-4-3-2-1 grounding",
		When:   "Overthinking; come back to the present.",
		What:   "Use your senses to anchor attention safely.",
		Steps:  []string{"5 things you can see", "4 things you can touch", "3 things you can hear", "2 things you can smell", "1 thing you can taste"},
		Cycles: 1,
	},
	{
		ID:     "box_breath",
		Title:  "Box Breathing",
		When:   "Feeling anxious or heart racing; need a quick reset.",
		What:   "Inhale-Hold-Exhale-Hold for equal counts.",
		Steps:  []string{"Inhale 4s", "Hold 4s", "Exhale 4s", "Hold 4s"},
		Cycles: 4,
	},
	{
		ID:     "body_scan",
		Title:  "60-sec Body Scan",
		When:   "Tense or restless; want to relax before sleep or study.",
		What:   "Move attention from head to toe, relaxing each area.",
		Steps:  []string{"Head & face relax", "Neck & shoulders soften", "Chest & arms loosen", "Stomach unclench", "Legs feel heavy", "Notice easy breathing"},
		Cycles: 1,
	},
	{
		ID:     "stop_skill",
		Title:  "STOP Skill",
		When:   "Strong emotions or urge to react; need a pause.",
		What:   "DBT micro-skill: pause, breathe, observe, proceed.",
		Steps:  []string{"S - Stop", "T - Take a slow breath", "O - Observe body/thoughts", "P - Proceed with one small helpful action"},
		Cycles: 1,
	},
}

var defaultHelplines = []Helpline{
	{ID: "kiran", Name: "KIRAN Mental Health Helpline", Phone: "1800-599-0019"},
	{ID: "tele_manas", Name: "Tele-MANAS", Phone: "14416"},
}

var defaultRiddles = []Riddle{
	{Question: "What runs but has no legs?", Answers: []string{"water", "river"}, Hints: []string{"It flows.", "You can drink it or see it in taps."}},
	{Question: "What has keys but can't open locks?", Answers: []string{"keyboard", "piano"}, Hints: []string{"You type or play on it.", "Musical or computer."}},
	{Question: "What has hands but can't clap?", Answers: []string{"clock"}, Hints: []string{"It tells time.", "It has a face."}},
	{Question: "I speak without a mouth and hear without ears. What am I?", Answers: []string{"echo"}, Hints: []string{"You hear me in valleys.", "I repeat what you say."}},
	{Question: "What gets wetter the more it dries?", Answers: []string{"towel"}, Hints: []string{"Found in bathrooms.", "You use it after a shower."}},
	{Question: "What has a neck but no head?", Answers: []string{"bottle"}, Hints: []string{"In the fridge.", "Holds liquids."}},
	{Question: "What has a face and two hands but no arms or legs?", Answers: []string{"clock", "watch"}, Hints: []string{"Time.", "Worn or wall-mounted."}},
	{Question: "What has one eye but cannot see?", Answers: []string{"needle", "hurricane", "cyclone"}, Hints: []string{"Tailor's tool.", "Also in a storm."}},
	{Question: "What belongs to you but others use it more than you?", Answers: []string{"name"}, Hints: []string{"People call it out.", "Identity."}},
	{Question: "What can be cracked, made, told, and played?", Answers: []string{"joke"}, Hints: []string{"Laughter involved.", "Comedians love it."}},
	{Question: "What has many teeth but cannot bite?", Answers: []string{"comb", "zipper"}, Hints: []string{"Hair tool.", "Also on jackets."}},
	{Question: "What can you catch but not throw?", Answers: []string{"cold"}, Hints: []string{"Health related.", "Sneezes."}},
	{Question: "What has a head and a tail but no body?", Answers: []string{"coin"}, Hints: []string{"Flip it.", "Money."}},
	{Question: "What can travel around the world while staying in a corner?", Answers: []string{"stamp"}, Hints: []string{"On letters.", "Postal."}},
	{Question: "What room has no doors or windows?", Answers: []string{"mushroom"}, Hints: []string{"It's a pun.", "Edible."}},
	{Question: "What gets broken without being held?", Answers: []string{"promise"}, Hints: []string{"Trust issue.", "Words."}},
	{Question: "What invention lets you look right through a wall?", Answers: []string{"window"}, Hints: []string{"Transparent.", "Glass."}},
	{Question: "What is full of holes but still holds water?", Answers: []string{"sponge"}, Hints: []string{"Kitchen item.", "Absorbs."}},
	{Question: "What goes up but never comes down?", Answers: []string{"age"}, Hints: []string{"Birthday related.", "Numbers."}},
	{Question: "What has words but never speaks?", Answers: []string{"book"}, Hints: []string{"Library.", "Pages."}},
}
