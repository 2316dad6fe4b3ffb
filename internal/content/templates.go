package content

import "manifest-server/internal/models"

// categoryTemplates - фиксированный набор шаблонов контента одной категории.
// Все списки упорядочены по релевантности; усечение делает генератор.
type categoryTemplates struct {
	affirmations   []string
	quotes         map[string][]string // sub-theme -> цитаты
	subThemeOrder  []string            // первый элемент - фолбэк для неотображенной эмоции
	actionSteps    []string
	milestones     []string
	successMetrics []string
	visualCues     []string
}

// emotionSubThemes - отображение эмоции запроса в суб-тему цитат.
// Неотображенная эмоция получает первую суб-тему категории.
var emotionSubThemes = map[models.Emotion]string{
	models.EmotionAmbition:      "drive",
	models.EmotionDetermination: "persistence",
	models.EmotionExcitement:    "drive",
	models.EmotionJoy:           "fulfillment",
	models.EmotionSerenity:      "fulfillment",
	models.EmotionLove:          "fulfillment",
	models.EmotionConfidence:    "drive",
	models.EmotionGratitude:     "fulfillment",
	models.EmotionHope:          "persistence",
}

var templates = map[models.Category]categoryTemplates{
	models.CategoryCareerBusiness: {
		affirmations: []string{
			"I am building a successful venture that matters",
			"My work creates real value for real people",
			"I attract the right opportunities and the right people",
			"Every setback teaches me how to lead better",
		},
		subThemeOrder: []string{"drive", "persistence", "fulfillment"},
		quotes: map[string][]string{
			"drive": {
				"The way to get started is to quit talking and begin doing.",
				"Opportunities don't happen. You create them.",
				"Whether you think you can or you think you can't, you're right.",
			},
			"persistence": {
				"Success is walking from failure to failure with no loss of enthusiasm.",
				"Fall seven times, stand up eight.",
			},
			"fulfillment": {
				"Choose a job you love, and you will never have to work a day in your life.",
				"Work gives you meaning and purpose, and life is empty without it.",
			},
		},
		actionSteps: []string{
			"Write a one-page vision of the business you are building",
			"Talk to five potential customers this week",
			"Build the smallest version of your product that solves one problem",
			"Set a weekly review of progress and blockers",
			"Find one mentor who has done what you are attempting",
			"Define the first revenue milestone and the date you will hit it",
			"Block two deep-work hours in your calendar every day",
		},
		milestones: []string{
			"Week 1: vision and first customer conversations",
			"Month 1: working prototype in users' hands",
			"Month 3: first paying customer",
			"Month 6: repeatable sales process",
			"Year 1: sustainable revenue and a clear growth plan",
		},
		successMetrics: []string{
			"Number of customer conversations per week",
			"Active users of the product",
			"Monthly recurring revenue",
			"Hours of focused work per day",
		},
		visualCues: []string{
			"A skyline at dawn - the scale of what you are building",
			"A launch countdown - momentum made visible",
			"A signed first contract",
			"Your product on a customer's screen",
		},
	},
	models.CategoryHealthFitness: {
		affirmations: []string{
			"My body gets stronger with every session",
			"I fuel myself with food that serves my goals",
			"Rest is part of my training, not a break from it",
			"I am consistent even when I am not motivated",
		},
		subThemeOrder: []string{"persistence", "drive", "fulfillment"},
		quotes: map[string][]string{
			"persistence": {
				"Take care of your body. It's the only place you have to live.",
				"The pain you feel today will be the strength you feel tomorrow.",
			},
			"drive": {
				"The body achieves what the mind believes.",
				"You don't have to be extreme, just consistent.",
			},
			"fulfillment": {
				"To keep the body in good health is a duty.",
			},
		},
		actionSteps: []string{
			"Schedule three workouts for this week right now",
			"Prepare tomorrow's meals tonight",
			"Walk ten thousand steps today",
			"Find a training partner or a class with a fixed time",
			"Track sleep for two weeks and fix the worst habit",
			"Book a baseline health check",
			"Plan a rest day you will actually take",
		},
		milestones: []string{
			"Week 1: three completed workouts",
			"Month 1: training is a routine, not a decision",
			"Month 3: visible strength or endurance gains",
			"Month 6: first race or personal record attempt",
			"Year 1: the new body is the normal body",
		},
		successMetrics: []string{
			"Workouts completed per week",
			"Resting heart rate trend",
			"Hours of sleep per night",
			"Personal records broken",
		},
		visualCues: []string{
			"Running shoes by the door",
			"A finish line tape",
			"A plate of real, colorful food",
			"Sunrise over a running trail",
		},
	},
	models.CategoryRelationships: {
		affirmations: []string{
			"I show up fully for the people I love",
			"I communicate with honesty and kindness",
			"I attract relationships that help me grow",
			"I make time for connection every single day",
		},
		subThemeOrder: []string{"fulfillment", "persistence", "drive"},
		quotes: map[string][]string{
			"fulfillment": {
				"The best thing to hold onto in life is each other.",
				"Happiness is only real when shared.",
			},
			"persistence": {
				"Love is composed of a single soul inhabiting two bodies.",
			},
			"drive": {
				"To love and be loved is to feel the sun from both sides.",
			},
		},
		actionSteps: []string{
			"Plan one undistracted evening with the person who matters most",
			"Call a friend you have been meaning to call",
			"Say the appreciation out loud instead of thinking it",
			"Put recurring family time in the calendar",
			"Learn one thing about a loved one you did not know",
			"Resolve one small conflict you have been avoiding",
			"Host a dinner for people you want closer",
		},
		milestones: []string{
			"Week 1: one real conversation without screens",
			"Month 1: a standing ritual with someone you love",
			"Month 3: the difficult conversation is behind you",
			"Month 6: your circle knows they can count on you",
			"Year 1: relationships are a source of energy, not guilt",
		},
		successMetrics: []string{
			"Undistracted hours with loved ones per week",
			"Conversations initiated, not just answered",
			"Conflicts resolved rather than buried",
			"New shared memories made",
		},
		visualCues: []string{
			"Two cups of coffee on one table",
			"A long table set for many",
			"Hands held on a walk",
			"A framed photo that does not exist yet",
		},
	},
	models.CategoryFinancialFreedom: {
		affirmations: []string{
			"I am in control of every dollar that moves through my life",
			"My savings grow while I sleep",
			"I spend on what matters and nothing else",
			"Wealth is a system I am building, not luck",
		},
		subThemeOrder: []string{"drive", "persistence", "fulfillment"},
		quotes: map[string][]string{
			"drive": {
				"Do not save what is left after spending, but spend what is left after saving.",
				"The best investment you can make is in yourself.",
			},
			"persistence": {
				"Compound interest is the eighth wonder of the world.",
				"Small amounts saved daily add up to huge investments in the end.",
			},
			"fulfillment": {
				"Wealth consists not in having great possessions, but in having few wants.",
			},
		},
		actionSteps: []string{
			"Write down every expense for the next thirty days",
			"Automate a transfer to savings on payday",
			"Cancel the three subscriptions you forgot about",
			"Set the exact number that means freedom for you",
			"Open the investment account you keep postponing",
			"Negotiate one recurring bill this month",
			"Read one book on investing fundamentals",
		},
		milestones: []string{
			"Week 1: full picture of where the money goes",
			"Month 1: automated savings running",
			"Month 3: one month of expenses in the emergency fund",
			"Month 6: investing on a fixed schedule",
			"Year 1: net worth moving in the right direction every month",
		},
		successMetrics: []string{
			"Savings rate percentage",
			"Months of expenses covered by the emergency fund",
			"Net worth trend",
			"Recurring costs eliminated",
		},
		visualCues: []string{
			"A growing plant in a jar of coins",
			"An open road with no toll booths",
			"A paid-off statement stamped zero",
			"Keys to a place that is yours",
		},
	},
	models.CategoryTravelAdventure: {
		affirmations: []string{
			"The world is wide and I am going to see it",
			"I say yes to the experiences that scare me a little",
			"Every trip makes me a bigger person in a bigger world",
			"I am a traveler, not a tourist",
		},
		subThemeOrder: []string{"drive", "fulfillment", "persistence"},
		quotes: map[string][]string{
			"drive": {
				"Twenty years from now you will be more disappointed by the things you didn't do.",
				"Adventure is worthwhile in itself.",
			},
			"fulfillment": {
				"The world is a book and those who do not travel read only one page.",
				"Travel is the only thing you buy that makes you richer.",
			},
			"persistence": {
				"A journey of a thousand miles begins with a single step.",
			},
		},
		actionSteps: []string{
			"Pick the destination and say it out loud",
			"Open a dedicated travel fund today",
			"Block the dates in your calendar before life fills them",
			"Learn ten phrases of the local language",
			"Book the first non-refundable thing",
			"Plan one micro-adventure within an hour of home",
			"Renew the passport before you need it",
		},
		milestones: []string{
			"Week 1: destination chosen, fund opened",
			"Month 1: dates blocked and flights watched",
			"Month 3: tickets booked",
			"Month 6: bags packed, out the door",
			"Year 1: stories you will tell for a decade",
		},
		successMetrics: []string{
			"Travel fund balance",
			"Trips taken versus trips postponed",
			"New places experienced",
			"Days spent outside the routine",
		},
		visualCues: []string{
			"A passport full of stamps",
			"A mountain summit above the clouds",
			"A train window with the world going by",
			"A map with pins where you have been",
		},
	},
	models.CategoryEducationGrowth: {
		affirmations: []string{
			"I learn faster every time I learn",
			"Deep focus is a skill and I am training it",
			"Every page read compounds into who I become",
			"I finish what I start studying",
		},
		subThemeOrder: []string{"persistence", "drive", "fulfillment"},
		quotes: map[string][]string{
			"persistence": {
				"Live as if you were to die tomorrow. Learn as if you were to live forever.",
				"An investment in knowledge pays the best interest.",
			},
			"drive": {
				"The beautiful thing about learning is that no one can take it away from you.",
			},
			"fulfillment": {
				"Education is not the filling of a pail, but the lighting of a fire.",
			},
		},
		actionSteps: []string{
			"Define what finished looks like for this skill",
			"Schedule a fixed daily study block, even twenty minutes",
			"Find the one course or book that experts actually recommend",
			"Practice in public: share what you learn weekly",
			"Find a study partner or accountability group",
			"Teach the hardest concept you know to someone else",
			"Book the exam or certification date now",
		},
		milestones: []string{
			"Week 1: study block running daily",
			"Month 1: fundamentals done, first real practice",
			"Month 3: producing work, not just consuming material",
			"Month 6: certification or portfolio piece complete",
			"Year 1: the skill pays for itself",
		},
		successMetrics: []string{
			"Study sessions completed per week",
			"Concepts you can teach, not just recognize",
			"Projects or essays finished",
			"Certifications earned",
		},
		visualCues: []string{
			"A desk lit by one lamp at dawn",
			"A stack of finished books",
			"A diploma frame waiting on the wall",
			"Notes in your own handwriting",
		},
	},
	models.CategoryCreativityArts: {
		affirmations: []string{
			"I make art before I check anything else",
			"My voice is unlike anyone else's and that is the point",
			"Finished beats perfect, every time",
			"I create whether or not anyone is watching",
		},
		subThemeOrder: []string{"drive", "persistence", "fulfillment"},
		quotes: map[string][]string{
			"drive": {
				"Creativity takes courage.",
				"The worst enemy to creativity is self-doubt.",
			},
			"persistence": {
				"Amateurs sit and wait for inspiration, the rest of us just get up and go to work.",
				"You can't use up creativity. The more you use, the more you have.",
			},
			"fulfillment": {
				"Art washes away from the soul the dust of everyday life.",
			},
		},
		actionSteps: []string{
			"Set a daily creative minimum so small it is unskippable",
			"Finish the oldest unfinished piece before starting new ones",
			"Share one work in progress this week",
			"Build a ritual: same time, same place, same tools",
			"Study one master closely and steal like an artist",
			"Submit somewhere with a deadline",
			"Archive everything - volume is the teacher",
		},
		milestones: []string{
			"Week 1: daily practice established",
			"Month 1: one finished piece shipped",
			"Month 3: a body of work forming",
			"Month 6: first public showing or release",
			"Year 1: you call yourself an artist without flinching",
		},
		successMetrics: []string{
			"Days created in a row",
			"Pieces finished, not started",
			"Work shared publicly",
			"Honest feedback received and used",
		},
		visualCues: []string{
			"A studio mid-work, beautifully messy",
			"A gallery wall with your name",
			"Hands covered in the medium you love",
			"An audience seeing your work for the first time",
		},
	},
	models.CategorySpiritualWellbeing: {
		affirmations: []string{
			"I begin each day from stillness",
			"I am exactly where I need to be",
			"Peace is a practice and I practice daily",
			"I let go of what I cannot hold",
		},
		subThemeOrder: []string{"fulfillment", "persistence", "drive"},
		quotes: map[string][]string{
			"fulfillment": {
				"Peace comes from within. Do not seek it without.",
				"Wherever you go, there you are.",
			},
			"persistence": {
				"Feelings come and go like clouds in a windy sky. Conscious breathing is my anchor.",
			},
			"drive": {
				"The quieter you become, the more you can hear.",
			},
		},
		actionSteps: []string{
			"Sit quietly for five minutes before the phone comes on",
			"Write three things you are grateful for tonight",
			"Take one full walk without headphones",
			"Declare one evening a week screen-free",
			"Read one page of something that feeds you",
			"Do one kind thing anonymously",
			"End the day by forgiving one small thing",
		},
		milestones: []string{
			"Week 1: morning stillness every day",
			"Month 1: gratitude is automatic",
			"Month 3: you notice reactions before they happen",
			"Month 6: calm survives a genuinely bad day",
			"Year 1: people ask what changed",
		},
		successMetrics: []string{
			"Days of morning practice in a row",
			"Screen-free evenings per week",
			"Moments of reactivity caught early",
			"Gratitude entries written",
		},
		visualCues: []string{
			"Still water at first light",
			"A single candle in a dark room",
			"Stones balanced on a shore",
			"An empty bench under a big tree",
		},
	},
}

// genericTemplates - единственный фолбэк-набор для нераспознанной категории.
// Все категорийные таблицы этого пакета деградируют именно сюда.
var genericTemplates = categoryTemplates{
	affirmations: []string{
		"I am growing into the person I want to become",
		"Every small step today builds my tomorrow",
		"I trust myself to figure it out",
		"My goals are worth the work they ask of me",
	},
	subThemeOrder: []string{"persistence", "drive", "fulfillment"},
	quotes: map[string][]string{
		"persistence": {
			"It does not matter how slowly you go as long as you do not stop.",
			"The secret of getting ahead is getting started.",
		},
		"drive": {
			"The future belongs to those who believe in the beauty of their dreams.",
		},
		"fulfillment": {
			"Happiness is not something ready made. It comes from your own actions.",
		},
	},
	actionSteps: []string{
		"Write the goal down in one concrete sentence",
		"Identify the very first physical action and do it today",
		"Tell one person who will ask you about it",
		"Break the goal into monthly checkpoints",
		"Review progress every Sunday evening",
		"Remove one obstacle from your environment",
		"Celebrate the first visible result",
	},
	milestones: []string{
		"Week 1: goal written and first action done",
		"Month 1: a working routine around the goal",
		"Month 3: first measurable progress",
		"Month 6: halfway point reached",
		"Year 1: the goal is reality or close to it",
	},
	successMetrics: []string{
		"Actions taken per week",
		"Checkpoints hit on time",
		"Obstacles removed",
		"Confidence in the plan",
	},
	visualCues: []string{
		"A sunrise over an open road",
		"A single green sprout in soil",
		"An open door with light behind it",
		"A horizon you are walking toward",
	},
}

// templatesFor возвращает шаблоны категории или generic-фолбэк.
func templatesFor(cat models.Category) categoryTemplates {
	if t, ok := templates[cat]; ok {
		return t
	}
	return genericTemplates
}
