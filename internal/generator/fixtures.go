package generator

import "pitchplan_backend/internal/plan"

// Fixture documents for the mock path, keyed [sessionType][sessionFocus].
var mockSessions = map[string]map[string]*plan.Session{
	"outfield": {
		"passing": outfieldPassing,
	},
	"goalkeeping": {
		"handling": goalkeepingHandling,
	},
}

// defaultFixture is served when no exact (type, focus) fixture exists.
var defaultFixture = outfieldPassing

var outfieldPassing = &plan.Session{
	Title:           "Passing & Receiving Workshop",
	Level:           "Youth U12",
	SessionType:     "outfield",
	SessionFocus:    "passing",
	DurationMinutes: 60,
	Participants:    14,
	Objectives: []string{
		"Improve passing accuracy under pressure",
		"Develop first touch and ball control",
		"Build confidence in possession",
	},
	Equipment: []string{
		"20 x Footballs",
		"16 x Cones",
		"4 x Training goals",
		"8 x Mannequins",
		"Bibs (3 colors)",
	},
	Warmup: plan.Warmup{
		Name:            "Dynamic Movement",
		DurationMinutes: 10,
		Description:     "Light jogging followed by dynamic stretches including leg swings, high knees, and ball touches. Players work in pairs with simple passing while moving.",
	},
	Practices: []plan.Practice{
		{
			Name:             "Short Passing Accuracy",
			DurationMinutes:  15,
			PlayersRequired:  14,
			AreaMeters:       []float64{20, 15},
			SetupDescription: "Set up 4 stations with cones 10 meters apart. Players work in pairs, focusing on accurate ground passes.",
			Steps: []string{
				"Players face each other 10m apart",
				"Pass with inside of foot, receive with first touch",
				"Progress to one-touch passing",
				"Add pressure with passive defender",
			},
			CoachingPoints: []string{
				"Keep head up before passing",
				"Use inside of foot for accuracy",
				"Receive across your body",
				"Communicate with your partner",
			},
			Aims: []string{
				"Improve passing accuracy to 85%",
				"Develop consistent first touch",
				"Build passing confidence under pressure",
			},
			DifficultyLevel: 2,
			DiagramSVG: `<svg viewBox="0 0 200 150" xmlns="http://www.w3.org/2000/svg">
  <rect x="10" y="10" width="180" height="130" fill="none" stroke="#2c3e50" stroke-width="2"/>
  <circle cx="50" cy="75" r="8" fill="#3498db"/>
  <circle cx="150" cy="75" r="8" fill="#e74c3c"/>
  <path d="M 58 75 L 142 75" stroke="#2c3e50" stroke-width="2" marker-end="url(#arrowhead)"/>
  <defs>
    <marker id="arrowhead" markerWidth="10" markerHeight="7" refX="9" refY="3.5" orient="auto">
      <polygon points="0 0, 10 3.5, 0 7" fill="#2c3e50"/>
    </marker>
  </defs>
  <text x="100" y="95" text-anchor="middle" font-size="12" fill="#2c3e50">10m</text>
</svg>`,
		},
		{
			Name:             "Triangle Passing",
			DurationMinutes:  20,
			PlayersRequired:  12,
			AreaMeters:       []float64{15, 15},
			SetupDescription: "Create triangles with 3 players, 5 meters apart. Focus on quick, accurate passing and movement.",
			Steps: []string{
				"Form triangles of 3 players",
				"Pass clockwise, then counter-clockwise",
				"Add movement after each pass",
				"Introduce two-ball exercise",
			},
			CoachingPoints: []string{
				"Pass and move to create angles",
				"Receive on back foot when possible",
				"Keep the tempo high",
				"Support your teammates",
			},
			Aims: []string{
				"Develop quick passing rhythm",
				"Improve off-ball movement",
				"Build team passing patterns",
			},
			DifficultyLevel: 3,
			DiagramSVG: `<svg viewBox="0 0 200 150" xmlns="http://www.w3.org/2000/svg">
  <polygon points="100,30 50,120 150,120" fill="none" stroke="#2c3e50" stroke-width="2"/>
  <circle cx="100" cy="30" r="8" fill="#3498db"/>
  <circle cx="50" cy="120" r="8" fill="#e74c3c"/>
  <circle cx="150" cy="120" r="8" fill="#f39c12"/>
  <path d="M 100 38 L 58 112" stroke="#2c3e50" stroke-width="2" marker-end="url(#arrowhead)"/>
  <path d="M 58 120 L 142 120" stroke="#2c3e50" stroke-width="2" marker-end="url(#arrowhead)"/>
  <path d="M 150 112 L 108 38" stroke="#2c3e50" stroke-width="2" marker-end="url(#arrowhead)"/>
  <text x="100" y="140" text-anchor="middle" font-size="12" fill="#2c3e50">5m each side</text>
</svg>`,
		},
	},
	SmallSidedGame: plan.GameBlock{
		DurationMinutes: 10,
		Description:     "4v4 possession game in 20x20m area. Team keeps ball for 6 consecutive passes to score a point. Focus on quick passing and creating space.",
	},
	Cooldown: plan.GameBlock{
		DurationMinutes: 5,
		Description:     "Light jogging around the pitch followed by static stretching. Focus on hamstrings, calves, and quadriceps. Players walk and discuss key points from the session.",
	},
	SafetyNotes: []string{
		"Check pitch for holes or dangerous objects",
		"Ensure proper warm-up before intense activities",
		"Keep hydration available at all times",
		"Monitor player fatigue levels",
	},
	Diagrams: []plan.Diagram{
		{
			PracticeName: "Short Passing Accuracy",
			SVG:          `<svg viewBox="0 0 200 150" xmlns="http://www.w3.org/2000/svg">...</svg>`,
		},
	},
}

var goalkeepingHandling = &plan.Session{
	Title:           "Goalkeeping Handling Workshop",
	Level:           "Youth U12",
	SessionType:     "goalkeeping",
	SessionFocus:    "handling",
	DurationMinutes: 60,
	Participants:    6,
	Objectives: []string{
		"Improve catching technique for various ball heights",
		"Develop safe handling under pressure",
		"Build confidence in 1v1 situations",
	},
	Equipment: []string{
		"15 x Footballs",
		"2 x Full-size goals",
		"12 x Cones",
		"4 x Agility poles",
		"2 x Rebounders",
	},
	Warmup: plan.Warmup{
		Name:            "Goalkeeper Mobility",
		DurationMinutes: 10,
		Description:     "Dynamic warm-up including arm circles, leg swings, and diving preparation. Progress to basic catching with thrown balls.",
	},
	Practices: []plan.Practice{
		{
			Name:             "Basic Catching Technique",
			DurationMinutes:  20,
			PlayersRequired:  6,
			AreaMeters:       []float64{18, 6},
			SetupDescription: "Goalkeepers work in pairs, one throwing balls at various heights while the other practices catching technique.",
			Steps: []string{
				"Start with underarm throws at chest height",
				"Progress to balls thrown at head height",
				"Add balls thrown to either side",
				"Introduce bouncing balls",
			},
			CoachingPoints: []string{
				"Get body behind the ball",
				"Use the 'W' shape with hands",
				"Secure the ball to chest quickly",
				"Stay on balls of feet",
			},
			Aims: []string{
				"Perfect the basic catching position",
				"Develop muscle memory for safe handling",
				"Build confidence with ball handling",
			},
			DifficultyLevel: 2,
			DiagramSVG: `<svg viewBox="0 0 200 150" xmlns="http://www.w3.org/2000/svg">
  <rect x="20" y="20" width="160" height="110" fill="none" stroke="#2c3e50" stroke-width="2"/>
  <circle cx="60" cy="75" r="10" fill="#3498db"/>
  <circle cx="140" cy="75" r="10" fill="#e74c3c"/>
  <circle cx="100" cy="50" r="4" fill="#f39c12"/>
  <path d="M 70 75 L 96 54" stroke="#2c3e50" stroke-width="2" marker-end="url(#arrowhead)"/>
  <text x="100" y="145" text-anchor="middle" font-size="12" fill="#2c3e50">6m apart</text>
</svg>`,
		},
	},
	SmallSidedGame: plan.GameBlock{
		DurationMinutes: 15,
		Description:     "2v2 game with goalkeepers. Focus on handling under pressure and quick distribution to teammates.",
	},
	Cooldown: plan.GameBlock{
		DurationMinutes: 5,
		Description:     "Light stretching focusing on shoulders, back, and legs. Review key handling points and discuss session highlights.",
	},
	SafetyNotes: []string{
		"Ensure goals are properly secured",
		"Check for proper glove fit",
		"Clear the goal area of obstacles",
		"Progress diving exercises gradually",
	},
	Diagrams: []plan.Diagram{},
}
