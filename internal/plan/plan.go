// Package plan defines the training-session document contract shared by the
// generator, the HTTP layer and the persistence layer. Both the live model
// path and the mock path must produce documents of this shape.
package plan

// Request is the validated input to a generation call.
type Request struct {
	SessionType     string `json:"sessionType" validate:"required,sessiontype"`
	SessionFocus    string `json:"sessionFocus" validate:"required,min=1"`
	DurationMinutes int    `json:"durationMinutes" validate:"required,min=15,max=90"`
	Participants    int    `json:"participants" validate:"required,min=1,max=30"`
	Level           string `json:"level" validate:"omitempty"`
}

// LevelOrDefault returns the requested level, or "General" when absent.
func (r Request) LevelOrDefault() string {
	if r.Level == "" {
		return "General"
	}
	return r.Level
}

// Warmup opens the session; 10-20% of the total duration by instruction.
type Warmup struct {
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
	Description     string `json:"description"`
}

// Practice is one main drill block.
type Practice struct {
	Name             string    `json:"name"`
	DurationMinutes  int       `json:"duration_minutes"`
	PlayersRequired  int       `json:"players_required"`
	AreaMeters       []float64 `json:"area_meters"`
	SetupDescription string    `json:"setup_description"`
	Steps            []string  `json:"steps"`
	CoachingPoints   []string  `json:"coaching_points"`
	Aims             []string  `json:"aims"`
	DifficultyLevel  int       `json:"difficulty_level"`
	DiagramSVG       string    `json:"diagram_svg"`
}

// GameBlock covers the small-sided game and the cooldown.
type GameBlock struct {
	DurationMinutes int    `json:"duration_minutes"`
	Description     string `json:"description"`
}

// Diagram pairs a practice name with its vector graphic.
type Diagram struct {
	PracticeName string `json:"practice_name"`
	SVG          string `json:"svg"`
}

// Session is the full generated training-session document.
type Session struct {
	Title           string     `json:"title"`
	Level           string     `json:"level"`
	SessionType     string     `json:"session_type"`
	SessionFocus    string     `json:"session_focus"`
	DurationMinutes int        `json:"duration_minutes"`
	Participants    int        `json:"participants"`
	Objectives      []string   `json:"objectives"`
	Equipment       []string   `json:"equipment"`
	Warmup          Warmup     `json:"warmup"`
	Practices       []Practice `json:"practices"`
	SmallSidedGame  GameBlock  `json:"small_sided_game"`
	Cooldown        GameBlock  `json:"cooldown"`
	SafetyNotes     []string   `json:"safety_notes"`
	Diagrams        []Diagram  `json:"diagrams"`
}
