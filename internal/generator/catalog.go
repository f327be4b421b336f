package generator

// Focus selects the template a workout is generated from.
type Focus string

const (
	FocusAerobic   Focus = "aerobic"
	FocusThreshold Focus = "threshold"
	FocusSprint    Focus = "sprint"
	FocusTechnique Focus = "technique"
)

// Valid reports whether f is one of the known focuses.
func (f Focus) Valid() bool {
	switch f {
	case FocusAerobic, FocusThreshold, FocusSprint, FocusTechnique:
		return true
	}
	return false
}

// Profile is the swimmer tier used to scale volume.
type Profile string

const (
	ProfileNovice       Profile = "novice"
	ProfileIntermediate Profile = "intermediate"
	ProfileElite        Profile = "elite"
)

// Factor is the volume multiplier applied to a template's nominal total.
func (p Profile) Factor() (float64, bool) {
	switch p {
	case ProfileNovice:
		return 0.75, true
	case ProfileIntermediate:
		return 1.0, true
	case ProfileElite:
		return 1.25, true
	}
	return 0, false
}

// Section of a generated workout. Sections render in the order of Sections.
type Section string

const (
	SectionWarmup   Section = "warmup"
	SectionPreset   Section = "preset"
	SectionMain     Section = "main"
	SectionCooldown Section = "cooldown"
)

// Sections is the fixed render order.
var Sections = []Section{SectionWarmup, SectionPreset, SectionMain, SectionCooldown}

// BaselinePool is the pool length the catalog distances are written against.
const BaselinePool = 25

// TemplateLine is one block of a focus template. SendOffSeconds of 0 means no send-off.
type TemplateLine struct {
	Section        Section
	BaseReps       int
	Distance       int
	Stroke         string
	SendOffSeconds int
	Intensity      string
	Comment        string
}

var aerobicTemplate = []TemplateLine{
	{Section: SectionWarmup, BaseReps: 1, Distance: 300, Stroke: "FR", Intensity: "easy", Comment: "Smooth, long strokes"},
	{Section: SectionWarmup, BaseReps: 6, Distance: 50, Stroke: "drill", SendOffSeconds: 70, Intensity: "easy"},
	{Section: SectionWarmup, BaseReps: 4, Distance: 75, Stroke: "kick", SendOffSeconds: 105, Intensity: "easy"},
	{Section: SectionPreset, BaseReps: 4, Distance: 100, Stroke: "IM", SendOffSeconds: 110, Intensity: "mod"},
	{Section: SectionMain, BaseReps: 3, Distance: 400, Stroke: "FR", SendOffSeconds: 360, Intensity: "aerobic", Comment: "Negative split each 400"},
	{Section: SectionMain, BaseReps: 6, Distance: 150, Stroke: "pull", SendOffSeconds: 140, Intensity: "aerobic"},
	{Section: SectionCooldown, BaseReps: 1, Distance: 300, Stroke: "choice", Intensity: "easy"},
}

var thresholdTemplate = []TemplateLine{
	{Section: SectionWarmup, BaseReps: 1, Distance: 400, Stroke: "FR", Intensity: "easy", Comment: "Build through each 100"},
	{Section: SectionWarmup, BaseReps: 4, Distance: 50, Stroke: "kick", SendOffSeconds: 70, Intensity: "easy"},
	{Section: SectionPreset, BaseReps: 6, Distance: 50, Stroke: "FR", SendOffSeconds: 50, Intensity: "mod", Comment: "Descend 1-3, 4-6"},
	{Section: SectionPreset, BaseReps: 4, Distance: 25, Stroke: "FR", SendOffSeconds: 30, Intensity: "fast"},
	{Section: SectionMain, BaseReps: 10, Distance: 100, Stroke: "FR", SendOffSeconds: 90, Intensity: "thresh", Comment: "Hold best average pace"},
	{Section: SectionMain, BaseReps: 5, Distance: 200, Stroke: "FR", SendOffSeconds: 180, Intensity: "thresh"},
	{Section: SectionMain, BaseReps: 4, Distance: 50, Stroke: "choice", SendOffSeconds: 60, Intensity: "easy"},
	{Section: SectionCooldown, BaseReps: 1, Distance: 200, Stroke: "choice", Intensity: "easy"},
}

var sprintTemplate = []TemplateLine{
	{Section: SectionWarmup, BaseReps: 1, Distance: 400, Stroke: "FR", Intensity: "easy"},
	{Section: SectionWarmup, BaseReps: 8, Distance: 25, Stroke: "kick", SendOffSeconds: 40, Intensity: "easy"},
	{Section: SectionPreset, BaseReps: 6, Distance: 50, Stroke: "FR", SendOffSeconds: 60, Intensity: "build", Comment: "Build to fast by the wall"},
	{Section: SectionMain, BaseReps: 12, Distance: 25, Stroke: "FR", SendOffSeconds: 60, Intensity: "sprint", Comment: "Max effort, full recovery"},
	{Section: SectionMain, BaseReps: 8, Distance: 50, Stroke: "FR", SendOffSeconds: 90, Intensity: "fast"},
	{Section: SectionMain, BaseReps: 4, Distance: 100, Stroke: "choice", SendOffSeconds: 120, Intensity: "easy"},
	{Section: SectionCooldown, BaseReps: 1, Distance: 300, Stroke: "choice", Intensity: "easy"},
}

var techniqueTemplate = []TemplateLine{
	{Section: SectionWarmup, BaseReps: 1, Distance: 300, Stroke: "choice", Intensity: "easy"},
	{Section: SectionPreset, BaseReps: 8, Distance: 50, Stroke: "drill", SendOffSeconds: 70, Intensity: "easy", Comment: "Catch-up and fingertip drag"},
	{Section: SectionPreset, BaseReps: 6, Distance: 75, Stroke: "FR", SendOffSeconds: 90, Intensity: "mod"},
	{Section: SectionMain, BaseReps: 8, Distance: 100, Stroke: "FR", SendOffSeconds: 105, Intensity: "mod", Comment: "Count strokes, hold distance per stroke"},
	{Section: SectionMain, BaseReps: 6, Distance: 50, Stroke: "drill", SendOffSeconds: 60, Intensity: "easy"},
	{Section: SectionMain, BaseReps: 4, Distance: 100, Stroke: "IM", SendOffSeconds: 115, Intensity: "mod"},
	{Section: SectionCooldown, BaseReps: 1, Distance: 200, Stroke: "choice", Intensity: "easy"},
}

// Template returns a copy of the template for f, or nil for an unknown focus.
func Template(f Focus) []TemplateLine {
	var src []TemplateLine
	switch f {
	case FocusAerobic:
		src = aerobicTemplate
	case FocusThreshold:
		src = thresholdTemplate
	case FocusSprint:
		src = sprintTemplate
	case FocusTechnique:
		src = techniqueTemplate
	default:
		return nil
	}
	return append([]TemplateLine(nil), src...)
}
