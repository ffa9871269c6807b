package palette

import "strings"

// StageColor is the result of inferring colors from a stage name.
// Secondary is empty for single-color stages.
type StageColor struct {
	Primary   string
	Secondary string
}

type stageRule struct {
	pattern string
	color   StageColor
}

// compoundStages map multi-word names to a two-tone color (stripe belts,
// poom, camo). They are evaluated before singleStages so that
// "white stripe" never collapses to plain white.
var compoundStages = []stageRule{
	{"white stripe", StageColor{"#E5E7EB", "#1A1A1A"}},
	{"yellow stripe", StageColor{"#FDE047", "#1A1A1A"}},
	{"green stripe", StageColor{"#22C55E", "#1A1A1A"}},
	{"blue stripe", StageColor{"#3B82F6", "#1A1A1A"}},
	{"red stripe", StageColor{"#EF4444", "#1A1A1A"}},
	{"poom", StageColor{"#EF4444", "#1A1A1A"}},
	{"camo", StageColor{"#22C55E", "#92400E"}},
	{"tiger", StageColor{"#FB923C", "#1A1A1A"}},
}

// singleStages map color words to a hex value. First match wins.
var singleStages = []stageRule{
	{"white", StageColor{Primary: "#E5E7EB"}},
	{"yellow", StageColor{Primary: "#FDE047"}},
	{"orange", StageColor{Primary: "#FB923C"}},
	{"green", StageColor{Primary: "#22C55E"}},
	{"blue", StageColor{Primary: "#3B82F6"}},
	{"purple", StageColor{Primary: "#8B5CF6"}},
	{"brown", StageColor{Primary: "#92400E"}},
	{"red", StageColor{Primary: "#EF4444"}},
	{"black", StageColor{Primary: "#1A1A1A"}},
	{"bronze", StageColor{Primary: "#CD7F32"}},
	{"silver", StageColor{Primary: "#C0C0C0"}},
	{"gold", StageColor{Primary: "#FFD700"}},
	{"platinum", StageColor{Primary: "#E5E4E2"}},
	{"pink", StageColor{Primary: "#EC4899"}},
	{"teal", StageColor{Primary: "#14B8A6"}},
	{"gray", StageColor{Primary: "#6B7280"}},
	{"grey", StageColor{Primary: "#6B7280"}},
	{"coral", StageColor{Primary: "#F97316"}},
	{"navy", StageColor{Primary: "#1E3A5F"}},
	{"crimson", StageColor{Primary: "#DC2626"}},
	{"emerald", StageColor{Primary: "#059669"}},
	{"ruby", StageColor{Primary: "#E11D48"}},
	{"sapphire", StageColor{Primary: "#2563EB"}},
	{"diamond", StageColor{Primary: "#93C5FD"}},
	{"amber", StageColor{Primary: "#F59E0B"}},
	{"jade", StageColor{Primary: "#059669"}},
	{"ivory", StageColor{Primary: "#FFFFF0"}},
}

// cycle is the fallback palette for stages without a color word.
var cycle = []string{"#3B82F6", "#8B5CF6", "#F59E0B", "#10B981", "#EF4444", "#EC4899"}

// InferStageColor derives colors from a stage name by case-insensitive
// substring match: compound patterns first, then single color words.
func InferStageColor(name string) (StageColor, bool) {
	lower := strings.ToLower(name)
	for _, table := range [][]stageRule{compoundStages, singleStages} {
		for _, rule := range table {
			if strings.Contains(lower, rule.pattern) {
				return rule.color, true
			}
		}
	}
	return StageColor{}, false
}

// CycleColor returns the fallback color for the stage at ordinal i.
func CycleColor(i int) string {
	if i < 0 {
		i = -i
	}
	return cycle[i%len(cycle)]
}
