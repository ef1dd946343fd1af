package prompt

import (
	_ "embed"
	"strings"
)

var (
	//go:embed template/intake.txt
	intakeRaw string

	//go:embed template/system.txt
	systemRaw string
)

// PromptSet holds loaded prompt content.
type PromptSet struct {
	Intake string
	System string
}

// LoadPromptSet returns the embedded prompts, trimmed.
func LoadPromptSet() PromptSet {
	return PromptSet{
		Intake: strings.TrimSpace(intakeRaw),
		System: strings.TrimSpace(systemRaw),
	}
}

// RenderIntake substitutes the user query into the intake instruction.
func (p PromptSet) RenderIntake(query string) string {
	return strings.ReplaceAll(p.Intake, "{query}", query)
}
