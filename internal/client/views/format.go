// Package views turns wire records into the flat records screens render.
// Every function here is pure.
package views

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shiftnotes/shiftnotes-cli/internal/client/models"
)

const (
	UnknownTrainee   = "Unknown Trainee"
	UnknownEvaluator = "Unknown Evaluator"
)

var letterDigit = regexp.MustCompile(`([A-Za-z])(\d)`)

// FormatEPACode puts a space between a letter and the digit that follows it:
// "EPA3" becomes "EPA 3". Already formatted codes are returned unchanged.
func FormatEPACode(code string) string {
	return letterDigit.ReplaceAllString(code, "$1 $2")
}

var entrustmentLabels = map[int]string{
	1: "I had to do it",
	2: "I helped a lot",
	3: "I helped a little",
	4: "I needed to be there but did not help",
	5: "I didn't need to be there at all",
}

// EntrustmentLabel is the short scale wording for a 1..5 level.
func EntrustmentLabel(level int) string {
	if l, ok := entrustmentLabels[level]; ok {
		return l
	}
	return fmt.Sprintf("Level %d", level)
}

func RoleLabel(r models.Role) string {
	switch r {
	case models.RoleTrainee:
		return "Trainee"
	case models.RoleFaculty:
		return "Faculty"
	case models.RoleAdmin:
		return "Admin"
	case models.RoleLeadership:
		return "Leadership"
	case models.RoleSystemAdmin:
		return "System Admin"
	}
	return string(r)
}

func StatusLabel(s models.AssessmentStatus) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

func nameOr(name, fallback string) string {
	if strings.TrimSpace(name) == "" {
		return fallback
	}
	return name
}
