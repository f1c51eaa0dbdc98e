package models

type EPACategory struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Program     string `json:"program"`
	ProgramName string `json:"program_name,omitempty"`
	EPAsCount   int    `json:"epas_count,omitempty"`
}

type EPA struct {
	ID            string `json:"id"`
	Code          string `json:"code"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	IsActive      bool   `json:"is_active"`
	Program       string `json:"program"`
	ProgramName   string `json:"program_name,omitempty"`
	Category      string `json:"category,omitempty"`
	CategoryTitle string `json:"category_title,omitempty"`
}

type CoreCompetency struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Title       string `json:"title"`
	Program     string `json:"program"`
	ProgramName string `json:"program_name,omitempty"`
}

// EPARef is the compact EPA reference embedded in a sub-competency.
type EPARef struct {
	ID    string `json:"id"`
	Code  string `json:"code"`
	Title string `json:"title"`
}

type SubCompetency struct {
	ID                  string   `json:"id"`
	Code                string   `json:"code"`
	Title               string   `json:"title"`
	Program             string   `json:"program"`
	ProgramName         string   `json:"program_name,omitempty"`
	CoreCompetency      string   `json:"core_competency"`
	CoreCompetencyTitle string   `json:"core_competency_title,omitempty"`
	EPAs                []EPARef `json:"epas,omitempty"`
	MilestoneLevel1     string   `json:"milestone_level_1"`
	MilestoneLevel2     string   `json:"milestone_level_2"`
	MilestoneLevel3     string   `json:"milestone_level_3"`
	MilestoneLevel4     string   `json:"milestone_level_4"`
	MilestoneLevel5     string   `json:"milestone_level_5"`
}

// SubCompetencyEPA links a sub-competency to an EPA.
type SubCompetencyEPA struct {
	ID                 string `json:"id"`
	SubCompetency      string `json:"sub_competency"`
	SubCompetencyCode  string `json:"sub_competency_code,omitempty"`
	SubCompetencyTitle string `json:"sub_competency_title,omitempty"`
	EPA                string `json:"epa"`
	EPACode            string `json:"epa_code,omitempty"`
	EPATitle           string `json:"epa_title,omitempty"`
	ProgramName        string `json:"program_name,omitempty"`
}
