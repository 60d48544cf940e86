package models

// TrainingCenter is a named site offering programs within one department.
// Counts are per-center totals; github_users and english_b1_b2 are expected
// to stay below total_apprentices but the store does not enforce it.
type TrainingCenter struct {
	ID               int64  `json:"id"`
	CenterName       string `json:"centerName"`
	DepartmentID     int64  `json:"departmentId"`
	TotalApprentices int    `json:"totalApprentices"`
	GithubUsers      int    `json:"githubUsers"`
	EnglishB1B2      int    `json:"englishB1B2"`
}

// Program is a course of study offered at exactly one training center.
// Program names are not globally unique; the same program may appear at
// multiple centers.
type Program struct {
	ID               int64  `json:"id"`
	ProgramName      string `json:"programName"`
	ApprenticesCount int    `json:"apprenticesCount"`
	TrainingCenterID int64  `json:"trainingCenterId"`
}

// Instructor belongs to one training center. Only instructors flagged as
// recommended are ever exposed externally.
type Instructor struct {
	ID               int64  `json:"id"`
	InstructorName   string `json:"instructorName"`
	IsRecommended    bool   `json:"isRecommended"`
	TrainingCenterID int64  `json:"trainingCenterId"`
}
