package models

// Projection rows returned by the metric queries. Orderings are part of the
// repository contract; see pkg/repositories.

// CenterMetricRow is one center with its department and counters,
// ordered by total_apprentices descending.
type CenterMetricRow struct {
	CenterName       string
	Department       string
	TotalApprentices int
	GithubUsers      int
	EnglishB1B2      int
	CenterID         int64
}

// DepartmentMetricRow is one department with the apprentice sum over its
// centers, ordered by the sum descending.
type DepartmentMetricRow struct {
	Department       string
	ApprenticesCount int64
}

// ProgramMetricRow is one program with its center, ordered by
// apprentices_count descending.
type ProgramMetricRow struct {
	CenterName       string
	ProgramName      string
	ApprenticesCount int
}

// GitHubUserRow is one center's version-control-platform user count,
// ordered by github_users descending.
type GitHubUserRow struct {
	CenterName       string
	Department       string
	GithubUsers      int
	TotalApprentices int
}

// EnglishLevelRow is one center's English B1/B2 count, ordered by
// english_b1_b2 descending.
type EnglishLevelRow struct {
	CenterName       string
	Department       string
	EnglishB1B2      int
	TotalApprentices int
}

// ApprenticeCountRow is one center's apprentice total, ordered by
// total_apprentices descending.
type ApprenticeCountRow struct {
	CenterName       string
	Department       string
	TotalApprentices int
}

// CenterRefRow identifies a center for the per-center instructor lookup,
// ordered by center_name ascending.
type CenterRefRow struct {
	CenterName string
	Department string
	CenterID   int64
}

// Response records produced by the metrics aggregator. Field names are the
// wire contract; githubUsers/githubPercentage are historical names for
// VCS-platform users.

// ScalarMetric is a single dataset-wide figure. Value is heterogeneous:
// an integer for counts, a formatted percentage string otherwise.
type ScalarMetric struct {
	Description string `json:"description"`
	Value       any    `json:"value"`
}

// CenterMetric is the /by-center response element.
type CenterMetric struct {
	CenterName             string   `json:"centerName"`
	Department             string   `json:"department"`
	TotalApprentices       int      `json:"totalApprentices"`
	InstructorsRecommended []string `json:"instructorsRecommended"`
	GithubUsers            int      `json:"githubUsers"`
	EnglishB1B2            int      `json:"englishB1B2"`
}

// ProgramMetric is the /by-program response element.
type ProgramMetric struct {
	CenterName       string `json:"centerName"`
	ProgramName      string `json:"programName"`
	ApprenticesCount int    `json:"apprenticesCount"`
}

// DepartmentMetric is the /by-department response element.
type DepartmentMetric struct {
	Department       string `json:"department"`
	ApprenticesCount int    `json:"apprenticesCount"`
}

// GitHubUserMetric is the /github-users response element.
type GitHubUserMetric struct {
	CenterName       string `json:"centerName"`
	Department       string `json:"department"`
	GithubUsers      int    `json:"githubUsers"`
	GithubPercentage string `json:"githubPercentage"`
}

// EnglishLevelMetric is the /english-level response element.
type EnglishLevelMetric struct {
	CenterName        string `json:"centerName"`
	Department        string `json:"department"`
	EnglishB1B2       int    `json:"englishB1B2"`
	EnglishPercentage string `json:"englishPercentage"`
}

// ApprenticeCountMetric is the /apprentice-count response element.
type ApprenticeCountMetric struct {
	CenterName       string `json:"centerName"`
	Department       string `json:"department"`
	TotalApprentices int    `json:"totalApprentices"`
}

// RecommendedInstructorMetric is the /recommended-instructors response element.
type RecommendedInstructorMetric struct {
	CenterName             string   `json:"centerName"`
	Department             string   `json:"department"`
	InstructorsRecommended []string `json:"instructorsRecommended"`
	InstructorsCount       int      `json:"instructorsCount"`
}
