// Package prompts holds the instruction templates the server hands back to
// the host LLM. The server never writes files or generates documents itself;
// these prompts delegate that work to the host.
package prompts

import (
	"fmt"
	"strings"

	"github.com/applicantmesh/iam-mcp-server/internal/domain"
)

const defaultNumJobs = 5

// MarketAnalysisArgs parameterize the analyze_job_market prompt.
type MarketAnalysisArgs struct {
	Role     string
	City     string
	Country  string
	Platform string
	NumJobs  int
}

// AnalyzeJobMarket renders instructions that guide the host LLM through a
// market analysis built on top of the search_jobs tool.
func AnalyzeJobMarket(args MarketAnalysisArgs) string {
	n := clampNumJobs(args.NumJobs)

	var sb strings.Builder
	sb.WriteString("# Job Market Analysis\n\n")
	fmt.Fprintf(&sb, "You are a data-driven assistant. Analyze the job market for the top %d positions matching the role below. Before running any tools, outline your approach in 3-5 bullet points.\n\n", n)
	fmt.Fprintf(&sb, "- **Role:** `%s`\n", args.Role)
	if args.City != "" {
		fmt.Fprintf(&sb, "- **City:** `%s`\n", args.City)
	}
	if args.Country != "" {
		fmt.Fprintf(&sb, "- **Country:** `%s`\n", args.Country)
	}
	if args.Platform != "" {
		fmt.Fprintf(&sb, "- **Platform:** `%s`\n", args.Platform)
	}

	sb.WriteString(`
## Pre-Execution Checklist
1. If a city is given, make sure a country is given as well.
2. Decide which fields to extract (title, company, employment type, description, salary, remote/onsite).

## Execution Steps
1. Run the ` + "`search_jobs`" + ` tool with the role, location and platform above.
2. Extract title, company, employment type, description, salary (if present) and work arrangement from each result.
3. Aggregate: most common titles, most frequent skills and keywords, salary average/median/range, remote vs onsite vs hybrid tally.
4. Draft a markdown report with sections: Approach Overview, Data Summary, Insights & Trends, Recommendations.
`)
	return sb.String()
}

// SaveJobsArgs parameterize the save_jobs prompt.
type SaveJobsArgs struct {
	JobsDir string
	Date    string
	Role    string
	City    string
	Country string
	NumJobs int
}

// SaveJobs renders instructions for persisting search results as JSON. The
// file write itself is delegated to the host's write_file tool.
func SaveJobs(args SaveJobsArgs) string {
	n := args.NumJobs
	if n < 1 {
		n = defaultNumJobs
	}

	filename := saveJobsFilename(args, n)

	return fmt.Sprintf(`# Saving Job Search Results

Save the job search results to a structured JSON file. Follow these instructions precisely:

## File Location and Naming
- **Directory**: %s (create it if it does not exist)
- **Filename**: %s
- **Format**: JSON array of job objects

## Required JSON Structure
Each job object carries: job_id, title, company, city, country, description, apply_link (URL or "Not provided"), saved_date (%s), and a search_criteria object echoing the search (role %q, city %q, country %q, date %q).

## Rules
1. Use null for missing fields, never leave them undefined.
2. Do not modify or truncate listing content.
3. Validate the JSON before saving: no trailing commas, proper escaping, unique job_id values.
4. Confirm afterwards that all %d jobs were saved and the file parses.

Use the write_file tool with the exact directory and filename above.
`, args.JobsDir, filename, args.Date, args.Role, args.City, args.Country, args.Date, n)
}

func saveJobsFilename(args SaveJobsArgs, n int) string {
	parts := []string{args.Date, SanitizeFilename(args.Role)}
	if args.City != "" {
		parts = append(parts, SanitizeFilename(args.City))
	}
	if args.Country != "" {
		parts = append(parts, SanitizeFilename(args.Country))
	}
	parts = append(parts, fmt.Sprint(n))
	return strings.Join(parts, "_") + ".json"
}

// MeshResumesArgs parameterize the mesh_resumes prompt.
type MeshResumesArgs struct {
	SaveDirectory string
	Filename      string
	Date          string
}

// MeshResumes renders instructions for merging several resumes of the same
// person into one unified markdown document.
func MeshResumes(args MeshResumesArgs) string {
	return fmt.Sprintf(`# Creating a Resume Mesh

You have been given multiple resumes (CVs) of the same person. Mesh them into one unified resume:
- Include every section from all input resumes; never drop a section.
- Merge sections with identical titles into a single de-duplicated list.
- Keep sections with different titles for similar content (e.g. Summary vs Professional Summary) as separate sections.
- Group work entries by employer, title and time frame; state employer, title, location and dates once, then combine all related bullet points.
- Preserve dates, locations, company names and specific achievements; fix typos without altering meaning.

## Output
A single valid markdown document optimized for LLM reading. Maintain professional tone; lose no information from the sources.

## Saving
Use the write_file tool to save the document in %s as %s_%s.md (use that exact filename).
`, args.SaveDirectory, args.Filename, args.Date)
}

// DocumentArgs parameterize the resume and cover-letter prompts.
type DocumentArgs struct {
	SaveDirectory  string
	Role           string
	Company        string
	JobDescription string
	Date           string
}

// GenerateResume renders instructions for producing an ATS-optimized resume
// tailored to one job description, sourced solely from the resume mesh.
func GenerateResume(args DocumentArgs) string {
	filename := fmt.Sprintf("%s_%s_%s_resume.md",
		args.Date, SanitizeFilename(args.Company), SanitizeFilename(args.Role))

	return fmt.Sprintf(`# Generating a Resume

Act as a seasoned career consultant and certified resume writer with deep ATS (Applicant Tracking System) expertise. Produce a markdown resume aligned with the %q job description at %q.

You MUST only use information found in the resume mesh resource and the job description below: no outside knowledge, no invented dates, metrics or projects. If required information is missing, stop and ask a clarifying question.

<job_description>
%s
</job_description>

## Instructions
1. List all requirements from the job description verbatim: technical, hard skills, soft skills.
2. For each requirement, locate matching bullets in the resume mesh; copy exact text or very tight abstractions.
3. Assemble a concise markdown resume: the mesh's sections, 3-4 bullets each, under 40 words per bullet, active verbs, exact keywords from the job description.
4. Copy education and certifications exactly from the mesh.
5. Self-check: confirm all content is sourced from the mesh and the keyword match is strong.

## Saving
Use the write_file tool to save the resume in %s as %s (use that exact filename).
`, args.Role, args.Company, args.JobDescription, args.SaveDirectory, filename)
}

// GenerateCoverLetter renders instructions for producing a tailored cover
// letter using the AIDA structure.
func GenerateCoverLetter(args DocumentArgs) string {
	filename := fmt.Sprintf("%s_%s_%s_cover_letter.md",
		args.Date, SanitizeFilename(args.Company), SanitizeFilename(args.Role))

	return fmt.Sprintf(`# Generating a Cover Letter

Act as a seasoned career consultant and certified cover letter writer with ATS expertise. Create a compelling cover letter for the %q position at %q.

Use ONLY these sources:
1. The job description below.
2. The resume markdown file.

<job_description>
%s
</job_description>

## Structure (AIDA)
- **Opening (Attention):** an engaging hook connecting your background to the company, 2-3 sentences.
- **Qualifications (Interest):** 3-4 bullets mapping resume experience to the top requirements, with exact keyword matches.
- **Value Proposition (Desire):** 2-3 sentences connecting specific achievements to the company's goals.
- **Call to Action:** professional closing with an interview invitation and thanks.

No invented information, dates or metrics; embed job description keywords naturally; concise paragraphs with strong action verbs. Output only the final markdown letter.

## Saving
Use the write_file tool to save the letter in %s as %s (use that exact filename).
`, args.Role, args.Company, args.JobDescription, args.SaveDirectory, filename)
}

// SanitizeFilename lowercases text and replaces anything outside
// [a-z0-9-_] with underscores, collapsing repeats.
func SanitizeFilename(text string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}

	parts := strings.FieldsFunc(sb.String(), func(r rune) bool { return r == '_' })
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "_")
}

func clampNumJobs(n int) int {
	if n < 1 {
		return defaultNumJobs
	}
	if n > domain.MaxResults {
		return domain.MaxResults
	}
	return n
}
