package prompts

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterAll installs every prompt on the MCP server.
func RegisterAll(server *sdkmcp.Server) {
	server.AddPrompt(&sdkmcp.Prompt{
		Name:        "analyze_job_market",
		Description: "Generate a job market analysis prompt for a role and location",
		Arguments: []*sdkmcp.PromptArgument{
			{Name: "role", Description: "Job role/title to analyze market trends for", Required: true},
			{Name: "city", Description: "Target city for market analysis (requires country)"},
			{Name: "country", Description: "Target country for market analysis"},
			{Name: "platform", Description: "Specific platform to focus the analysis on"},
			{Name: "num_jobs", Description: "Number of job listings to analyze (1-20, default 5)"},
		},
	}, analyzeJobMarket)

	server.AddPrompt(&sdkmcp.Prompt{
		Name:        "save_jobs",
		Description: "Generate instructions for saving job search results to a JSON file",
		Arguments: []*sdkmcp.PromptArgument{
			{Name: "jobs_dir", Description: "Directory to save jobs into", Required: true},
			{Name: "date", Description: "Date of the job search (YYYY-MM-DD)", Required: true},
			{Name: "role", Description: "Role that was searched for", Required: true},
			{Name: "city", Description: "City that was searched in"},
			{Name: "country", Description: "Country that was searched in"},
			{Name: "num_jobs", Description: "Number of jobs to save (default 5)"},
		},
	}, saveJobs)

	server.AddPrompt(&sdkmcp.Prompt{
		Name:        "mesh_resumes",
		Description: "Generate a prompt for merging multiple resumes into one document",
		Arguments: []*sdkmcp.PromptArgument{
			{Name: "save_directory", Description: "Directory to save the resume mesh", Required: true},
			{Name: "resume_mesh_filename", Description: "Base filename for the resume mesh", Required: true},
			{Name: "date", Description: "Date suffix for the filename", Required: true},
		},
	}, meshResumes)

	server.AddPrompt(&sdkmcp.Prompt{
		Name:        "generate_resume",
		Description: "Generate a prompt for producing a tailored, ATS-optimized resume",
		Arguments:   documentArguments("resume"),
	}, generateResume)

	server.AddPrompt(&sdkmcp.Prompt{
		Name:        "generate_cover_letter",
		Description: "Generate a prompt for producing a tailored cover letter",
		Arguments:   documentArguments("cover letter"),
	}, generateCoverLetter)
}

func documentArguments(kind string) []*sdkmcp.PromptArgument {
	return []*sdkmcp.PromptArgument{
		{Name: "save_directory", Description: fmt.Sprintf("Directory to save the %s", kind), Required: true},
		{Name: "role", Description: fmt.Sprintf("The role to generate a %s for", kind), Required: true},
		{Name: "company", Description: fmt.Sprintf("The company to generate a %s for", kind), Required: true},
		{Name: "job_description", Description: "The job description to tailor against", Required: true},
		{Name: "date", Description: "Date prefix for the filename (YYYY-MM-DD)", Required: true},
	}
}

func analyzeJobMarket(_ context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
	args := req.Params.Arguments

	role := strings.TrimSpace(args["role"])
	if role == "" {
		return nil, fmt.Errorf("analyze_job_market: role is required")
	}

	text := AnalyzeJobMarket(MarketAnalysisArgs{
		Role:     role,
		City:     args["city"],
		Country:  args["country"],
		Platform: args["platform"],
		NumJobs:  parseNumJobs(args["num_jobs"]),
	})

	return promptResult("Job market analysis instructions", text), nil
}

func saveJobs(_ context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
	args := req.Params.Arguments

	for _, required := range []string{"jobs_dir", "date", "role"} {
		if strings.TrimSpace(args[required]) == "" {
			return nil, fmt.Errorf("save_jobs: %s is required", required)
		}
	}

	text := SaveJobs(SaveJobsArgs{
		JobsDir: args["jobs_dir"],
		Date:    args["date"],
		Role:    args["role"],
		City:    args["city"],
		Country: args["country"],
		NumJobs: parseNumJobs(args["num_jobs"]),
	})

	return promptResult("Job saving instructions", text), nil
}

func meshResumes(_ context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
	args := req.Params.Arguments

	for _, required := range []string{"save_directory", "resume_mesh_filename", "date"} {
		if strings.TrimSpace(args[required]) == "" {
			return nil, fmt.Errorf("mesh_resumes: %s is required", required)
		}
	}

	text := MeshResumes(MeshResumesArgs{
		SaveDirectory: args["save_directory"],
		Filename:      args["resume_mesh_filename"],
		Date:          args["date"],
	})

	return promptResult("Resume mesh instructions", text), nil
}

func generateResume(_ context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
	args, err := documentArgs("generate_resume", req)
	if err != nil {
		return nil, err
	}
	return promptResult("Resume generation instructions", GenerateResume(args)), nil
}

func generateCoverLetter(_ context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
	args, err := documentArgs("generate_cover_letter", req)
	if err != nil {
		return nil, err
	}
	return promptResult("Cover letter generation instructions", GenerateCoverLetter(args)), nil
}

func documentArgs(prompt string, req *sdkmcp.GetPromptRequest) (DocumentArgs, error) {
	args := req.Params.Arguments

	for _, required := range []string{"save_directory", "role", "company", "job_description", "date"} {
		if strings.TrimSpace(args[required]) == "" {
			return DocumentArgs{}, fmt.Errorf("%s: %s is required", prompt, required)
		}
	}

	return DocumentArgs{
		SaveDirectory:  args["save_directory"],
		Role:           args["role"],
		Company:        args["company"],
		JobDescription: args["job_description"],
		Date:           args["date"],
	}, nil
}

func parseNumJobs(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return defaultNumJobs
	}
	return n
}

func promptResult(description, text string) *sdkmcp.GetPromptResult {
	return &sdkmcp.GetPromptResult{
		Description: description,
		Messages: []*sdkmcp.PromptMessage{
			{
				Role:    "user",
				Content: &sdkmcp.TextContent{Text: text},
			},
		},
	}
}
