package analysis

import (
	"fmt"
	"strings"
)

// Each stage embeds a JSON shape description directly in its prompt. The
// service has no guaranteed structured response mode, so the shape is
// spelled out and the parser tolerates code-fence wrappers.

const resumeFormatInstructions = `Respond with a JSON object matching exactly this structure:
{
  "skills": ["list of skills extracted from the resume"],
  "experience": [{"title": "...", "company": "...", "dates": "...", "description": "..."}],
  "education": [{"degree": "...", "institution": "...", "dates": "..."}],
  "summary": "brief summary of the candidate's profile"
}
Return ONLY the JSON object, no additional text.`

const jobFormatInstructions = `Respond with a JSON object matching exactly this structure:
{
  "required_skills": ["skills required for the job"],
  "preferred_skills": ["skills that are preferred but not required"],
  "responsibilities": ["key job responsibilities"],
  "company_values": ["company values extracted from the description"],
  "keywords": ["important keywords from the job description"]
}
Return ONLY the JSON object, no additional text.`

const customizationFormatInstructions = `Respond with a JSON object matching exactly this structure:
{
  "highlighted_skills": ["skills to highlight based on job match"],
  "experience_emphasize": {"category name": ["aspects of experience to emphasize"]},
  "suggested_additions": ["suggested additions to the resume"],
  "suggested_removals": ["content that could be removed or de-emphasized"]
}
Return ONLY the JSON object, no additional text.`

const matchFormatInstructions = `Respond with a JSON object matching exactly this structure:
{
  "match_score": <integer 0-100 representing overall match>,
  "matching_skills": ["skills that match job requirements"],
  "missing_skills": ["required skills missing from the resume"],
  "experience_alignment": "description of how experience aligns with the job",
  "recommendations": ["specific recommendations to improve the match"],
  "strengths": ["candidate's strengths for this position"],
  "weaknesses": ["areas where the candidate may fall short"]
}
Return ONLY the JSON object, no additional text.`

func buildResumePrompt(resumeText string) string {
	var sb strings.Builder
	sb.WriteString("Analyze the following resume and extract key information:\n\n")
	sb.WriteString(resumeText)
	sb.WriteString("\n\n")
	sb.WriteString(resumeFormatInstructions)
	return sb.String()
}

func buildJobPrompt(jobText string) string {
	var sb strings.Builder
	sb.WriteString("Analyze the following job description and extract key information:\n\n")
	sb.WriteString(jobText)
	sb.WriteString("\n\n")
	sb.WriteString(jobFormatInstructions)
	return sb.String()
}

func buildCustomizationPrompt(resumeJSON, jobJSON string) string {
	var sb strings.Builder
	sb.WriteString("Given a resume analysis and job description analysis, suggest ways to customize the resume:\n\n")
	sb.WriteString("Resume Analysis:\n")
	sb.WriteString(resumeJSON)
	sb.WriteString("\n\nJob Analysis:\n")
	sb.WriteString(jobJSON)
	sb.WriteString("\n\n")
	sb.WriteString(customizationFormatInstructions)
	return sb.String()
}

func buildMatchPrompt(resumeJSON, jobJSON string) string {
	var sb strings.Builder
	sb.WriteString("Analyze how well the resume matches the job description and provide a detailed assessment:\n\n")
	sb.WriteString("Resume Analysis:\n")
	sb.WriteString(resumeJSON)
	sb.WriteString("\n\nJob Description Analysis:\n")
	sb.WriteString(jobJSON)
	sb.WriteString("\n\n")
	sb.WriteString("Provide a detailed assessment of how well the candidate's profile matches this job opportunity.\n")
	sb.WriteString("Be objective and analytical, assessing both strengths and weaknesses.\n")
	sb.WriteString("Consider skills match, experience alignment, and overall fit.\n\n")
	sb.WriteString(matchFormatInstructions)
	return sb.String()
}

func buildCoverLetterPrompt(resumeJSON, jobJSON, candidateName, companyName string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("You are a professional cover letter writer. Create a compelling cover letter for %s applying to %s.\n", candidateName, companyName))
	sb.WriteString("The cover letter should be professional, engaging, and tailored to the specific job.\n\n")
	sb.WriteString("Resume Information:\n")
	sb.WriteString(resumeJSON)
	sb.WriteString("\n\nJob Information:\n")
	sb.WriteString(jobJSON)
	sb.WriteString("\n\nImportant guidelines:\n")
	sb.WriteString("1. Keep the length to one page (approximately 400 words)\n")
	sb.WriteString("2. Address how the candidate's experience aligns with job requirements\n")
	sb.WriteString("3. Highlight relevant skills and achievements\n")
	sb.WriteString("4. Demonstrate understanding of the company values\n")
	sb.WriteString("5. Include a strong opening and closing\n")
	sb.WriteString("6. Use a professional, confident tone\n")
	sb.WriteString("7. Format as a formal business letter\n\n")
	sb.WriteString("Create the full cover letter text now:\n")
	return sb.String()
}

func buildRewritePrompt(resumeText, customizationJSON string) string {
	var sb strings.Builder
	sb.WriteString("You are a professional resume writer. Create a customized version of the following resume based on the customization suggestions.\n")
	sb.WriteString("Keep the same general format, but implement the suggested changes to better target the specific job opportunity.\n\n")
	sb.WriteString("Original Resume:\n")
	sb.WriteString(resumeText)
	sb.WriteString("\n\nCustomization Suggestions:\n")
	sb.WriteString(customizationJSON)
	sb.WriteString("\n\nImportant guidelines:\n")
	sb.WriteString("1. Highlight the skills that match the job requirements\n")
	sb.WriteString("2. Emphasize relevant experience aspects\n")
	sb.WriteString("3. Add suggested content where appropriate\n")
	sb.WriteString("4. Remove or de-emphasize less relevant content\n")
	sb.WriteString("5. Keep professional formatting\n")
	sb.WriteString("6. Maintain approximately the same length as the original\n\n")
	sb.WriteString("Create the full customized resume now:\n")
	return sb.String()
}
