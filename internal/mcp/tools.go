package mcp

import "github.com/mark3labs/mcp-go/mcp"

// getPortfolioTool defines the get_portfolio MCP tool.
var getPortfolioTool = mcp.NewTool("get_portfolio",
	mcp.WithDescription("Get the current portfolio document and its version."),
)

// updatePortfolioTool defines the update_portfolio MCP tool.
var updatePortfolioTool = mcp.NewTool("update_portfolio",
	mcp.WithDescription("Merge a partial update into the portfolio. Only the fields present in the patch change; lists are replaced wholesale."),
	mcp.WithString("patch",
		mcp.Required(),
		mcp.Description(`JSON object with any of: name, title, bio, email, github, linkedin, twitter, profilePictureUrl, brandKeywords, skills, experiences, projects. Example: {"title":"Staff Engineer"}`),
	),
)

var enhanceBioTool = mcp.NewTool("enhance_bio",
	mcp.WithDescription("Rewrite the profile bio with the configured model and merge the result."),
)

var suggestSkillsTool = mcp.NewTool("suggest_skills",
	mcp.WithDescription("Suggest skills for the profile title and append the new ones to the skill list."),
)

var suggestBrandKeywordsTool = mcp.NewTool("suggest_brand_keywords",
	mcp.WithDescription("Suggest personal brand keywords and replace the current ones."),
)

var generateProjectStoryTool = mcp.NewTool("generate_project_story",
	mcp.WithDescription("Generate a problem, approach, solution and outcome story for a project."),
	mcp.WithString("project_id",
		mcp.Required(),
		mcp.Description("ID of the project"),
	),
)

var enhanceProjectDescriptionTool = mcp.NewTool("enhance_project_description",
	mcp.WithDescription("Rewrite a project description with the configured model."),
	mcp.WithString("project_id",
		mcp.Required(),
		mcp.Description("ID of the project"),
	),
)

// renderPreviewTool defines the render_preview MCP tool.
var renderPreviewTool = mcp.NewTool("render_preview",
	mcp.WithDescription("Render the portfolio as a standalone HTML page."),
	mcp.WithString("theme",
		mcp.Description("Visual theme (default modern)"),
		mcp.Enum("modern", "minimal", "creative"),
	),
	mcp.WithString("mode",
		mcp.Description("Color mode (default light)"),
		mcp.Enum("light", "dark"),
	),
)
