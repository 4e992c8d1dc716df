// Copyright 2026 Masoner Labs
// SPDX-License-Identifier: MIT

package wizard

import (
	"fmt"
	"strings"

	"github.com/masonerlabs/antigravity/internal/errors"
)

// BuildPrompt constructs the user-message text for a generation call by
// interpolating profile, project, and conversation fields into the mode's
// template.
//
// Modes that need the optional arguments fail loudly when they are absent:
// README_GEN and PROJECT_SCAFFOLD require project, the architect modes
// require state, and ARCHITECT_FABRICATE additionally requires a committed
// blueprint. An empty prompt is never returned silently.
func BuildPrompt(mode GeneratorMode, profile UserProfile, project *ProjectConfig, state *ArchitectState) (string, error) {
	switch mode {
	case ModeDriveMapping:
		return driveMappingPrompt(profile), nil
	case ModeSetupGuide:
		return setupGuidePrompt(profile), nil
	case ModeReadmeGen:
		if project == nil {
			return "", missingArg(mode, "project configuration")
		}
		return readmePrompt(profile, *project), nil
	case ModeProjectScaffold:
		if project == nil {
			return "", missingArg(mode, "project configuration")
		}
		return scaffoldPrompt(profile, *project), nil
	case ModeArchitectInterview:
		if state == nil {
			return "", missingArg(mode, "conversation state")
		}
		return interviewPrompt(*state), nil
	case ModeArchitectBlueprint:
		if state == nil {
			return "", missingArg(mode, "conversation state")
		}
		return blueprintPrompt(*state), nil
	case ModeArchitectFabricate:
		if state == nil {
			return "", missingArg(mode, "conversation state")
		}
		if state.Blueprint == nil {
			return "", missingArg(mode, "committed blueprint")
		}
		return fabricatePrompt(profile, *state.Blueprint), nil
	default:
		return "", errors.NewInputError(
			"Unknown generator mode",
			fmt.Sprintf("No prompt template exists for mode %q", mode),
			"Use one of the agw subcommands to pick a supported mode",
		)
	}
}

func missingArg(mode GeneratorMode, what string) error {
	return errors.NewInputError(
		fmt.Sprintf("Mode %s requires a %s", mode, what),
		fmt.Sprintf("The %s argument was nil", what),
		"This is a caller bug; supply the argument before generating",
	)
}

func driveMappingPrompt(profile UserProfile) string {
	return fmt.Sprintf(`%s needs to map Google Drive on a Windows computer.
Currently, it is not mapped.

Please provide a step-by-step guide to:
1. Downloading and Installing "Google Drive for Desktop".
2. Logging in with %s.
3. Configuring it to mount as a local drive letter (usually G:).
4. Ensuring files are set to 'Stream files'.`, profile.Name, profile.Username)
}

func setupGuidePrompt(profile UserProfile) string {
	return fmt.Sprintf(`Create a master setup guide for the "AntiGravity" development environment.
User: %s
Paths:
- OneDrive: %s
- Google Drive: %s
- GitHub Local: %s

Goal:
1. Create a "MyProjects" folder in all three locations.
2. Explain how to set up Gemini CLI and Claude CLI globally.
3. Explain how to manage API keys safely.
4. Include a specific section on "Bootstrapping this Tool":
   - Instructions for initializing the git repo for "AntiGravity Setup Wizard" at %s\AntiGravity-Setup-Wizard.
   - Instructions must include running 'gh auth setup-git' to avoid permission errors.
   - How to use 'gh repo create' to push it to GitHub.

BONUS:
At the end, provide a single copy-pasteable PowerShell block.
FIRST LINE: # FILENAME: bootstrap_antigravity.ps1
The script must:
1. Checks if the AntiGravity directory exists.
2. Initializes git.
3. Creates a .gitignore (node_modules, .env).
4. Runs 'gh auth setup-git'.
5. Creates the repo and pushes.`,
		profile.Name, profile.OneDrivePath, profile.GoogleDrivePath, profile.GitHubPath, profile.GitHubPath)
}

func readmePrompt(profile UserProfile, project ProjectConfig) string {
	return fmt.Sprintf(`Create a professional README.md for project "%s".
Description: %s
Tools: %s

Header Info:
Project: %s
Lead Developer: %s
Contact: %s | %s
Office: %s | %s`,
		project.ProjectName, project.Description, strings.Join(project.Tools, ", "),
		project.ProjectName, profile.Name,
		profile.Email, profile.PhoneCell,
		profile.PhoneDesk, profile.Address)
}

func scaffoldPrompt(profile UserProfile, project ProjectConfig) string {
	slug := project.ProjectSlug
	if slug == "" {
		slug = Slugify(project.ProjectName)
	}
	return fmt.Sprintf(`Generate a PowerShell script that scaffolds the project "%s".
Directory name: %s
Target location: %s
Storage roots:
- OneDrive: %s
- Google Drive: %s
- GitHub Local: %s

The script must create the project directory, initialize git, and write a
default .gitignore and README.md stub.
FIRST LINE of the code block: # FILENAME: scaffold_%s.ps1`,
		project.ProjectName, slug, project.Location,
		profile.OneDrivePath, profile.GoogleDrivePath, profile.GitHubPath, slug)
}

func interviewPrompt(state ArchitectState) string {
	return fmt.Sprintf(`Current Conversation History:
%s

User's Latest Idea/Input: "%s" (or see history)

Task:
Review the conversation.
If this is the start, ask clarifying questions about Scale, Architecture, and Tech.
If the user has answered, analyze their answers.
- Did they miss anything critical?
- Do you need to clarify "Modular" vs "Flat"?
- Ask 1-2 follow-up questions to build a complete picture.

Keep it professional but conversational. Do not output JSON yet.`,
		state.Transcript(), state.RawIdea)
}

func blueprintPrompt(state ArchitectState) string {
	return fmt.Sprintf(`Full Project Discussion:
%s

Based on this deep dive, create a Project Blueprint.
Output ONLY valid JSON matching this structure:
{
  "name": "ProjectName (CamelCase)",
  "architectureType": "MODULAR" or "FLAT",
  "description": "Refined technical description",
  "phases": ["Phase 1: ...", "Phase 2: ..."],
  "techStack": ["Tool 1", "Tool 2"],
  "folderStructure": "Text based tree diagram",
  "rationale": "Why you chose this architecture"
}`, state.Transcript())
}

func fabricatePrompt(profile UserProfile, bp ProjectBlueprint) string {
	hostingInfo := "No external hosting configured."
	if profile.HostingHostname != "" {
		hostingInfo = fmt.Sprintf("Hosting Host: %s, User: %s, Key: %s",
			profile.HostingHostname, profile.HostingUsername, profile.SSHKeyPath)
	}
	slug := bp.Slug()

	return fmt.Sprintf(`PROJECT BLUEPRINT:
Name: %s
Type: %s
Stack: %s
Phases: %s
Structure:
%s

USER PROFILE:
Name: %s
Email: %s
Phone: %s
OneDrive: %s
GoogleDrive: %s
GitHub Repo Root: %s

HOSTING CONFIG:
%s

TASK:
Generate 3 distinct files. Use markdown code blocks.
IMPORTANT: You MUST start the content of each code block with a comment line identifying the filename.

CRITICAL PATH LOGIC:
- The user may have 'OneDrive\MyProjects' and 'GitHub Repo Root' pointed to the same folder.
- In your generated PowerShell script, verify paths before creating them. If they are the same, treat the OneDrive folder as the Master Git Repo.
- If they are different, assume the user wants a Git Repo in one place and a synced backup in OneDrive.

FILE 1: CONTEXT.md
- Start with: <!-- FILENAME: CONTEXT.md -->
- This file acts as the "Long Term Memory" for AI agents.
- Include project goals, architecture, tech stack, phases, and user contact info.
- Include a "Master Prompt" section that tells an AI agent how to start working on Phase 1.
- Use clear Markdown headers.

FILE 2: init_%s.ps1 (The Ignition Script)
- Start with: # FILENAME: init_%s.ps1
- This script will CREATE the CONTEXT.md file on disk.
- CRITICAL SYNTAX RULE: When writing the content of CONTEXT.md to a variable using a PowerShell Here-String (@' ... '@), the closing '@ must be on its OWN LINE with NO INDENTATION.
- Create the project directories. Handle the path logic described above.
- Initialize git ('git init'), create a .gitignore and a .env.example.
- Create a README.md (use the user's contact details).
- ENTERPRISE GIT: Run 'gh auth setup-git'. If the 'gh' CLI is installed, run 'gh repo create %s --public --source=. --remote=origin' and 'git push -u origin main'.
- Output "Ignition Complete" at the end.

FILE 3: resume_%s.ps1 (The Orbit Script)
- Start with: # FILENAME: resume_%s.ps1
- This script is for daily use.
- 1. Check if project paths exist.
- 2. Navigate to the project root and run 'git fetch' (silently).
- 3. Launch Windows Terminal (wt.exe) with tabs for 'Mission Control' (PowerShell), 'AI Agents' (Claude/Gemini), and 'Code'.
- 4. If Hosting info is provided, add another tab that attempts SSH: ssh -i %s %s@%s
- 5. Read the content of CONTEXT.md and copy it to the clipboard (Set-Clipboard).
- 6. Print "Project Resumed. CONTEXT.md copied to clipboard."`,
		bp.Name, bp.ArchitectureType, strings.Join(bp.TechStack, ", "), strings.Join(bp.Phases, "; "), bp.FolderStructure,
		profile.Name, profile.Email, profile.PhoneCell,
		profile.OneDrivePath, profile.GoogleDrivePath, profile.GitHubPath,
		hostingInfo,
		slug, slug, bp.Name, slug, slug,
		profile.SSHKeyPath, profile.HostingUsername, profile.HostingHostname)
}
