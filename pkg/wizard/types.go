// Copyright 2026 Masoner Labs
// SPDX-License-Identifier: MIT

package wizard

// UserProfile describes the person and machine environment the wizard
// generates for. It is assembled by the caller (CLI flags or the profile
// file) and passed by value into every generation call.
type UserProfile struct {
	Name      string `json:"name" yaml:"name"`
	Username  string `json:"username" yaml:"username"`
	Email     string `json:"email" yaml:"email"`
	PhoneCell string `json:"phone_cell" yaml:"phone_cell"`
	PhoneDesk string `json:"phone_desk" yaml:"phone_desk"`
	Address   string `json:"address" yaml:"address"`

	// Storage roots. GitHubPath commonly points inside OneDrivePath; the
	// fabrication templates spell out how generated scripts must handle
	// that collision.
	GoogleDrivePath string `json:"google_drive_path" yaml:"google_drive_path"`
	OneDrivePath    string `json:"onedrive_path" yaml:"onedrive_path"`
	GitHubPath      string `json:"github_path" yaml:"github_path"`

	// Optional remote hosting details, used by ARCHITECT_FABRICATE to add
	// an SSH tab to the generated resume script.
	HostingHostname string `json:"hosting_hostname,omitempty" yaml:"hosting_hostname,omitempty"`
	HostingUsername string `json:"hosting_username,omitempty" yaml:"hosting_username,omitempty"`
	SSHKeyPath      string `json:"ssh_key_path,omitempty" yaml:"ssh_key_path,omitempty"`
}

// StorageLocation selects where a project's files should live.
type StorageLocation string

const (
	LocationOneDrive    StorageLocation = "OneDrive"
	LocationGoogleDrive StorageLocation = "GoogleDrive"
	LocationBoth        StorageLocation = "Both"
)

// ProjectConfig names a target project for README_GEN and PROJECT_SCAFFOLD.
type ProjectConfig struct {
	ProjectName string          `json:"project_name" yaml:"project_name"`
	ProjectSlug string          `json:"project_slug" yaml:"project_slug"`
	Location    StorageLocation `json:"location" yaml:"location"`
	Tools       []string        `json:"tools" yaml:"tools"`
	Description string          `json:"description" yaml:"description"`
}

// DefaultTools is the standard tool catalogue offered when configuring a
// project.
var DefaultTools = []string{
	"Gemini CLI",
	"Claude CLI",
	"Google Cloud SDK",
	"Python Virtual Env",
	"Node.js",
	"Git / GitHub",
	"Docker",
	"Terraform",
}

// GeneratorMode selects which prompt template and system instruction a
// generation call uses.
type GeneratorMode string

const (
	ModeSetupGuide GeneratorMode = "SETUP_GUIDE"
	// ModeProjectScaffold is the legacy simple scaffold mode, kept for the
	// `agw scaffold` command.
	ModeProjectScaffold    GeneratorMode = "PROJECT_SCAFFOLD"
	ModeReadmeGen          GeneratorMode = "README_GEN"
	ModeDriveMapping       GeneratorMode = "DRIVE_MAPPING"
	ModeArchitectInterview GeneratorMode = "ARCHITECT_INTERVIEW"
	ModeArchitectBlueprint GeneratorMode = "ARCHITECT_BLUEPRINT"
	ModeArchitectFabricate GeneratorMode = "ARCHITECT_FABRICATE"
)

// Script is one named file recovered from a generated response.
type Script struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
	Language string `json:"language"`
}

// GeneratedContent is the uniform result of a generation call: the full
// markdown body plus any scripts extracted from it. Scripts is nil when no
// named files were recovered.
type GeneratedContent struct {
	Markdown string   `json:"markdown"`
	Scripts  []Script `json:"scripts,omitempty"`
}

// ArchitectureType is the structural decision recorded in a blueprint.
type ArchitectureType string

const (
	ArchitectureModular ArchitectureType = "MODULAR"
	ArchitectureFlat    ArchitectureType = "FLAT"
)

// ProjectBlueprint is the architecture decision produced by the
// ARCHITECT_BLUEPRINT step. Field names match the JSON contract the
// blueprint prompt demands from the model.
type ProjectBlueprint struct {
	Name             string           `json:"name"`
	ArchitectureType ArchitectureType `json:"architectureType"`
	Description      string           `json:"description"`
	Phases           []string         `json:"phases"`
	TechStack        []string         `json:"techStack"`
	FolderStructure  string           `json:"folderStructure"`
	Rationale        string           `json:"rationale"`
}
