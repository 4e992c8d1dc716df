// Copyright 2026 Masoner Labs
// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/masonerlabs/antigravity/internal/errors"
	"github.com/masonerlabs/antigravity/internal/ui"
	"github.com/masonerlabs/antigravity/pkg/llm"
	"github.com/masonerlabs/antigravity/pkg/wizard"
)

// runArchitect executes the 'architect' CLI command: an interactive
// conversation that turns a raw project idea into a requirements
// interview, an architecture blueprint, and finally a set of fabricated
// project files.
//
// Flags:
//   - --questions: Maximum interview questions before the blueprint (default: 5)
//   - --out: Directory for fabricated files and the transcript (default: ./<slug>)
//   - --yes: Skip the blueprint confirmation prompt
//
// Examples:
//
//	agw architect "a CLI that syncs city data to a dashboard"
//	agw architect --questions 3 --out ./citysync "city sync tool"
func runArchitect(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("architect", flag.ExitOnError)
	maxQuestions := fs.Int("questions", 5, "Maximum interview questions before the blueprint")
	outDir := fs.String("out", "", "Output directory (default: ./<project-slug>)")
	autoYes := fs.Bool("yes", false, "Skip the blueprint confirmation prompt")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: agw architect [options] "<project idea>"

Runs the project architect conversation:
  1. INTERVIEW    The model asks clarifying questions, one at a time.
  2. BLUEPRINT    The transcript is distilled into an architecture plan.
  3. FABRICATION  The plan becomes CONTEXT.md plus init and resume scripts.

During the interview, answer normally or type:
  /blueprint   Stop the interview and generate the blueprint now
  /restart     Throw the conversation away and start over
  /quit        Abandon the session

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	gen, cfg, model := loadGenerator(globals)
	reader := bufio.NewReader(os.Stdin)

	idea := strings.Join(fs.Args(), " ")
	if strings.TrimSpace(idea) == "" {
		fmt.Print("Describe your project idea: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot read idea: %v\n", err)
			os.Exit(1)
		}
		idea = strings.TrimSpace(line)
	}

	session := wizard.NewSession()
	if err := session.SubmitIdea(idea); err != nil {
		errors.FatalError(err, globals.JSON)
	}

	arch := architectRun{
		gen:      gen,
		profile:  cfg.Profile,
		model:    model,
		session:  session,
		progress: NewProgressConfig(globals),
	}

	// Interview loop. Each round is one model question and one user
	// answer; the user can cut it short with /blueprint.
	ui.Header("Project Architect")
	for asked := 0; asked < *maxQuestions; asked++ {
		question, err := arch.ask(wizard.ModeArchitectInterview, "Thinking...")
		if err != nil {
			errors.FatalError(err, globals.JSON)
		}
		if err := session.RecordQuestion(question); err != nil {
			errors.FatalError(err, globals.JSON)
		}

		fmt.Println()
		fmt.Printf("%s %s\n", ui.Label("Architect:"), question)
		fmt.Print("> ")

		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot read answer: %v\n", err)
			os.Exit(1)
		}
		answer := strings.TrimSpace(line)

		switch answer {
		case "/quit":
			ui.Info("Session abandoned")
			return
		case "/restart":
			session.Reset()
			if err := session.SubmitIdea(idea); err != nil {
				errors.FatalError(err, globals.JSON)
			}
			asked = -1
			continue
		case "/blueprint":
			asked = *maxQuestions
			continue
		}
		if answer == "" {
			answer = "No preference, use your best judgment."
		}
		if err := session.RecordAnswer(answer); err != nil {
			errors.FatalError(err, globals.JSON)
		}
	}

	// Blueprint. A parse failure keeps the session on INTERVIEW; retry a
	// couple of times before giving up.
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		raw, err := arch.ask(wizard.ModeArchitectBlueprint, "Drafting blueprint...")
		if err != nil {
			errors.FatalError(err, globals.JSON)
		}
		if lastErr = session.CommitBlueprint(raw); lastErr == nil {
			break
		}
		ui.Warningf("Blueprint attempt %d failed: %v", attempt+1, lastErr)
	}
	if lastErr != nil {
		errors.FatalError(lastErr, globals.JSON)
	}

	bp := session.State().Blueprint
	printBlueprint(bp)

	if !*autoYes {
		fmt.Print("Fabricate this project? [y/N] ")
		line, _ := reader.ReadString('\n')
		if answer := strings.ToLower(strings.TrimSpace(line)); answer != "y" && answer != "yes" {
			ui.Info("Stopped after blueprint. Nothing was written.")
			return
		}
	}

	if err := session.BeginFabrication(); err != nil {
		errors.FatalError(err, globals.JSON)
	}

	markdown, err := arch.ask(wizard.ModeArchitectFabricate, "Fabricating project files...")
	if err != nil {
		errors.FatalError(err, globals.JSON)
	}

	scripts := wizard.ExtractScripts(markdown, wizard.ExtractOptions{
		Heuristic: gen.Heuristic,
		SlugHint:  bp.Slug(),
	})

	dir := *outDir
	if dir == "" {
		dir = "./" + bp.Slug()
	}
	if err := saveScripts(dir, scripts); err != nil {
		errors.FatalError(errors.NewInternalError(
			"Failed to save fabricated files", err.Error(), "Check permissions on the output directory", err,
		), globals.JSON)
	}
	if err := saveTranscript(dir, session.State()); err != nil {
		errors.FatalError(errors.NewInternalError(
			"Failed to save transcript", err.Error(), "Check permissions on the output directory", err,
		), globals.JSON)
	}

	fmt.Println()
	ui.Successf("Project %s fabricated into %s", bp.Name, dir)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Printf("  1. Review %s/CONTEXT.md\n", dir)
	fmt.Printf("  2. Run init_%s.ps1 to create the project\n", bp.Slug())
	fmt.Printf("  3. Use resume_%s.ps1 for every later session\n", bp.Slug())
}

// architectRun bundles what each model call in the conversation needs.
type architectRun struct {
	gen      *wizard.Generator
	profile  wizard.UserProfile
	model    llm.ModelID
	session  *wizard.Session
	progress ProgressConfig
}

// ask runs one generation call against the current session state.
func (a *architectRun) ask(mode wizard.GeneratorMode, spin string) (string, error) {
	state := a.session.State()
	var content *wizard.GeneratedContent
	var err error
	withSpinner(a.progress, spin, func() {
		content, err = a.gen.Generate(context.Background(), wizard.Request{
			Mode:    mode,
			Model:   a.model,
			Profile: a.profile,
			State:   &state,
		})
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(content.Markdown), nil
}

func printBlueprint(bp *wizard.ProjectBlueprint) {
	fmt.Println()
	ui.Header("Blueprint: " + bp.Name)
	fmt.Printf("%s %s\n", ui.Label("Architecture:"), bp.ArchitectureType)
	fmt.Printf("%s %s\n", ui.Label("Description:"), bp.Description)
	if len(bp.TechStack) > 0 {
		fmt.Printf("%s %s\n", ui.Label("Tech stack:"), strings.Join(bp.TechStack, ", "))
	}
	if len(bp.Phases) > 0 {
		ui.SubHeader("Phases:")
		for i, p := range bp.Phases {
			fmt.Printf("  %d. %s\n", i+1, p)
		}
	}
	if bp.FolderStructure != "" {
		ui.SubHeader("Folders:")
		fmt.Println(bp.FolderStructure)
	}
	if bp.Rationale != "" {
		fmt.Printf("%s %s\n", ui.Label("Rationale:"), bp.Rationale)
	}
	fmt.Println()
}
