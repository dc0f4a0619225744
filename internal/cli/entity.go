package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/deicod/scaffolder/internal/entity"
	"github.com/deicod/scaffolder/internal/generator"
	"github.com/deicod/scaffolder/internal/suggest"
)

var (
	runGenerator    = generator.Generate
	promptEntities  = surveyEntities
	stdinIsTerminal = func() bool {
		fd := os.Stdin.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
)

const watchDebounce = 200 * time.Millisecond

type entityOptions struct {
	all         bool
	force       bool
	dryRun      bool
	skipInstall bool
	skipClient  bool
	skipServer  bool
	watch       bool
}

func newEntityCmd(root *rootOptions) *cobra.Command {
	opts := &entityOptions{}
	cmd := &cobra.Command{
		Use:   "entity [Name...]",
		Short: "Generate client and server sources for entities",
		Long: "entity loads each named definition from the entities directory, derives its client and server " +
			"metadata, and writes the generated sources. Without names it prompts for a selection.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.watch && opts.dryRun {
				return wrapError("entity: --watch cannot be combined with --dry-run", errors.New("invalid flag combination"), "Remove --dry-run to enable watch mode.", 2)
			}
			if opts.all && len(args) > 0 {
				return wrapError("entity: --all cannot be combined with entity names", errors.New("invalid flag combination"), "Pass either entity names or --all.", 2)
			}
			p, err := loadProject(cmd, root)
			if err != nil {
				return err
			}
			names, err := resolveEntityNames(p, args, opts.all)
			if err != nil {
				return err
			}
			genOpts := generator.Options{
				Force:       opts.force,
				DryRun:      opts.dryRun,
				SkipInstall: opts.skipInstall,
				SkipClient:  opts.skipClient,
				SkipServer:  opts.skipServer,
			}
			if err := generateAll(cmd, p, names, genOpts); err != nil {
				return err
			}
			if opts.watch {
				return runWatch(cmd, p, names, opts.all, genOpts)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.all, "all", false, "Generate every entity in the entities directory")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Rewrite generated files even if content is unchanged")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "List the files that would change without writing them")
	cmd.Flags().BoolVar(&opts.skipInstall, "skip-install", false, "Do not rebuild the client bundle afterwards")
	cmd.Flags().BoolVar(&opts.skipClient, "skip-client", false, "Skip client sources")
	cmd.Flags().BoolVar(&opts.skipServer, "skip-server", false, "Skip server sources")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "Regenerate whenever an entity definition changes")
	return cmd
}

func resolveEntityNames(p *project, args []string, all bool) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	known, err := p.store.Names()
	if err != nil {
		return nil, wrapError(fmt.Sprintf("entity: unable to list %s: %v", p.store.Dir(), err), err, "", 1)
	}
	if !all && !stdinIsTerminal() {
		return nil, wrapError("entity: no entity name given", nil, "Pass one or more entity names, or --all.", 2)
	}
	if len(known) == 0 {
		return nil, wrapError(fmt.Sprintf("entity: no entity definitions found in %s", p.store.Dir()), nil, "Create one with `scaffolder new <Entity>`.", 2)
	}
	if all {
		return known, nil
	}
	selected, err := promptEntities(known)
	if err != nil {
		return nil, wrapError("entity: selection cancelled", err, "", 1)
	}
	if len(selected) == 0 {
		return nil, wrapError("entity: no entity selected", nil, "Select at least one entity or pass --all.", 2)
	}
	return selected, nil
}

func surveyEntities(known []string) ([]string, error) {
	var selected []string
	prompt := &survey.MultiSelect{
		Message: "Which entities should be generated?",
		Options: known,
	}
	if err := survey.AskOne(prompt, &selected, survey.WithValidator(survey.MinItems(1))); err != nil {
		return nil, err
	}
	return selected, nil
}

func generateAll(cmd *cobra.Command, p *project, names []string, opts generator.Options) error {
	for _, name := range names {
		result, err := runGenerator(commandContext(cmd), p.env, name, opts)
		if err != nil {
			return entityError(p, name, err)
		}
		printSummary(cmd.OutOrStdout(), result)
	}
	return nil
}

func entityError(p *project, name string, err error) error {
	switch {
	case errors.Is(err, generator.ErrEntityNotFound):
		known, _ := p.store.Names()
		hint := suggest.Phrase(suggest.Closest(name, known, 3))
		if hint == "" {
			hint = fmt.Sprintf("Create it with `scaffolder new %s`.", name)
		}
		return wrapError(fmt.Sprintf("entity: %v", err), err, hint, 2)
	case errors.Is(err, entity.ErrInvalidDefinition):
		return wrapError(fmt.Sprintf("entity: %v", err), err, "Fix the entity definition and re-run.", 2)
	case errors.Is(err, generator.ErrUnknownBlueprint):
		return wrapError(fmt.Sprintf("entity: %v", err), err, "Register the blueprint or clear the blueprint setting in scaffolder.yaml.", 2)
	}
	return wrapError(fmt.Sprintf("entity: generating %s failed: %v", name, err), err, "Resolve the issue above and re-run `scaffolder entity`.", 1)
}

var summaryColor = color.New(color.FgCyan)

func printSummary(w io.Writer, result generator.Result) {
	marker := "+"
	if result.DryRun {
		marker = "~"
		fmt.Fprintf(w, "entity: dry-run for %s - no files were written\n", result.Entity)
	}
	gens := make([]string, 0, len(result.Files))
	for name := range result.Files {
		gens = append(gens, name)
	}
	slices.Sort(gens)
	for _, name := range gens {
		for _, file := range result.Files[name] {
			fmt.Fprintf(w, "  %s %s\n", marker, file)
		}
	}
	switch {
	case result.FileCount() == 0:
		summaryColor.Fprintf(w, "entity: %s is up to date\n", result.Entity)
	case !result.DryRun:
		summaryColor.Fprintf(w, "entity: wrote %d files for %s\n", result.FileCount(), result.Entity)
	}
}

func runWatch(cmd *cobra.Command, p *project, names []string, all bool, opts generator.Options) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return wrapError(fmt.Sprintf("entity: watch failed: %v", err), err, "Install inotify/fsevents support and retry.", 1)
	}
	defer watcher.Close()

	dir := p.store.Dir()
	if err := watcher.Add(dir); err != nil {
		return wrapError(fmt.Sprintf("entity: unable to watch %s: %v", dir, err), err, "Ensure the entities directory exists before using --watch.", 1)
	}
	p.logger.Info("watching entity definitions", zap.String("dir", dir))

	ctx := commandContext(cmd)
	debounce := time.NewTimer(0)
	if !debounce.Stop() {
		<-debounce.C
	}
	pending := false
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isEntityEvent(event) {
				continue
			}
			pending = true
			if !debounce.Stop() {
				select {
				case <-debounce.C:
				default:
				}
			}
			debounce.Reset(watchDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			p.logger.Warn("watch error", zap.Error(err))
		case <-debounce.C:
			if !pending {
				continue
			}
			pending = false
			targets := names
			if all {
				if targets, err = p.store.Names(); err != nil {
					p.logger.Warn("unable to list entity definitions", zap.Error(err))
					continue
				}
			}
			if err := generateAll(cmd, p, targets, opts); err != nil {
				p.logger.Error("watch run failed", zap.Error(err))
			}
		}
	}
}

func isEntityEvent(event fsnotify.Event) bool {
	if event.Name == "" || !entity.IsDocument(event.Name) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove)
}
