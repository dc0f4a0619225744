package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/deicod/scaffolder/internal/entity"
	"github.com/deicod/scaffolder/internal/naming"
)

var (
	now               = time.Now
	entityNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)
)

func newNewCmd(root *rootOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "new <Entity>",
		Short: "Create an empty entity definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := naming.UpperFirst(strings.TrimSpace(args[0]))
			if !entityNamePattern.MatchString(name) {
				return wrapError(fmt.Sprintf("new: invalid entity name %q", args[0]), nil, "Use letters and digits only, e.g. `scaffolder new OrderItem`.", 2)
			}
			p, err := loadProject(cmd, root)
			if err != nil {
				return err
			}
			if _, err := p.store.Load(name); err == nil {
				return wrapError(fmt.Sprintf("new: entity %s already exists", name), nil, "Edit the existing definition or choose a different name.", 2)
			} else if !errors.Is(err, entity.ErrNotFound) {
				return wrapError(fmt.Sprintf("new: %v", err), err, "", 1)
			}

			def := entity.Definition{
				Name:          name,
				ChangelogDate: now().UTC().Format(entity.ChangelogLayout),
				Fields:        []entity.FieldDefinition{},
				Relationships: []entity.RelationshipDefinition{},
				Dto:           "no",
				Pagination:    "no",
				Service:       "no",
			}
			content, ext, err := encodeDefinition(def, format)
			if err != nil {
				return wrapError(fmt.Sprintf("new: %v", err), err, "Use --format json or --format yaml.", 2)
			}
			path := filepath.Join(p.store.Dir(), name+ext)
			if err := os.MkdirAll(p.store.Dir(), 0o755); err != nil {
				return wrapError(fmt.Sprintf("new: %v", err), err, "Check directory permissions.", 1)
			}
			if err := os.WriteFile(path, content, 0o644); err != nil {
				return wrapError(fmt.Sprintf("new: write %s: %v", path, err), err, "Check directory permissions.", 1)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Created", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "o", "json", "Definition format (json or yaml)")
	return cmd
}

func encodeDefinition(def entity.Definition, format string) ([]byte, string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		raw, err := json.MarshalIndent(def, "", "  ")
		if err != nil {
			return nil, "", err
		}
		return append(raw, '\n'), ".json", nil
	case "yaml", "yml":
		raw, err := yaml.Marshal(def)
		return raw, ".yaml", err
	}
	return nil, "", fmt.Errorf("unknown format %q", format)
}
