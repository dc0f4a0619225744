package cli

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/deicod/scaffolder/internal/config"
)

var configTemplate = template.Must(template.New("config").Parse(`# scaffolder configuration
base_name: {{ .BaseName }}
package_name: {{ .PackageName }}
application_type: monolith
authentication_type: jwt
database_type: sql
prod_database_type: postgresql
client_framework: angularX
client_package_manager: npm
enable_translation: true
languages:
  - en
entities_dir: entities
`))

func newInitCmd(root *rootOptions) *cobra.Command {
	app := config.Default()
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create scaffolder.yaml and the entities directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Validate(app); err != nil {
				return wrapError(fmt.Sprintf("init: %v", err), err, "Pass a valid --base-name and --package-name.", 2)
			}
			buf := &bytes.Buffer{}
			if err := configTemplate.Execute(buf, app); err != nil {
				return err
			}
			files := []struct {
				path    string
				content []byte
			}{
				{filepath.Join(root.dir, config.FileName+".yaml"), buf.Bytes()},
				{filepath.Join(root.dir, "entities", ".gitkeep"), nil},
			}
			out := cmd.OutOrStdout()
			for _, f := range files {
				created, err := writeFileOnce(f.path, f.content)
				if err != nil {
					return wrapError(fmt.Sprintf("init: write %s: %v", f.path, err), err, "Check directory permissions.", 1)
				}
				if created {
					fmt.Fprintln(out, "Created", f.path)
				}
			}
			fmt.Fprintln(out, "Initialized scaffolder project.")
			return nil
		},
	}
	cmd.Flags().StringVar(&app.BaseName, "base-name", app.BaseName, "Application base name")
	cmd.Flags().StringVar(&app.PackageName, "package-name", app.PackageName, "Java package of the generated server sources")
	return cmd
}
