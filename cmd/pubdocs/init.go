package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/eringen/pubdocs/scaffold"
)

// scaffoldData holds the template variables passed to every scaffold template.
type scaffoldData struct {
	SiteName    string
	ProjectLink string
	ChatLink    string
	BaseURL     string
}

func newInitCommand() *cobra.Command {
	var data scaffoldData
	cmd := &cobra.Command{
		Use:   "init <dir>",
		Short: "Write a starter theme.yaml and .env.example",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			if data.SiteName == "" {
				data.SiteName = toTitle(filepath.Base(dir))
			}
			data.ProjectLink = strings.TrimRight(data.ProjectLink, "/")
			data.BaseURL = strings.TrimRight(data.BaseURL, "/")
			if data.ChatLink == "" {
				data.ChatLink = data.ProjectLink + "/discussions"
			}
			return writeScaffold(cmd.OutOrStdout(), dir, data)
		},
	}
	cmd.Flags().StringVar(&data.SiteName, "name", "", "Site name (default: title-cased directory name).")
	cmd.Flags().StringVar(&data.ProjectLink, "project", "https://github.com/example/project", "Project repository URL.")
	cmd.Flags().StringVar(&data.BaseURL, "base-url", "https://example.com", "Public base URL of the docs site.")
	cmd.Flags().StringVar(&data.ChatLink, "chat", "", "Community chat URL (default: <project>/discussions).")
	return cmd
}

// writeScaffold renders every embedded template into dir. Existing files are
// never overwritten.
func writeScaffold(out io.Writer, dir string, data scaffoldData) error {
	root := "templates"

	err := fs.WalkDir(scaffold.Templates, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		outPath := strings.TrimSuffix(filepath.Join(dir, relPath), ".tmpl")
		if filepath.Base(outPath) == "dotenv" {
			outPath = filepath.Join(filepath.Dir(outPath), ".env.example")
		}

		if d.IsDir() {
			return os.MkdirAll(outPath, 0o755)
		}

		if _, err := os.Stat(outPath); err == nil {
			return fmt.Errorf("%s already exists", outPath)
		}

		content, err := scaffold.Templates.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		tmpl, err := template.New(filepath.Base(path)).Option("missingkey=error").Parse(string(content))
		if err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}

		f, err := os.OpenFile(outPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		defer f.Close()

		if err := tmpl.Execute(f, data); err != nil {
			return fmt.Errorf("execute template %s: %w", path, err)
		}

		fmt.Fprintf(out, "  created %s\n", outPath)
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Done! Next steps:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  pubdocs validate -c %s\n", filepath.Join(dir, "theme.yaml"))
	fmt.Fprintf(out, "  pubdocs serve -c %s\n", filepath.Join(dir, "theme.yaml"))
	return nil
}

// toTitle converts a hyphenated or lowercase name to a title-case string.
// e.g. "my-docs" -> "My Docs", "marcus" -> "Marcus"
func toTitle(s string) string {
	parts := strings.Split(s, "-")
	for i, p := range parts {
		if len(p) > 0 {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}
