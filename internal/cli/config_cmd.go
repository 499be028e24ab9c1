package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mithrel/nodehtml/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "config",
		Short:       "Manage configuration",
		Annotations: map[string]string{skipAppAnnotation: ""},
	}
	cmd.AddCommand(newConfigGenerateCmd())
	return cmd
}

func newConfigGenerateCmd() *cobra.Command {
	var (
		path      string
		overwrite bool
		update    bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a default config.toml",
		Long: `Write a default config.toml.

An existing file is left alone unless --overwrite replaces it or --update
merges missing defaults into it. Both keep the previous file as <path>.bak.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if overwrite && update {
				return errors.New("choose either --overwrite or --update")
			}
			if path == "" {
				path = config.DefaultConfigPath()
			}

			existing, err := os.ReadFile(path)
			exists := err == nil
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			if exists && !overwrite && !update {
				return fmt.Errorf("config already exists at %s; use --overwrite to replace it or --update to merge defaults", path)
			}

			content := config.RenderDefaultTOML()
			if exists && update {
				merged, changed := config.UpdateTOML(string(existing))
				if !changed {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Config already up to date: %s\n", path)
					return nil
				}
				content = merged
			}

			if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if exists {
				if err := os.WriteFile(path+".bak", existing, 0o600); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(out, "Backup: %s.bak\n", path)
			}
			if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "output", "o", "", "output path for config.toml")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace an existing config")
	cmd.Flags().BoolVar(&update, "update", false, "merge missing defaults into an existing config")
	return cmd
}
