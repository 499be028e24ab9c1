package cli

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mithrel/nodehtml/internal/present"
	"github.com/mithrel/nodehtml/internal/present/format"
	"github.com/mithrel/nodehtml/internal/wire"
)

const defaultPager = "less -FRSX"

// presentOptions builds presenter options from the resolved config.
func presentOptions(app *wire.App, title string) (present.Options, error) {
	mode, ok := present.ParseMode(strings.ToLower(app.Cfg.GetString("render.output")))
	if !ok {
		return present.Options{}, errInvalidOutput(app.Cfg.GetString("render.output"))
	}
	return present.Options{
		Mode:  mode,
		Title: title,
		Pretty: format.PrettyOptions{
			Style:    app.Cfg.GetString("pretty.style"),
			WordWrap: app.Cfg.GetInt("pretty.word_wrap"),
		},
	}, nil
}

func writeResult(cmd *cobra.Command, app *wire.App, r present.Result, opts present.Options) error {
	out := cmd.OutOrStdout()
	if !app.Cfg.GetBool("render.pager") {
		return present.Write(out, r, opts)
	}
	return withPager(cmd.Context(), out, cmd.ErrOrStderr(), func(w io.Writer) error {
		return present.Write(w, r, opts)
	})
}

// withPager pipes output through $PAGER when out is a terminal.
func withPager(ctx context.Context, out, errOut io.Writer, write func(io.Writer) error) error {
	outFile, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(outFile.Fd())) {
		return write(out)
	}
	pager := os.Getenv("PAGER")
	if pager == "" {
		pager = defaultPager
	}
	cmd := exec.CommandContext(ctx, "sh", "-c", pager)
	cmd.Stdout = outFile
	if errFile, ok := errOut.(*os.File); ok {
		cmd.Stderr = errFile
	} else {
		cmd.Stderr = os.Stderr
	}
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return write(out)
	}
	if err := cmd.Start(); err != nil {
		return write(out)
	}
	writeErr := write(stdin)
	_ = stdin.Close()
	waitErr := cmd.Wait()
	if writeErr != nil {
		return writeErr
	}
	return waitErr
}
