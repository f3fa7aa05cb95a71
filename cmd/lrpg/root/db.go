package root

import (
	"context"
	"fmt"
	"io"

	"liferpg/internal/app"
	"liferpg/internal/engine"
	"liferpg/internal/ui"
)

func openApp(ctx context.Context) (*app.App, func(), error) {
	a, err := app.OpenFromEnv(ctx)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = a.Close()
	}
	return a, cleanup, nil
}

// dispatch opens the app, runs one command and prints its notices.
func dispatch(ctx context.Context, w io.Writer, cmd engine.Command) (engine.Outcome, error) {
	a, cleanup, err := openApp(ctx)
	if err != nil {
		return engine.Outcome{}, err
	}
	defer cleanup()

	out, err := a.Dispatch(ctx, cmd)
	if err != nil {
		return engine.Outcome{}, err
	}
	printOutcome(w, out)
	return out, nil
}

func printNotices(w io.Writer, notices []engine.Notice) {
	for _, n := range notices {
		fmt.Fprintln(w, ui.NoticeLine(n))
	}
}

func printOutcome(w io.Writer, out engine.Outcome) {
	printNotices(w, out.Notices)
	if !out.Applied {
		fmt.Fprintln(w, ui.Muted.Render("Nothing happened."))
	}
}
