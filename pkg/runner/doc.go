/*
Package runner implements the interactive loop around a drawing.

It is the bridge between a mugincad.Drawing and a terminal or a host
process. The runner reads requests from a pluggable IOHandler, applies them
to the drawing, writes a Frame describing the result and, when a store is
configured, saves the project after every change.

# Key Components

  - Runner: The loop. Ctrl+C cancels the active command; a second Ctrl+C
    while idle ends the run.
  - TextHandler: Line-oriented terminal IO. Every line is a command token.
  - JSONHandler: JSON-Lines IO for hosts that need clicks and modifiers.

# Usage

	r := runner.NewRunner(
		runner.WithInputHandler(runner.NewTextHandler(os.Stdout, runner.WithStdin())),
		runner.WithStore(store),
		runner.WithSessionID("floor-1"),
	)

	if err := r.Run(ctx, mugincad.New()); err != nil {
		log.Fatal(err)
	}
*/
package runner
