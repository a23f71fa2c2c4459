/*
Package runner implements an interval tick loop for grove engines.

Hosts that do not need a custom cadence can hand their engine, world and
an interval to Run and let it drive passes until shutdown. Hosts with
their own frame or simulation loop should call Engine.Tick directly and
skip this package.

# Usage

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := runner.Run(ctx, eng, world,
		runner.WithInterval(250*time.Millisecond),
		runner.WithLogger(logger),
	)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
*/
package runner
