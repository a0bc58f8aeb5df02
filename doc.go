// Package pixelterm provides a sandboxed virtual shell interpreter.
//
// Each session is confined to a root directory; every path argument is
// resolved against it and anything pointing outside is refused. A single
// input line is tokenized into a verb and an argument, dispatched to a
// handler and rendered as one string: plain text, error text or a UI
// signal of the form __SENTINEL__::payload.
//
//	srv, _ := pixelterm.New()
//	sess, _ := srv.Open(ctx, "/srv/home/alice")
//	out, _ := srv.Execute(ctx, sess.ID(), "ls")
//	if response.IsSignal(out) {
//		signal := response.Decode(out).Signal
//		...
//	}
//
// Verbs are grouped by service: fs, system, app and network.
package pixelterm
