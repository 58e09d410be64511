// Package chain composes an ordered middleware list and a terminal handler
// into one invocable dispatch chain with onion semantics: middleware run in
// registration order on the way in, and in reverse order on the way out,
// after their next() call returns.
//
// Each run carries an explicit dispatch cursor. A frame whose next()
// continuation is invoked twice fails with ErrNextCalledTwice instead of
// corrupting ordering and unwind semantics.
//
//	c := chain.New(handler, logging, auth)
//	resp, err := c.Run(ctx)
//
// The chain performs no error recovery of its own: any error returned by a
// middleware or the terminal handler propagates upward through every pending
// next() call and out of Run.
package chain
