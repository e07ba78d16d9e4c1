package maze

// Director is the caller's loop around a Generator. The generator has no
// notion of time; a director decides when the next step happens.
type Director interface {
	/**
	 * Attach the director to a generator
	 */
	Init(*Generator)

	/**
	 * Perform a single generation step
	 */
	Act() (Event, error)

	/**
	 * Keep stepping until the maze is finished or End() is called
	 */
	ActContinuously() error

	/**
	 * Stop acting
	 */
	End()
}
