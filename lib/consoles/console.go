package consoles

type Console interface {
	// Printf writes one message. Each call is written as a single unit, even
	// when called from several goroutines.
	Printf(format string, a ...any)
}
