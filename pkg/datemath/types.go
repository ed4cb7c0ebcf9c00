package datemath

// Clock is a time-of-day component, parsed independently of any date.
type Clock struct {
	Hour   int
	Minute int
}
