package repository

// CounterRepository allocates invoice-number sequences. One counter row per
// calendar year+month bucket ("202403"); NextSequence must be atomic so that
// concurrent invoice creation never observes the same value.
type CounterRepository interface {
	NextSequence(period string) (int64, error)
}
