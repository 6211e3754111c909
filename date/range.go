package date

import "fmt"

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// Days returns the number of calendar days between From and To.
func (r Range) Days() int { return int(r.To.time().Sub(r.From.time()).Hours() / 24) }

// String returns the range as "from..to".
func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
