package types

// Status is the terminal outcome of a walk. All three are ordinary,
// reportable results: OutOfBounds and InfiniteLoop are never surfaced as
// Go errors.
type Status string

// Walk outcomes.
const (
	StatusSuccess      Status = "success"
	StatusOutOfBounds  Status = "out_of_bounds"
	StatusInfiniteLoop Status = "infinite_loop"
)

// Event records one processed checkpoint: the corner it sits on, its name,
// the outgoing heading it resolved to, and the blocks walked to reach it
// since the previous event. The first event of every walk is the start
// checkpoint with zero blocks.
type Event struct {
	Corner     string    `json:"corner"`
	Checkpoint string    `json:"checkpoint"`
	Heading    Direction `json:"heading"`
	Blocks     int       `json:"blocks"`
}

// Report is the full account of one walk: the ordered checkpoint events
// plus the terminal status. Blocks is the cumulative distance walked. At
// names the offending corner for OutOfBounds (the first off-grid position)
// and InfiniteLoop (the repeated intersection); it is empty on success.
type Report struct {
	RunID  string  `json:"run_id"`
	Status Status  `json:"status"`
	Blocks int     `json:"blocks"`
	At     string  `json:"at,omitempty"`
	Events []Event `json:"events"`
}
