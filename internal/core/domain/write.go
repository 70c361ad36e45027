package domain

// PendingWrite is a queued value update against one range. The batch
// coordinator holds one PendingWrite per distinct RangeAddress key, with
// last-write-wins replacement.
type PendingWrite struct {
	Address RangeAddress
	Values  [][]any
}
