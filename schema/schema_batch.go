package schema

// FileOutcome is the terminal state of one file in a batch run: either a
// scored result or a recorded failure, never both.
type FileOutcome struct {
	FileID string         `json:"file_id"`          // File identifier in input order
	Result *OverallResult `json:"result,omitempty"` // Scoring result when successful
	Error  string         `json:"error,omitempty"`  // Failure message when scoring failed
}

// Failed reports whether the file could not be scored.
func (o FileOutcome) Failed() bool {
	return o.Result == nil
}

// BatchSummary holds statistics across the successfully scored files of a
// batch. It is absent entirely when no file scored.
type BatchSummary struct {
	Scored    int     `json:"scored"`     // Number of files scored successfully
	Failed    int     `json:"failed"`     // Number of files that failed
	Average   float64 `json:"average"`    // Mean overall score across scored files
	Best      int     `json:"best"`       // Highest overall score
	BestFile  string  `json:"best_file"`  // File achieving the highest score (first on ties)
	Worst     int     `json:"worst"`      // Lowest overall score
	WorstFile string  `json:"worst_file"` // File achieving the lowest score (first on ties)
}

// BatchResult is the complete output of a batch comparison. Outcomes keep
// input order regardless of scoring completion order.
type BatchResult struct {
	Outcomes []FileOutcome `json:"outcomes"`
	Summary  *BatchSummary `json:"summary,omitempty"`
}

// ResultFor returns the result for a file id, or nil if the file failed
// or was not part of the batch.
func (b *BatchResult) ResultFor(fileID string) *OverallResult {
	for _, o := range b.Outcomes {
		if o.FileID == fileID {
			return o.Result
		}
	}
	return nil
}

// Succeeded returns the outcomes that scored, in input order.
func (b *BatchResult) Succeeded() []FileOutcome {
	out := make([]FileOutcome, 0, len(b.Outcomes))
	for _, o := range b.Outcomes {
		if !o.Failed() {
			out = append(out, o)
		}
	}
	return out
}

// Failures returns the outcomes that failed, in input order.
func (b *BatchResult) Failures() []FileOutcome {
	var out []FileOutcome
	for _, o := range b.Outcomes {
		if o.Failed() {
			out = append(out, o)
		}
	}
	return out
}
