package model

// JobState represents the state of one URL moving through the download pipeline
type JobState string

const (
	// JobStateCheckingTool means the media tool availability check is running
	JobStateCheckingTool JobState = "CheckingTool"

	// JobStateFetchingInfo means metadata is being requested
	JobStateFetchingInfo JobState = "FetchingInfo"

	// JobStateDownloading means the transfer is in progress
	JobStateDownloading JobState = "Downloading"

	// JobStateSucceeded means the download finished successfully
	JobStateSucceeded JobState = "Succeeded"

	// JobStateFailedPermanent means the job failed with an error that is not retried
	JobStateFailedPermanent JobState = "FailedPermanent"

	// JobStateFailedExhausted means every allowed attempt failed with a transient error
	JobStateFailedExhausted JobState = "FailedExhausted"

	// JobStateCanceled means the job was interrupted by context cancellation
	JobStateCanceled JobState = "Canceled"
)

// String returns the string representation of JobState
func (s JobState) String() string {
	return string(s)
}

// IsFinished returns true if the job is in a terminal state
func (s JobState) IsFinished() bool {
	return s == JobStateSucceeded || s == JobStateFailedPermanent ||
		s == JobStateFailedExhausted || s == JobStateCanceled
}

// IsFailure returns true for terminal states other than success
func (s JobState) IsFailure() bool {
	return s.IsFinished() && s != JobStateSucceeded
}
