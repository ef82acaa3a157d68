package leave

import "errors"

var (
	ErrRequestNotFound         = errors.New("leave request not found")
	ErrRequestAlreadyProcessed = errors.New("leave request already processed")
	ErrAttachmentRequired      = errors.New("supporting document is required for this request kind")
)
