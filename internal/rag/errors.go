package rag

import "errors"

// ErrSegmenterTimeout marks a segmenter failure caused by a deadline or
// network timeout. The collaborator adapter decides the classification;
// the controller retries only these and treats every other failure as
// permanent. No error-message inspection happens anywhere.
var ErrSegmenterTimeout = errors.New("segmenter timeout")
