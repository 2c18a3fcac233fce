package services

// storeState is the loading/error flag pair shared by every store. The last
// error message persists until the next successful operation or ClearError.
//
// Stores are not safe for concurrent use: the application model is one
// logical writer per store per session, mutations are serialized by the
// caller.
type storeState struct {
	loading bool
	errMsg  string
}

func (s *storeState) begin() {
	s.loading = true
}

// fail records the failure verbatim and ends the loading state. Remote
// failures carry the server message unchanged (apperrors.RemoteError).
func (s *storeState) fail(err error) {
	s.loading = false
	s.errMsg = err.Error()
}

func (s *storeState) succeed() {
	s.loading = false
	s.errMsg = ""
}

// IsLoading reports whether an operation is in flight.
func (s *storeState) IsLoading() bool {
	return s.loading
}

// Err returns the last recorded error message, or "" when the previous
// operation succeeded.
func (s *storeState) Err() string {
	return s.errMsg
}

// ClearError resets the error state without touching the collection.
func (s *storeState) ClearError() {
	s.errMsg = ""
}
