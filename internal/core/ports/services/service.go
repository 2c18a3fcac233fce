package services

// StoreState is the loading/error flag pair every store exposes to its UI
// collaborators. The last error message persists until the next successful
// operation or an explicit ClearError.
type StoreState interface {
	IsLoading() bool
	Err() string
	ClearError()
}

// TokenSink receives the active API token after login, restore or logout.
// The REST client implements this.
type TokenSink interface {
	SetToken(token string)
}

// SessionScoped is a store whose mirrored collection belongs to the
// authenticated user. The session store resets each one when the user
// changes, so data never leaks across a login boundary.
type SessionScoped interface {
	// Reset drops the mirrored collection and clears the flag pair. The
	// next Reload repopulates for the current user.
	Reset()
}
