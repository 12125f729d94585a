// Package session implements persistence for the monitoring Session.
//
// The FileRepository stores and loads the session as JSON on disk and exposes
// a Repository interface that the monitor service depends on.
package session
