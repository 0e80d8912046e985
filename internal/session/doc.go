// Package session holds the signed-in user's credentials and the sync
// watermark as an explicit object that is handed to the services that need
// it. Every mutation is written through a [Persister] so a restarted client
// resumes where it stopped.
package session
