package appindex

import "errors"

// errNoWatchableDirs is returned by Watch when every application
// directory failed to register with the filesystem watcher.
var errNoWatchableDirs = errors.New("no watchable application directories")
