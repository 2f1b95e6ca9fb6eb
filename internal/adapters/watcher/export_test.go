package watcher

// Exported for white-box tests of the debounce window.
var DebouncerPending = (*Debouncer).pendingLen
