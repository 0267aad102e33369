// Package syncer propagates pending local changes to a remote in the
// background. It is decoupled from the store's write path: mutations only
// call Notify, and a debounce timer decides when to flush.
package syncer
