// Package cli provides the interactive filedesk shell.
//
// The shell keeps the folder being viewed in the App and passes it to the
// item service on every call. Names given to commands refer to children of
// that folder. Typical session:
//
//	mkdir site
//	cd site
//	touch index.html
//	edit index.html
//	ls
//	cd ..
//	rm site
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends.
package cli
