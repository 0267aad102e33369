// Package tree provides navigation helpers built on top of the item store:
// breadcrumb resolution, display ordering and name filtering.
//
// Nothing here holds a "current folder". Callers pass the folder id they are
// viewing on every call.
package tree
