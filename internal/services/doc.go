// Package services implements the file-manager operations on top of the
// item store. Every call takes the folder it acts on explicitly.
package services
