// Package pipeline drives a translation run: read the export file,
// summarize the workload, translate qualifying rows in place one at a time,
// and write the full table back out once at the end.
package pipeline
