// Package queue implements the hit-count priority queue driving Lego blocking.
package queue
