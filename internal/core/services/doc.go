// Package services implements the driving ports on top of the driven
// ports: the import pipeline, dataset queries, and statistics.
package services
