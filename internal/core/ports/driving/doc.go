// Package driving defines the inbound port interfaces of the hexagon.
//
// Driving ports are implemented by the core services and consumed by
// the CLI, TUI, and MCP adapters.
package driving
