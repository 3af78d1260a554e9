// Package driven defines the outbound port interfaces of the hexagon.
//
// Driven ports are implemented by adapters under
// internal/adapters/driven and consumed by the core services. They
// cover the dataset scanner, the record decoders, persistence, and
// configuration.
package driven
