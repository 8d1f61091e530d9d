// Package services contains domain services that operate across the order model.
//
// OrderTextParser converts the free-text order a user pastes into structured
// line items, per-line parse errors and order totals. It is pure and
// deterministic and performs no I/O.
package services
