// Package triangle generates single rows of Pascal's triangle.
//
// A row of length n holds the binomial coefficients C(n-1, 0..n-1),
// produced by the additive recurrence C(k,i) = C(k-1,i-1) + C(k-1,i).
// Generation runs in O(n) space and O(n²) additions over one fixed-size
// buffer: each generation is folded into the previous one in place, so no
// second row is ever materialized.
//
// The package is pure computation. It performs no I/O, touches no shared
// state, and concurrent calls are safe because every call owns its buffer
// exclusively. Boundary concerns (rejecting bad input from an embedding
// host, converting the row into a host-visible value) belong to the host
// package.
//
// Coefficients use uint32. MaxLen32 documents where that width stops being
// exact; Row wraps past it, RowChecked reports it.
package triangle
