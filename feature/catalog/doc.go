// Package catalog serves the storefront's product catalog.
//
// The catalog is ingested from a pipe-delimited flat-file feed stored in
// the asset bucket (with an optional HTTP fallback), parsed once into
// immutable records, and memoized behind a single-flight cache for the
// process lifetime. Queries filter and order the cached collection on
// every call; nothing is ever mutated in place.
//
// # Sub-packages
//
//   - models: the normalized ProductRecord and the API report types.
//   - feed: the line normalizer and feed parser, including the tolerance
//     rules for historical column layouts.
//   - query: filtering, the layered sort comparators, and facet options.
//   - imageurl: the sz= image URI sizer.
//
// # HTTP Endpoints
//
//   - GET /catalog/products : filtered/sorted listing (search, season, gender, sort).
//   - GET /catalog/products/:id : single product detail.
//   - GET /catalog/facets : season and gender filter options.
//   - GET /catalog/stats : cache diagnostics (malformed/duplicate counts).
//   - POST /catalog/reload : drops the cache; next query refetches.
package catalog
