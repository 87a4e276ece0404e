// Package uuidkit provides strict parsing and formatting of UUID string
// representations, plus a pluggable, lazily-initialized default source of
// UUIDs for the process.
//
// The codec converts between uuid.UUID values and two textual forms: the
// standard 36-character dashed form and a shortened 32-character form with
// the dashes removed. Parsing is strict — exact length, exact dash positions,
// hex digits only — which makes the functions suitable for validating
// untrusted input:
//
//	id, err := uuidkit.ParseStandard("85a8b17f-8ca5-4061-aeb6-2f8a1a3bb60b")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(uuidkit.ShortenedString(id)) // 85a8b17f8ca54061aeb62f8a1a3bb60b
//
// The shortened form is handy for storage that dislikes dashes, such as a
// CHAR(32) database column.
//
// Suppliers decouple code that needs UUIDs from how they are produced:
//
//	entity.ID = uuidkit.Default().UUID()
//
// Default resolves its supplier once per process: the first implementation
// handed to Register wins, otherwise random UUIDs are produced. Tests can
// register a fixed or queue-backed supplier to make generated IDs
// deterministic:
//
//	s, err := uuidkit.QueueSupplier(queue, fallback)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	uuidkit.Register(s)
//
// Setting the UUIDKIT_SUPPLIER_CACHED environment variable to "false" makes
// Default re-run discovery on every invocation instead of caching the first
// result; the variable is read once, so the mode cannot change within a
// process.
//
// Thread Safety:
//
// All codec functions are pure. Default is safe for concurrent use; its
// one-time initialization is guarded, and every supplier shipped by this
// package is safe to invoke from multiple goroutines.
package uuidkit
