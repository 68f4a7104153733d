// Package backoffice implements the state core of the Belreon
// consulting site: one in-memory store owning every business
// collection, mutated synchronously by discrete user actions.
//
// The core functionalities include:
//   - Entity Store: clients, back-office users, stock recommendations,
//     market news, the cash book, and the editable about-us content,
//     all owned by a single Store behind mutator methods.
//   - Ledger Poster: expanding a business transaction (income, expense,
//     advance, transfer) into balanced statement entries sharing one
//     transaction id, routed to the Profit & Loss or Balance Sheet
//     statement by category.
//   - Trash Lifecycle: a uniform Active -> Trashed -> Gone state
//     machine applied to every record kind, with actor attribution and
//     restore as the exact inverse of delete.
//   - Access Filter: deriving the visible dashboard sections from a
//     user's navigation permissions, gating the trash view with the
//     same predicate.
//   - Snapshot Codec: encoding and decoding the whole store to a
//     human-readable JSONL stream, plus the CSV exports the dashboard
//     offers as downloads.
//
// This package serves as the foundational logic for the `bbo`
// command-line tool; there is no server, no database and no network:
// the store is the system.
package backoffice
